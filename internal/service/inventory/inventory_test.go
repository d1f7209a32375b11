package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return New(client)
}

func TestAdjustStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, CreateRequest{Name: "Kinesiology tape", Quantity: 10})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	item, err = svc.Adjust(ctx, item.ID, -4)
	if err != nil {
		t.Fatalf("consume stock: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("quantity = %d, want 6", item.Quantity)
	}

	item, err = svc.Adjust(ctx, item.ID, 20)
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if item.Quantity != 26 {
		t.Errorf("quantity = %d, want 26", item.Quantity)
	}

	t.Run("cannot go negative", func(t *testing.T) {
		if _, err := svc.Adjust(ctx, item.ID, -100); !errors.Is(err, ErrInsufficientStock) {
			t.Errorf("err = %v, want ErrInsufficientStock", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if _, err := svc.Adjust(ctx, uuid.New(), -1); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestLowStockList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fixtures := []CreateRequest{
		{Name: "Electrodes", Quantity: 2, ReorderLevel: 5},
		{Name: "Towels", Quantity: 30, ReorderLevel: 10},
		{Name: "Massage oil", Quantity: 5, ReorderLevel: 5},
	}
	for _, f := range fixtures {
		if _, err := svc.Create(ctx, f); err != nil {
			t.Fatalf("create %s: %v", f.Name, err)
		}
	}

	low, err := svc.List(ctx, ListRequest{LowStock: true})
	if err != nil {
		t.Fatalf("list low stock: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("low stock items = %d, want 2", len(low))
	}
	for _, item := range low {
		if item.Name == "Towels" {
			t.Errorf("Towels should not be low stock")
		}
	}
}

func TestCategoryFilterAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	consumables := "consumables"
	item, err := svc.Create(ctx, CreateRequest{Name: "Gloves", Category: &consumables})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Name: "Resistance bands"}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	got, err := svc.List(ctx, ListRequest{Category: &consumables})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Gloves" {
		t.Errorf("category filter returned %d items", len(got))
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if _, err := svc.GetByID(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}
