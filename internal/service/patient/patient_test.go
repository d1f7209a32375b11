package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	"github.com/physiofit/clinic_backend/internal/repo/enttest"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return New(client, testKey), client
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     strPtr("maria@example.com"),
		Phone:     strPtr("+351912345678"),
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if got.FirstName != "Maria" || got.LastName != "Santos" {
		t.Errorf("name = %s %s, want Maria Santos", got.FirstName, got.LastName)
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			FirstName: "Other",
			LastName:  "Person",
			Email:     strPtr("maria@example.com"),
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
	})
}

func TestTaxIDRoundTrip(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		FirstName: "Joao",
		LastName:  "Ferreira",
		TaxID:     strPtr("123456789"),
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	// Stored value is ciphertext, not the plaintext.
	row, err := client.Patient.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.TaxIDEncrypted == nil || *row.TaxIDEncrypted == "123456789" {
		t.Errorf("tax id stored in plaintext")
	}

	plain, err := svc.TaxID(ctx, created.ID)
	if err != nil {
		t.Fatalf("read tax id: %v", err)
	}
	if plain != "123456789" {
		t.Errorf("tax id = %q, want 123456789", plain)
	}

	t.Run("absent tax id reads as empty", func(t *testing.T) {
		other, err := svc.Create(ctx, CreateRequest{FirstName: "No", LastName: "TaxID"})
		if err != nil {
			t.Fatalf("create patient: %v", err)
		}
		plain, err := svc.TaxID(ctx, other.ID)
		if err != nil {
			t.Fatalf("read tax id: %v", err)
		}
		if plain != "" {
			t.Errorf("tax id = %q, want empty", plain)
		}
	})

	t.Run("no key configured", func(t *testing.T) {
		bare := New(client, nil)
		if _, err := bare.TaxID(ctx, created.ID); !errors.Is(err, ErrNoEncryptionKey) {
			t.Errorf("err = %v, want ErrNoEncryptionKey", err)
		}
	})
}

func TestListSearchAndPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	names := []struct{ first, last string }{
		{"Ana", "Silva"},
		{"Bruno", "Silva"},
		{"Carla", "Mota"},
	}
	for _, n := range names {
		if _, err := svc.Create(ctx, CreateRequest{FirstName: n.first, LastName: n.last}); err != nil {
			t.Fatalf("create patient: %v", err)
		}
	}

	result, err := svc.List(ctx, ListRequest{Search: "silva"})
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}

	result, err = svc.List(ctx, ListRequest{PerPage: 2})
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(result.Data) != 2 || result.TotalPages != 2 {
		t.Errorf("page size = %d, total pages = %d, want 2 and 2", len(result.Data), result.TotalPages)
	}
}

func TestDeleteHidesPatient(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{FirstName: "Rui", LastName: "Costa"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete unknown: err = %v, want ErrNotFound", err)
	}
}
