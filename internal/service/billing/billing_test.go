package billing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/physiofit/clinic_backend/internal/repo"
	"github.com/physiofit/clinic_backend/internal/repo/enttest"
	"github.com/physiofit/clinic_backend/internal/repo/hook"
	entinv "github.com/physiofit/clinic_backend/internal/repo/invoice"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return New(client), client
}

func createService(t *testing.T, client *repo.Client, name string, price int64) *repo.Service {
	t.Helper()
	svc, err := client.Service.Create().
		SetName(name).
		SetUnitPrice(price).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	return svc
}

func TestCreateAssignsNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	want := fmt.Sprintf("INV-%d-000001", time.Now().Year())
	if inv.Number != want {
		t.Errorf("number = %q, want %q", inv.Number, want)
	}
	if inv.Status != entinv.StatusDraft {
		t.Errorf("status = %s, want draft", inv.Status)
	}

	second, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create second invoice: %v", err)
	}
	want = fmt.Sprintf("INV-%d-000002", time.Now().Year())
	if second.Number != want {
		t.Errorf("second number = %q, want %q", second.Number, want)
	}
}

func TestItemsRecomputeTotal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	first, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
		Description: "Initial assessment",
		Quantity:    1,
		UnitPrice:   int64Ptr(5000),
	})
	if err != nil {
		t.Fatalf("add first item: %v", err)
	}
	if _, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
		Description: "Follow-up session",
		Quantity:    1,
		UnitPrice:   int64Ptr(3000),
	}); err != nil {
		t.Fatalf("add second item: %v", err)
	}

	detail, err := svc.GetByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if detail.Invoice.TotalAmount != 8000 {
		t.Errorf("total = %d, want 8000", detail.Invoice.TotalAmount)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(detail.Items))
	}

	if err := svc.RemoveItem(ctx, inv.ID, first.ID); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	detail, err = svc.GetByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice after remove: %v", err)
	}
	if detail.Invoice.TotalAmount != 3000 {
		t.Errorf("total after remove = %d, want 3000", detail.Invoice.TotalAmount)
	}

	if err := svc.RemoveItem(ctx, inv.ID, uuid.New()); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("remove missing item: err = %v, want ErrItemNotFound", err)
	}
}

func TestAddItemDefaultsFromService(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	catalog := createService(t, client, "Manual therapy", 4500)

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	item, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
		ServiceID: &catalog.ID,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.Description != "Manual therapy" {
		t.Errorf("description = %q, want service name", item.Description)
	}
	if item.UnitPrice != 4500 {
		t.Errorf("unit price = %d, want 4500", item.UnitPrice)
	}
	if item.LineTotal != 9000 {
		t.Errorf("line total = %d, want 9000", item.LineTotal)
	}
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	for _, qty := range []int{0, -1} {
		if _, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
			Description: "bad",
			Quantity:    qty,
			UnitPrice:   int64Ptr(100),
		}); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestPaymentsDriveStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if _, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
		Description: "Session block",
		Quantity:    1,
		UnitPrice:   int64Ptr(8000),
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.Issue(ctx, inv.ID, nil); err != nil {
		t.Fatalf("issue invoice: %v", err)
	}

	t.Run("partial payment", func(t *testing.T) {
		if _, err := svc.RecordPayment(ctx, inv.ID, PaymentRequest{
			Amount: 4000,
			Method: "card",
		}); err != nil {
			t.Fatalf("record payment: %v", err)
		}
		detail, err := svc.GetByID(ctx, inv.ID)
		if err != nil {
			t.Fatalf("get invoice: %v", err)
		}
		if detail.Invoice.Status != entinv.StatusPartial {
			t.Errorf("status = %s, want partial", detail.Invoice.Status)
		}
		if detail.Invoice.AmountPaid != 4000 {
			t.Errorf("amount paid = %d, want 4000", detail.Invoice.AmountPaid)
		}
	})

	t.Run("full payment", func(t *testing.T) {
		if _, err := svc.RecordPayment(ctx, inv.ID, PaymentRequest{
			Amount: 4000,
			Method: "cash",
		}); err != nil {
			t.Fatalf("record payment: %v", err)
		}
		detail, err := svc.GetByID(ctx, inv.ID)
		if err != nil {
			t.Fatalf("get invoice: %v", err)
		}
		if detail.Invoice.Status != entinv.StatusPaid {
			t.Errorf("status = %s, want paid", detail.Invoice.Status)
		}
		if detail.Invoice.AmountPaid != 8000 {
			t.Errorf("amount paid = %d, want 8000", detail.Invoice.AmountPaid)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		if _, err := svc.RecordPayment(ctx, inv.ID, PaymentRequest{
			Amount: 0,
			Method: "cash",
		}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("err = %v, want ErrInvalidAmount", err)
		}
	})
}

func TestPaymentCoversZeroTotal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	// A courtesy invoice with no lines: any payment covers it in full.
	if _, err := svc.RecordPayment(ctx, inv.ID, PaymentRequest{
		Amount: 100,
		Method: "cash",
	}); err != nil {
		t.Fatalf("record payment: %v", err)
	}

	detail, err := svc.GetByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if detail.Invoice.Status != entinv.StatusPaid {
		t.Errorf("status = %s, want paid", detail.Invoice.Status)
	}
	if detail.Invoice.AmountPaid != 100 {
		t.Errorf("amount paid = %d, want 100", detail.Invoice.AmountPaid)
	}
}

func TestIssueGuards(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := svc.Issue(ctx, inv.ID, nil); err != nil {
		t.Fatalf("issue draft invoice: %v", err)
	}

	t.Run("issue is not repeatable", func(t *testing.T) {
		if err := svc.Issue(ctx, inv.ID, nil); !errors.Is(err, ErrNotDraft) {
			t.Errorf("err = %v, want ErrNotDraft", err)
		}
	})

	t.Run("unknown invoice", func(t *testing.T) {
		if err := svc.Issue(ctx, uuid.New(), nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestCancelGuards(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := svc.Cancel(ctx, inv.ID); err != nil {
		t.Fatalf("cancel draft invoice: %v", err)
	}

	t.Run("cancelled invoice rejects mutations", func(t *testing.T) {
		if _, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
			Description: "late item",
			Quantity:    1,
			UnitPrice:   int64Ptr(100),
		}); !errors.Is(err, ErrInvoiceCancelled) {
			t.Errorf("add item: err = %v, want ErrInvoiceCancelled", err)
		}
		if _, err := svc.RecordPayment(ctx, inv.ID, PaymentRequest{
			Amount: 100,
			Method: "cash",
		}); !errors.Is(err, ErrInvoiceCancelled) {
			t.Errorf("record payment: err = %v, want ErrInvoiceCancelled", err)
		}
	})

	t.Run("cancel is not repeatable", func(t *testing.T) {
		if err := svc.Cancel(ctx, inv.ID); !errors.Is(err, ErrNotCancellable) {
			t.Errorf("err = %v, want ErrNotCancellable", err)
		}
	})

	t.Run("unknown invoice", func(t *testing.T) {
		if err := svc.Cancel(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateFromAppointment(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	catalog := createService(t, client, "Sports massage", 6000)
	patientID := uuid.New()

	appt, err := client.Appointment.Create().
		SetPatientID(patientID).
		SetPhysioID(uuid.New()).
		SetServiceID(catalog.ID).
		SetStartTime(time.Now().Add(time.Hour)).
		SetEndTime(time.Now().Add(2 * time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	inv, err := svc.CreateFromAppointment(ctx, appt.ID)
	if err != nil {
		t.Fatalf("create from appointment: %v", err)
	}
	if inv.PatientID != patientID {
		t.Errorf("patient = %s, want %s", inv.PatientID, patientID)
	}
	if inv.TotalAmount != 6000 {
		t.Errorf("total = %d, want 6000", inv.TotalAmount)
	}

	t.Run("idempotent", func(t *testing.T) {
		again, err := svc.CreateFromAppointment(ctx, appt.ID)
		if err != nil {
			t.Fatalf("second call: %v", err)
		}
		if again.ID != inv.ID {
			t.Errorf("got a different invoice on repeat call")
		}
		if again.TotalAmount != 6000 {
			t.Errorf("total after repeat = %d, want 6000", again.TotalAmount)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		if _, err := svc.CreateFromAppointment(ctx, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
			t.Errorf("err = %v, want ErrAppointmentNotFound", err)
		}
	})

	t.Run("one invoice per appointment", func(t *testing.T) {
		other, err := svc.Create(ctx, CreateRequest{PatientID: patientID})
		if err != nil {
			t.Fatalf("create invoice: %v", err)
		}
		_, err = client.Invoice.UpdateOne(other).
			SetAppointmentID(appt.ID).
			Save(ctx)
		if !repo.IsConstraintError(err) {
			t.Errorf("linking a second invoice: err = %v, want constraint error", err)
		}
	})
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	patientA := uuid.New()
	patientB := uuid.New()

	for _, pid := range []uuid.UUID{patientA, patientA, patientB} {
		if _, err := svc.Create(ctx, CreateRequest{PatientID: pid}); err != nil {
			t.Fatalf("create invoice: %v", err)
		}
	}

	got, err := svc.List(ctx, ListRequest{PatientID: &patientA})
	if err != nil {
		t.Fatalf("list invoices: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("invoices for patient A = %d, want 2", len(got))
	}

	draft := "draft"
	got, err = svc.List(ctx, ListRequest{Status: &draft})
	if err != nil {
		t.Fatalf("list draft invoices: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("draft invoices = %d, want 3", len(got))
	}
}

// A hook moves the invoice head row out from under the first recompute
// attempt, the way a concurrent writer would. The conditional update must
// miss, roll back and succeed on retry without losing the item.
func TestAddItemRetriesWhenTotalsMove(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateRequest{PatientID: uuid.New()})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	fired := false
	client.InvoiceItem.Use(func(next repo.Mutator) repo.Mutator {
		return hook.InvoiceItemFunc(func(ctx context.Context, m *repo.InvoiceItemMutation) (repo.Value, error) {
			v, err := next.Mutate(ctx, m)
			if err != nil || fired || !m.Op().Is(repo.OpCreate) {
				return v, err
			}
			fired = true
			if _, uerr := m.Client().Invoice.UpdateOneID(inv.ID).SetTotalAmount(999).Save(ctx); uerr != nil {
				return nil, uerr
			}
			return v, err
		})
	})

	if _, err := svc.AddItem(ctx, inv.ID, AddItemRequest{
		Description: "Session",
		Quantity:    1,
		UnitPrice:   int64Ptr(5000),
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if !fired {
		t.Fatal("expected the competing update to run")
	}

	detail, err := svc.GetByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if detail.Invoice.TotalAmount != 5000 {
		t.Errorf("total = %d, want 5000", detail.Invoice.TotalAmount)
	}
	if len(detail.Items) != 1 {
		t.Errorf("items = %d, want 1", len(detail.Items))
	}
}

func int64Ptr(v int64) *int64 { return &v }
