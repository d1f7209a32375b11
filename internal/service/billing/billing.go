package billing

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entappt "github.com/physiofit/clinic_backend/internal/repo/appointment"
	entinv "github.com/physiofit/clinic_backend/internal/repo/invoice"
	entitem "github.com/physiofit/clinic_backend/internal/repo/invoiceitem"
	entpay "github.com/physiofit/clinic_backend/internal/repo/payment"
	entsvc "github.com/physiofit/clinic_backend/internal/repo/service"
)

// maxRecomputeRetries bounds optimistic retries before surfacing
// ErrConcurrencyConflict.
const maxRecomputeRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID uuid.UUID
	DueDate   *time.Time
	Notes     *string
}

type ListRequest struct {
	PatientID *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

type AddItemRequest struct {
	ServiceID   *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   *int64
}

type PaymentRequest struct {
	Amount     int64
	Method     string // cash | card | transfer | insurance
	ReceivedAt time.Time
	Reference  *string
	RecordedBy *uuid.UUID
}

// InvoiceDetail bundles an invoice with its lines and payments.
type InvoiceDetail struct {
	Invoice  *repo.Invoice
	Items    []*repo.InvoiceItem
	Payments []*repo.Payment
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Invoice, error)
	GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDetail, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Invoice, error)
	Issue(ctx context.Context, invoiceID uuid.UUID, dueDate *time.Time) error
	Cancel(ctx context.Context, invoiceID uuid.UUID) error

	AddItem(ctx context.Context, invoiceID uuid.UUID, req AddItemRequest) (*repo.InvoiceItem, error)
	RemoveItem(ctx context.Context, invoiceID, itemID uuid.UUID) error
	RecordPayment(ctx context.Context, invoiceID uuid.UUID, req PaymentRequest) (*repo.Payment, error)

	CreateFromAppointment(ctx context.Context, apptID uuid.UUID) (*repo.Invoice, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type billingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &billingService{db: db}
}

func (s *billingService) Create(ctx context.Context, req CreateRequest) (*repo.Invoice, error) {
	for attempt := 0; attempt < maxRecomputeRetries; attempt++ {
		number, err := s.nextNumber(ctx)
		if err != nil {
			return nil, err
		}

		c := s.db.Invoice.Create().
			SetPatientID(req.PatientID).
			SetNumber(number)

		if req.DueDate != nil {
			c = c.SetDueDate(*req.DueDate)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		inv, err := c.Save(ctx)
		if err != nil {
			// Another writer claimed the same number, take the next one.
			if repo.IsConstraintError(err) {
				continue
			}
			return nil, fmt.Errorf("create invoice: %w", err)
		}
		return inv, nil
	}
	return nil, ErrConcurrencyConflict
}

// nextNumber produces INV-<year>-<seq> from the per-year invoice count.
// Collisions under concurrency are resolved by the unique index and retry.
func (s *billingService) nextNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("INV-%d-", year)

	n, err := s.db.Invoice.Query().
		Where(entinv.NumberHasPrefix(prefix)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count invoices: %w", err)
	}
	return fmt.Sprintf("%s%06d", prefix, n+1), nil
}

func (s *billingService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDetail, error) {
	inv, err := s.db.Invoice.Query().
		Where(entinv.ID(invoiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	items, err := s.db.InvoiceItem.Query().
		Where(entitem.InvoiceID(invoiceID)).
		Order(entitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}

	payments, err := s.db.Payment.Query().
		Where(entpay.InvoiceID(invoiceID)).
		Order(entpay.ByReceivedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &InvoiceDetail{Invoice: inv, Items: items, Payments: payments}, nil
}

func (s *billingService) List(ctx context.Context, req ListRequest) ([]*repo.Invoice, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Invoice.Query()

	if req.PatientID != nil {
		q = q.Where(entinv.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entinv.StatusEQ(entinv.Status(*req.Status)))
	}

	invoices, err := q.
		Order(entinv.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (s *billingService) Issue(ctx context.Context, invoiceID uuid.UUID, dueDate *time.Time) error {
	now := time.Now()

	upd := s.db.Invoice.Update().
		Where(
			entinv.ID(invoiceID),
			entinv.StatusEQ(entinv.StatusDraft),
		).
		SetStatus(entinv.StatusIssued).
		SetIssuedAt(now)

	if dueDate != nil {
		upd = upd.SetDueDate(*dueDate)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("issue invoice: %w", err)
	}
	if n == 0 {
		return s.classifyMissedUpdate(ctx, invoiceID, ErrNotDraft)
	}
	return nil
}

func (s *billingService) Cancel(ctx context.Context, invoiceID uuid.UUID) error {
	n, err := s.db.Invoice.Update().
		Where(
			entinv.ID(invoiceID),
			entinv.StatusIn(entinv.StatusDraft, entinv.StatusIssued),
		).
		SetStatus(entinv.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel invoice: %w", err)
	}
	if n == 0 {
		return s.classifyMissedUpdate(ctx, invoiceID, ErrNotCancellable)
	}
	return nil
}

// classifyMissedUpdate turns a zero-rowcount conditional update into either
// ErrNotFound or the given state error.
func (s *billingService) classifyMissedUpdate(ctx context.Context, invoiceID uuid.UUID, stateErr error) error {
	exists, err := s.db.Invoice.Query().Where(entinv.ID(invoiceID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check invoice: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return stateErr
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

func (s *billingService) AddItem(ctx context.Context, invoiceID uuid.UUID, req AddItemRequest) (*repo.InvoiceItem, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var created *repo.InvoiceItem
	err := s.mutateWithRecompute(ctx, invoiceID, func(tx *repo.Tx, inv *repo.Invoice) error {
		description := req.Description
		var unitPrice int64
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}

		// Snapshot defaults from the referenced catalog service.
		if req.ServiceID != nil {
			svc, err := tx.Service.Query().
				Where(entsvc.ID(*req.ServiceID)).
				Only(ctx)
			if err != nil {
				if repo.IsNotFound(err) {
					return fmt.Errorf("add item: service %s: %w", *req.ServiceID, ErrNotFound)
				}
				return fmt.Errorf("get service: %w", err)
			}
			if description == "" {
				description = svc.Name
			}
			if req.UnitPrice == nil {
				unitPrice = svc.UnitPrice
			}
		}

		c := tx.InvoiceItem.Create().
			SetInvoiceID(invoiceID).
			SetDescription(description).
			SetQuantity(req.Quantity).
			SetUnitPrice(unitPrice).
			SetLineTotal(int64(req.Quantity) * unitPrice)

		if req.ServiceID != nil {
			c = c.SetServiceID(*req.ServiceID)
		}

		item, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create invoice item: %w", err)
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *billingService) RemoveItem(ctx context.Context, invoiceID, itemID uuid.UUID) error {
	return s.mutateWithRecompute(ctx, invoiceID, func(tx *repo.Tx, inv *repo.Invoice) error {
		n, err := tx.InvoiceItem.Delete().
			Where(
				entitem.ID(itemID),
				entitem.InvoiceID(invoiceID),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete invoice item: %w", err)
		}
		if n == 0 {
			return ErrItemNotFound
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

func (s *billingService) RecordPayment(ctx context.Context, invoiceID uuid.UUID, req PaymentRequest) (*repo.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	receivedAt := req.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	var created *repo.Payment
	err := s.mutateWithRecompute(ctx, invoiceID, func(tx *repo.Tx, inv *repo.Invoice) error {
		c := tx.Payment.Create().
			SetInvoiceID(invoiceID).
			SetAmount(req.Amount).
			SetMethod(entpay.Method(req.Method)).
			SetReceivedAt(receivedAt)

		if req.Reference != nil {
			c = c.SetNillableReference(req.Reference)
		}
		if req.RecordedBy != nil {
			c = c.SetRecordedBy(*req.RecordedBy)
		}

		p, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Appointment handoff
// ---------------------------------------------------------------------------

// CreateFromAppointment returns the invoice for an appointment, creating a
// draft one when none exists. The single seed item from the appointment's
// service is added only while the invoice has no items, so the call is
// idempotent.
func (s *billingService) CreateFromAppointment(ctx context.Context, apptID uuid.UUID) (*repo.Invoice, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	inv, err := s.db.Invoice.Query().
		Where(entinv.AppointmentID(apptID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get invoice for appointment: %w", err)
	}

	if inv == nil {
		created, err := s.Create(ctx, CreateRequest{PatientID: appt.PatientID})
		if err != nil {
			return nil, err
		}
		inv, err = s.db.Invoice.UpdateOne(created).
			SetAppointmentID(apptID).
			Save(ctx)
		if err != nil {
			// The unique index on appointment_id means a concurrent caller
			// linked first. Discard our draft and use theirs.
			if !repo.IsConstraintError(err) {
				return nil, fmt.Errorf("link invoice to appointment: %w", err)
			}
			_ = s.db.Invoice.DeleteOne(created).Exec(ctx)
			inv, err = s.db.Invoice.Query().
				Where(entinv.AppointmentID(apptID)).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("get invoice for appointment: %w", err)
			}
		}
	}

	if inv.PatientID != appt.PatientID {
		return nil, ErrPatientMismatch
	}

	hasItems, err := s.db.InvoiceItem.Query().
		Where(entitem.InvoiceID(inv.ID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check invoice items: %w", err)
	}
	if !hasItems {
		serviceID := appt.ServiceID
		if _, err := s.AddItem(ctx, inv.ID, AddItemRequest{
			ServiceID: &serviceID,
			Quantity:  1,
		}); err != nil {
			return nil, err
		}
	}

	// Re-read so the caller sees recomputed totals.
	detail, err := s.GetByID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return detail.Invoice, nil
}

// ---------------------------------------------------------------------------
// Recompute core
// ---------------------------------------------------------------------------

// mutateWithRecompute runs mutate inside a transaction, then re-derives
// total_amount, amount_paid and status from the full item and payment sets.
// The head row update is conditional on the totals observed at read time;
// a missed update means a concurrent writer won, and the whole transaction
// is retried up to maxRecomputeRetries times.
func (s *billingService) mutateWithRecompute(ctx context.Context, invoiceID uuid.UUID, mutate func(tx *repo.Tx, inv *repo.Invoice) error) error {
	for attempt := 0; attempt < maxRecomputeRetries; attempt++ {
		conflict, err := s.tryMutate(ctx, invoiceID, mutate)
		if err != nil {
			return err
		}
		if !conflict {
			return nil
		}
	}
	return ErrConcurrencyConflict
}

func (s *billingService) tryMutate(ctx context.Context, invoiceID uuid.UUID, mutate func(tx *repo.Tx, inv *repo.Invoice) error) (conflict bool, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	inv, err := tx.Invoice.Query().
		Where(entinv.ID(invoiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("get invoice: %w", err)
	}
	if inv.Status == entinv.StatusCancelled {
		return false, ErrInvoiceCancelled
	}

	if err = mutate(tx, inv); err != nil {
		return false, err
	}

	total, err := sumItems(ctx, tx, invoiceID)
	if err != nil {
		return false, err
	}
	paid, err := sumPayments(ctx, tx, invoiceID)
	if err != nil {
		return false, err
	}

	upd := tx.Invoice.Update().
		Where(
			entinv.ID(invoiceID),
			entinv.TotalAmount(inv.TotalAmount),
			entinv.AmountPaid(inv.AmountPaid),
		).
		SetTotalAmount(total).
		SetAmountPaid(paid)

	if st, ok := deriveStatus(inv.Status, total, paid); ok {
		upd = upd.SetStatus(st)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update invoice totals: %w", err)
	}
	if n == 0 {
		// A concurrent writer changed the totals under us.
		_ = tx.Rollback()
		return true, nil
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}
	return false, nil
}

// sumItems and sumPayments aggregate in Go rather than SQL: line sets are
// small and SUM over an empty set scans as NULL.
func sumItems(ctx context.Context, tx *repo.Tx, invoiceID uuid.UUID) (int64, error) {
	var lineTotals []int64
	err := tx.InvoiceItem.Query().
		Where(entitem.InvoiceID(invoiceID)).
		Select(entitem.FieldLineTotal).
		Scan(ctx, &lineTotals)
	if err != nil {
		return 0, fmt.Errorf("sum invoice items: %w", err)
	}
	var total int64
	for _, lt := range lineTotals {
		total += lt
	}
	return total, nil
}

func sumPayments(ctx context.Context, tx *repo.Tx, invoiceID uuid.UUID) (int64, error) {
	var amounts []int64
	err := tx.Payment.Query().
		Where(entpay.InvoiceID(invoiceID)).
		Select(entpay.FieldAmount).
		Scan(ctx, &amounts)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	var paid int64
	for _, a := range amounts {
		paid += a
	}
	return paid, nil
}

// deriveStatus maps recomputed sums onto the invoice status. Invoices with
// no payments keep their lifecycle status (draft/issued); once money is
// recorded the status reflects coverage and never reverts to issued.
// A payment that covers a zero total counts as full coverage.
func deriveStatus(current entinv.Status, total, paid int64) (entinv.Status, bool) {
	switch {
	case paid > 0 && paid >= total:
		return entinv.StatusPaid, current != entinv.StatusPaid
	case paid > 0:
		return entinv.StatusPartial, current != entinv.StatusPartial
	default:
		return current, false
	}
}
