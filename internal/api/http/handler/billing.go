package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/billing"
)

type BillingHandler struct {
	svc   billing.Service
	audit audit.Service
}

func NewBillingHandler(svc billing.Service, auditSvc audit.Service) *BillingHandler {
	return &BillingHandler{svc: svc, audit: auditSvc}
}

func mapBillingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrNotFound),
		errors.Is(err, billing.ErrItemNotFound),
		errors.Is(err, billing.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, billing.ErrInvalidQuantity),
		errors.Is(err, billing.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, billing.ErrInvoiceCancelled),
		errors.Is(err, billing.ErrNotDraft),
		errors.Is(err, billing.ErrNotCancellable),
		errors.Is(err, billing.ErrPatientMismatch),
		errors.Is(err, billing.ErrConcurrencyConflict):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /invoices
func (h *BillingHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := billing.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	invoices, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, invoices)
}

// GET /invoices/:id
func (h *BillingHandler) GetByID(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	detail, err := h.svc.GetByID(c.Context(), invoiceID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, fiber.Map{
		"invoice":  detail.Invoice,
		"items":    detail.Items,
		"payments": detail.Payments,
	})
}

// POST /invoices
func (h *BillingHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID string     `json:"patient_id"`
		DueDate   *time.Time `json:"due_date"`
		Notes     *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	inv, err := h.svc.Create(c.Context(), billing.CreateRequest{
		PatientID: patientID,
		DueDate:   body.DueDate,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "create", "invoice", inv.ID, map[string]any{
		"number": inv.Number,
	})
	return created(c, inv)
}

// POST /appointments/:id/invoice
func (h *BillingHandler) CreateFromAppointment(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	inv, err := h.svc.CreateFromAppointment(c.Context(), apptID)
	if err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "create_from_appointment", "invoice", inv.ID, map[string]any{
		"appointment_id": apptID.String(),
	})
	return created(c, inv)
}

// PATCH /invoices/:id/issue
func (h *BillingHandler) Issue(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		DueDate *time.Time `json:"due_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Issue(c.Context(), invoiceID, body.DueDate); err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "issue", "invoice", invoiceID, nil)
	return noContent(c)
}

// PATCH /invoices/:id/cancel
func (h *BillingHandler) Cancel(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	if err := h.svc.Cancel(c.Context(), invoiceID); err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "cancel", "invoice", invoiceID, nil)
	return noContent(c)
}

// POST /invoices/:id/items
func (h *BillingHandler) AddItem(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		ServiceID   *string `json:"service_id"`
		Description string  `json:"description"`
		Quantity    int     `json:"quantity"`
		UnitPrice   *int64  `json:"unit_price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := billing.AddItemRequest{
		Description: body.Description,
		Quantity:    body.Quantity,
		UnitPrice:   body.UnitPrice,
	}
	if body.ServiceID != nil {
		id, err := uuid.Parse(*body.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}

	item, err := h.svc.AddItem(c.Context(), invoiceID, req)
	if err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "add_item", "invoice", invoiceID, map[string]any{
		"description": item.Description,
		"line_total":  item.LineTotal,
	})
	return created(c, item)
}

// DELETE /invoices/:id/items/:itemId
func (h *BillingHandler) RemoveItem(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.svc.RemoveItem(c.Context(), invoiceID, itemID); err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "remove_item", "invoice", invoiceID, map[string]any{
		"item_id": itemID.String(),
	})
	return noContent(c)
}

// POST /invoices/:id/payments
func (h *BillingHandler) RecordPayment(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var body struct {
		Amount     int64      `json:"amount"`
		Method     string     `json:"method"`
		ReceivedAt *time.Time `json:"received_at"`
		Reference  *string    `json:"reference"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Method == "" {
		return badRequest(c, "method is required")
	}

	req := billing.PaymentRequest{
		Amount:     body.Amount,
		Method:     body.Method,
		Reference:  body.Reference,
		RecordedBy: actorID(c),
	}
	if body.ReceivedAt != nil {
		req.ReceivedAt = *body.ReceivedAt
	}

	p, err := h.svc.RecordPayment(c.Context(), invoiceID, req)
	if err != nil {
		return mapBillingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "record_payment", "invoice", invoiceID, map[string]any{
		"amount": p.Amount,
		"method": body.Method,
	})
	return created(c, p)
}
