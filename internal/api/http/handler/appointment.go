package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/scheduling"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc   scheduling.Service
	audit audit.Service
}

func NewAppointmentHandler(svc scheduling.Service, auditSvc audit.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, audit: auditSvc}
}

func mapSchedulingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrDoubleBooking):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrTerminalStatus),
		errors.Is(err, scheduling.ErrInvalidStatus):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// actorID pulls the authenticated user out of Fiber locals for audit rows.
func actorID(c fiber.Ctx) *uuid.UUID {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return nil
	}
	id := claims.UserID
	return &id
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		PhysioID  string `query:"physio_id"`
		PatientID string `query:"patient_id"`
		RoomID    string `query:"room_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := scheduling.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PhysioID != "" {
		id, err := uuid.Parse(q.PhysioID)
		if err != nil {
			return badRequest(c, "invalid physio_id")
		}
		req.PhysioID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.RoomID != "" {
		id, err := uuid.Parse(q.RoomID)
		if err != nil {
			return badRequest(c, "invalid room_id")
		}
		req.RoomID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapSchedulingError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapSchedulingError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID string    `json:"patient_id"`
		PhysioID  string    `json:"physio_id"`
		ServiceID string    `json:"service_id"`
		RoomID    *string   `json:"room_id"`
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Notes     *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.ServiceID == "" {
		return badRequest(c, "patient_id and service_id are required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}

	req := scheduling.CreateRequest{
		PatientID: patientID,
		ServiceID: serviceID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
	}
	// physio_id may be omitted to book an unassigned slot.
	if body.PhysioID != "" {
		id, err := uuid.Parse(body.PhysioID)
		if err != nil {
			return badRequest(c, "invalid physio_id")
		}
		req.PhysioID = &id
	}
	if body.RoomID != nil {
		id, err := uuid.Parse(*body.RoomID)
		if err != nil {
			return badRequest(c, "invalid room_id")
		}
		req.RoomID = &id
	}

	appt, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	changes := map[string]any{
		"patient_id": appt.PatientID.String(),
		"start_time": appt.StartTime,
	}
	if appt.PhysioID != nil {
		changes["physio_id"] = appt.PhysioID.String()
	}
	h.audit.Record(c.Context(), actorID(c), "create", "appointment", appt.ID, changes)
	return created(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		PhysioID  *string    `json:"physio_id"`
		RoomID    *string    `json:"room_id"`
		StartTime *time.Time `json:"start_time"`
		EndTime   *time.Time `json:"end_time"`
		Notes     *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := scheduling.UpdateRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
	}
	if body.PhysioID != nil {
		id, err := uuid.Parse(*body.PhysioID)
		if err != nil {
			return badRequest(c, "invalid physio_id")
		}
		req.PhysioID = &id
	}
	if body.RoomID != nil {
		id, err := uuid.Parse(*body.RoomID)
		if err != nil {
			return badRequest(c, "invalid room_id")
		}
		req.RoomID = &id
	}

	appt, err := h.svc.Update(c.Context(), apptID, req)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "update", "appointment", appt.ID, nil)
	return ok(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	return h.transition(c, "confirm", h.svc.Confirm)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.transition(c, "complete", h.svc.Complete)
}

// PATCH /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	return h.transition(c, "no_show", h.svc.MarkNoShow)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Cancel(c.Context(), apptID, body.Reason); err != nil {
		return mapSchedulingError(c, err)
	}

	changes := map[string]any{"status": "cancelled"}
	if body.Reason != nil {
		changes["reason"] = *body.Reason
	}
	h.audit.Record(c.Context(), actorID(c), "cancel", "appointment", apptID, changes)
	return noContent(c)
}

func (h *AppointmentHandler) transition(c fiber.Ctx, action string, fn func(context.Context, uuid.UUID) error) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := fn(c.Context(), apptID); err != nil {
		return mapSchedulingError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), action, "appointment", apptID, nil)
	return noContent(c)
}
