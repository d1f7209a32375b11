package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/patient"
)

type PatientHandler struct {
	svc   patient.Service
	audit audit.Service
}

func NewPatientHandler(svc patient.Service, auditSvc audit.Service) *PatientHandler {
	return &PatientHandler{svc: svc, audit: auditSvc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrEmailTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Status  string `query:"status"`
		Search  string `query:"search"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Order:   q.Order,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, result)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName      string     `json:"first_name"`
		LastName       string     `json:"last_name"`
		Email          *string    `json:"email"`
		Phone          *string    `json:"phone"`
		DateOfBirth    *time.Time `json:"date_of_birth"`
		TaxID          *string    `json:"tax_id"`
		MedicalNotes   *string    `json:"medical_notes"`
		ReferralSource *string    `json:"referral_source"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" {
		return badRequest(c, "first_name and last_name are required")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		DateOfBirth:    body.DateOfBirth,
		TaxID:          body.TaxID,
		MedicalNotes:   body.MedicalNotes,
		ReferralSource: body.ReferralSource,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "create", "patient", p.ID, nil)
	return created(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName      *string    `json:"first_name"`
		LastName       *string    `json:"last_name"`
		Email          *string    `json:"email"`
		Phone          *string    `json:"phone"`
		DateOfBirth    *time.Time `json:"date_of_birth"`
		TaxID          *string    `json:"tax_id"`
		Status         *string    `json:"status"`
		MedicalNotes   *string    `json:"medical_notes"`
		ReferralSource *string    `json:"referral_source"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), patientID, patient.UpdateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		DateOfBirth:    body.DateOfBirth,
		TaxID:          body.TaxID,
		Status:         body.Status,
		MedicalNotes:   body.MedicalNotes,
		ReferralSource: body.ReferralSource,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "update", "patient", p.ID, nil)
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "delete", "patient", patientID, nil)
	return noContent(c)
}

// GET /patients/:id/tax-id
func (h *PatientHandler) TaxID(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	taxID, err := h.svc.TaxID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	// Reading a decrypted identifier is itself an auditable event.
	h.audit.Record(c.Context(), actorID(c), "read_tax_id", "patient", patientID, nil)
	return ok(c, fiber.Map{"tax_id": taxID})
}
