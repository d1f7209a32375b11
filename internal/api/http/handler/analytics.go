package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/analytics"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
)

type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GET /analytics/patients/:id/no-show-risk
func (h *AnalyticsHandler) NoShowRisk(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	risk, err := h.svc.NoShowRisk(c.Context(), patientID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, risk)
}

// GET /analytics/forecast
func (h *AnalyticsHandler) DemandForecast(c fiber.Ctx) error {
	var physioID *uuid.UUID
	if raw := c.Query("physio_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid physio id")
		}
		physioID = &id
	}

	forecast, err := h.svc.DemandForecast(c.Context(), physioID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, forecast)
}

// GET /analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	stats, err := h.svc.Dashboard(c.Context(), claims.Role, claims.UserID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// POST /analytics/chat
//
// Public endpoint for the website widget, no authentication.
func (h *AnalyticsHandler) Chat(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	return ok(c, fiber.Map{"response": h.svc.Chat(body.Message)})
}
