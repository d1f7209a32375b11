package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
)

type AuditHandler struct {
	svc audit.Service
}

func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GET /audit
func (h *AuditHandler) List(c fiber.Ctx) error {
	var q struct {
		Page       int     `query:"page"`
		PerPage    int     `query:"per_page"`
		ActorID    string  `query:"actor_id"`
		EntityType *string `query:"entity_type"`
		EntityID   string  `query:"entity_id"`
		Since      string  `query:"since"`
	}
	_ = c.Bind().Query(&q)

	req := audit.ListRequest{
		Page:       q.Page,
		PerPage:    q.PerPage,
		EntityType: q.EntityType,
	}
	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return badRequest(c, "invalid actor id")
		}
		req.ActorID = &id
	}
	if q.EntityID != "" {
		id, err := uuid.Parse(q.EntityID)
		if err != nil {
			return badRequest(c, "invalid entity id")
		}
		req.EntityID = &id
	}
	if q.Since != "" {
		since, err := time.Parse(time.RFC3339, q.Since)
		if err != nil {
			return badRequest(c, "invalid since timestamp")
		}
		req.Since = &since
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}
	return ok(c, result)
}

// GET /audit/:id
func (h *AuditHandler) GetByID(c fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid audit entry id")
	}

	entry, err := h.svc.GetByID(c.Context(), entryID)
	if err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, entry)
}
