package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerAuditRoutes(
	api fiber.Router,
	h *handler.AuditHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/audit", authRequired)

	group.Get("/", requirePerm(authorize.ResourceAudit, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceAudit, authorize.ActionRead), h.GetByID)
}
