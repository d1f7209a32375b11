package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerAnalyticsRoutes(
	api fiber.Router,
	h *handler.AnalyticsHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/analytics")

	// The chat widget serves the public website.
	group.Post("/chat", h.Chat)

	group.Get("/dashboard", authRequired, h.Dashboard)
	group.Get("/forecast", authRequired, requirePerm(authorize.ResourceAnalytics, authorize.ActionRead), h.DemandForecast)
	group.Get("/patients/:id/no-show-risk", authRequired, requirePerm(authorize.ResourceAnalytics, authorize.ActionRead), h.NoShowRisk)
}
