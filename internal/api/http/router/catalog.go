package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	h *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	services := api.Group("/services", authRequired)
	services.Get("/", requirePerm(authorize.ResourceService, authorize.ActionList), h.ListServices)
	services.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), h.CreateService)
	services.Get("/:id", requirePerm(authorize.ResourceService, authorize.ActionRead), h.GetService)
	services.Patch("/:id", requirePerm(authorize.ResourceService, authorize.ActionUpdate), h.UpdateService)

	rooms := api.Group("/rooms", authRequired)
	rooms.Get("/", requirePerm(authorize.ResourceRoom, authorize.ActionList), h.ListRooms)
	rooms.Post("/", requirePerm(authorize.ResourceRoom, authorize.ActionCreate), h.CreateRoom)
	rooms.Get("/:id", requirePerm(authorize.ResourceRoom, authorize.ActionRead), h.GetRoom)
	rooms.Patch("/:id", requirePerm(authorize.ResourceRoom, authorize.ActionUpdate), h.UpdateRoom)
}
