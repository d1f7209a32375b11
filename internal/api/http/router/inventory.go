package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	h *handler.InventoryHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	items := api.Group("/inventory", authRequired)

	items.Get("/", requirePerm(authorize.ResourceInventory, authorize.ActionList), h.List)
	items.Post("/", requirePerm(authorize.ResourceInventory, authorize.ActionCreate), h.Create)

	item := items.Group("/:id")
	item.Get("/", requirePerm(authorize.ResourceInventory, authorize.ActionRead), h.GetByID)
	item.Patch("/", requirePerm(authorize.ResourceInventory, authorize.ActionUpdate), h.Update)
	item.Post("/adjust", requirePerm(authorize.ResourceInventory, authorize.ActionUpdate), h.Adjust)
	item.Delete("/", requirePerm(authorize.ResourceInventory, authorize.ActionDelete), h.Delete)
}
