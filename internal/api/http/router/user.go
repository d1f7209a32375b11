package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)

	u := users.Group("/:id")
	u.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	u.Patch("/", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	u.Post("/role", requirePerm(authorize.ResourceRBAC, authorize.ActionGrant), h.ChangeRole)
	u.Post("/password", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.ChangePassword)
	u.Delete("/", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)
}
