package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	bh *handler.BillingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Update)
	a.Patch("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Confirm)
	a.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Complete)
	a.Patch("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.MarkNoShow)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Cancel)

	a.Post("/invoice", requirePerm(authorize.ResourceInvoice, authorize.ActionCreate), bh.CreateFromAppointment)
}
