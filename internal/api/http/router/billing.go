package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerBillingRoutes(
	api fiber.Router,
	h *handler.BillingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	invoices := api.Group("/invoices", authRequired)

	invoices.Get("/", requirePerm(authorize.ResourceInvoice, authorize.ActionList), h.List)
	invoices.Post("/", requirePerm(authorize.ResourceInvoice, authorize.ActionCreate), h.Create)

	inv := invoices.Group("/:id")
	inv.Get("/", requirePerm(authorize.ResourceInvoice, authorize.ActionRead), h.GetByID)
	inv.Patch("/issue", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.Issue)
	inv.Patch("/cancel", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.Cancel)

	inv.Post("/items", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.AddItem)
	inv.Delete("/items/:itemId", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.RemoveItem)

	inv.Post("/payments", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), h.RecordPayment)
}
