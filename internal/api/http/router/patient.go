package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetByID)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), h.Delete)

	// Decrypted tax IDs are admin territory and every read is audited.
	p.Get("/tax-id", requirePerm(authorize.ResourcePatient, authorize.ActionManage), h.TaxID)
}
