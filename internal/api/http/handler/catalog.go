package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrRoomNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidCapacity):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /services
func (h *CatalogHandler) ListServices(c fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"
	services, err := h.svc.ListServices(c.Context(), activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, services)
}

// GET /services/:id
func (h *CatalogHandler) GetService(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}
	svc, err := h.svc.GetService(c.Context(), serviceID)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// POST /services
func (h *CatalogHandler) CreateService(c fiber.Ctx) error {
	var body struct {
		Name            string  `json:"name"`
		Description     *string `json:"description"`
		UnitPrice       int64   `json:"unit_price"`
		DurationMinutes int     `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	svc, err := h.svc.CreateService(c.Context(), catalog.CreateServiceRequest{
		Name:            body.Name,
		Description:     body.Description,
		UnitPrice:       body.UnitPrice,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, svc)
}

// PATCH /services/:id
func (h *CatalogHandler) UpdateService(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		UnitPrice       *int64  `json:"unit_price"`
		DurationMinutes *int    `json:"duration_minutes"`
		Active          *bool   `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.UpdateService(c.Context(), serviceID, catalog.UpdateServiceRequest{
		Name:            body.Name,
		Description:     body.Description,
		UnitPrice:       body.UnitPrice,
		DurationMinutes: body.DurationMinutes,
		Active:          body.Active,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// GET /rooms
func (h *CatalogHandler) ListRooms(c fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"
	rooms, err := h.svc.ListRooms(c.Context(), activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, rooms)
}

// GET /rooms/:id
func (h *CatalogHandler) GetRoom(c fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid room id")
	}
	room, err := h.svc.GetRoom(c.Context(), roomID)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, room)
}

// POST /rooms
func (h *CatalogHandler) CreateRoom(c fiber.Ctx) error {
	var body struct {
		Name     string  `json:"name"`
		Capacity int     `json:"capacity"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	room, err := h.svc.CreateRoom(c.Context(), catalog.CreateRoomRequest{
		Name:     body.Name,
		Capacity: body.Capacity,
		Notes:    body.Notes,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, room)
}

// PATCH /rooms/:id
func (h *CatalogHandler) UpdateRoom(c fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	var body struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		Active   *bool   `json:"active"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	room, err := h.svc.UpdateRoom(c.Context(), roomID, catalog.UpdateRoomRequest{
		Name:     body.Name,
		Capacity: body.Capacity,
		Active:   body.Active,
		Notes:    body.Notes,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, room)
}
