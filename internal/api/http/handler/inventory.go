package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/inventory"
)

type InventoryHandler struct {
	svc   inventory.Service
	audit audit.Service
}

func NewInventoryHandler(svc inventory.Service, auditSvc audit.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc, audit: auditSvc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrInsufficientStock):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /inventory
func (h *InventoryHandler) List(c fiber.Ctx) error {
	var q struct {
		Category *string `query:"category"`
		LowStock bool    `query:"low_stock"`
	}
	_ = c.Bind().Query(&q)

	items, err := h.svc.List(c.Context(), inventory.ListRequest{
		Category: q.Category,
		LowStock: q.LowStock,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, items)
}

// GET /inventory/:id
func (h *InventoryHandler) GetByID(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}
	item, err := h.svc.GetByID(c.Context(), itemID)
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, item)
}

// POST /inventory
func (h *InventoryHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name         string  `json:"name"`
		Category     *string `json:"category"`
		Quantity     int     `json:"quantity"`
		ReorderLevel int     `json:"reorder_level"`
		UnitCost     int64   `json:"unit_cost"`
		Supplier     *string `json:"supplier"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	item, err := h.svc.Create(c.Context(), inventory.CreateRequest{
		Name:         body.Name,
		Category:     body.Category,
		Quantity:     body.Quantity,
		ReorderLevel: body.ReorderLevel,
		UnitCost:     body.UnitCost,
		Supplier:     body.Supplier,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "create", "inventory_item", item.ID, map[string]any{
		"name": item.Name,
	})
	return created(c, item)
}

// PATCH /inventory/:id
func (h *InventoryHandler) Update(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Name         *string `json:"name"`
		Category     *string `json:"category"`
		ReorderLevel *int    `json:"reorder_level"`
		UnitCost     *int64  `json:"unit_cost"`
		Supplier     *string `json:"supplier"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.Update(c.Context(), itemID, inventory.UpdateRequest{
		Name:         body.Name,
		Category:     body.Category,
		ReorderLevel: body.ReorderLevel,
		UnitCost:     body.UnitCost,
		Supplier:     body.Supplier,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "update", "inventory_item", item.ID, nil)
	return ok(c, item)
}

// POST /inventory/:id/adjust
func (h *InventoryHandler) Adjust(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Delta == 0 {
		return badRequest(c, "delta must be non-zero")
	}

	item, err := h.svc.Adjust(c.Context(), itemID, body.Delta)
	if err != nil {
		return mapInventoryError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "adjust_stock", "inventory_item", item.ID, map[string]any{
		"delta":    body.Delta,
		"quantity": item.Quantity,
	})
	return ok(c, item)
}

// DELETE /inventory/:id
func (h *InventoryHandler) Delete(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.svc.Delete(c.Context(), itemID); err != nil {
		return mapInventoryError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "delete", "inventory_item", itemID, nil)
	return noContent(c)
}
