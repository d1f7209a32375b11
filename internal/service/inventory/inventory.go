package inventory

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entitem "github.com/physiofit/clinic_backend/internal/repo/inventoryitem"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name         string
	Category     *string
	Quantity     int
	ReorderLevel int
	UnitCost     int64 // euro cents
	Supplier     *string
}

type UpdateRequest struct {
	Name         *string
	Category     *string
	ReorderLevel *int
	UnitCost     *int64
	Supplier     *string
}

type ListRequest struct {
	Category *string
	LowStock bool // only items at or below their reorder level
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.InventoryItem, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*repo.InventoryItem, error)
	List(ctx context.Context, req ListRequest) ([]*repo.InventoryItem, error)
	Update(ctx context.Context, itemID uuid.UUID, req UpdateRequest) (*repo.InventoryItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error

	// Adjust changes the quantity by delta, which may be negative for
	// consumption. The stock never goes below zero.
	Adjust(ctx context.Context, itemID uuid.UUID, delta int) (*repo.InventoryItem, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inventoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &inventoryService{db: db}
}

func (s *inventoryService) Create(ctx context.Context, req CreateRequest) (*repo.InventoryItem, error) {
	c := s.db.InventoryItem.Create().
		SetName(req.Name)

	if req.Category != nil {
		c = c.SetNillableCategory(req.Category)
	}
	if req.Quantity > 0 {
		c = c.SetQuantity(req.Quantity)
	}
	if req.ReorderLevel > 0 {
		c = c.SetReorderLevel(req.ReorderLevel)
	}
	if req.UnitCost > 0 {
		c = c.SetUnitCost(req.UnitCost)
	}
	if req.Supplier != nil {
		c = c.SetNillableSupplier(req.Supplier)
	}

	item, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, itemID uuid.UUID) (*repo.InventoryItem, error) {
	item, err := s.db.InventoryItem.Get(ctx, itemID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context, req ListRequest) ([]*repo.InventoryItem, error) {
	q := s.db.InventoryItem.Query()

	if req.Category != nil {
		q = q.Where(entitem.CategoryEQ(*req.Category))
	}
	if req.LowStock {
		q = q.Where(func(sel *sql.Selector) {
			sel.Where(sql.ColumnsLTE(
				sel.C(entitem.FieldQuantity),
				sel.C(entitem.FieldReorderLevel),
			))
		})
	}

	items, err := q.Order(entitem.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) Update(ctx context.Context, itemID uuid.UUID, req UpdateRequest) (*repo.InventoryItem, error) {
	u := s.db.InventoryItem.UpdateOneID(itemID)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Category != nil {
		u = u.SetNillableCategory(req.Category)
	}
	if req.ReorderLevel != nil {
		u = u.SetReorderLevel(*req.ReorderLevel)
	}
	if req.UnitCost != nil {
		u = u.SetUnitCost(*req.UnitCost)
	}
	if req.Supplier != nil {
		u = u.SetNillableSupplier(req.Supplier)
	}

	item, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := s.db.InventoryItem.DeleteOneID(itemID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (s *inventoryService) Adjust(ctx context.Context, itemID uuid.UUID, delta int) (*repo.InventoryItem, error) {
	if delta == 0 {
		return s.GetByID(ctx, itemID)
	}

	// Conditional update keeps concurrent adjustments from racing past zero.
	q := s.db.InventoryItem.Update().
		Where(entitem.ID(itemID))
	if delta < 0 {
		q = q.Where(entitem.QuantityGTE(-delta))
	}

	n, err := q.AddQuantity(delta).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust inventory item: %w", err)
	}
	if n == 0 {
		exists, err := s.db.InventoryItem.Query().Where(entitem.ID(itemID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check inventory item: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrInsufficientStock
	}

	return s.GetByID(ctx, itemID)
}
