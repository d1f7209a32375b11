// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/inventoryitem"
)

// InventoryItemCreate is the builder for creating a InventoryItem entity.
type InventoryItemCreate struct {
	config
	mutation *InventoryItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InventoryItemCreate) SetCreatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCreatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InventoryItemCreate) SetUpdatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUpdatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *InventoryItemCreate) SetName(v string) *InventoryItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InventoryItemCreate) SetCategory(v string) *InventoryItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCategory(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InventoryItemCreate) SetQuantity(v int) *InventoryItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableQuantity(v *int) *InventoryItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetReorderLevel sets the "reorder_level" field.
func (_c *InventoryItemCreate) SetReorderLevel(v int) *InventoryItemCreate {
	_c.mutation.SetReorderLevel(v)
	return _c
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableReorderLevel(v *int) *InventoryItemCreate {
	if v != nil {
		_c.SetReorderLevel(*v)
	}
	return _c
}

// SetUnitCost sets the "unit_cost" field.
func (_c *InventoryItemCreate) SetUnitCost(v int64) *InventoryItemCreate {
	_c.mutation.SetUnitCost(v)
	return _c
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUnitCost(v *int64) *InventoryItemCreate {
	if v != nil {
		_c.SetUnitCost(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" field.
func (_c *InventoryItemCreate) SetSupplier(v string) *InventoryItemCreate {
	_c.mutation.SetSupplier(v)
	return _c
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableSupplier(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetSupplier(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InventoryItemCreate) SetID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableID(v *uuid.UUID) *InventoryItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_c *InventoryItemCreate) Mutation() *InventoryItemMutation {
	return _c.mutation
}

// Save creates the InventoryItem in the database.
func (_c *InventoryItemCreate) Save(ctx context.Context) (*InventoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryItemCreate) SaveX(ctx context.Context) *InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inventoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inventoryitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := inventoryitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		v := inventoryitem.DefaultReorderLevel
		_c.mutation.SetReorderLevel(v)
	}
	if _, ok := _c.mutation.UnitCost(); !ok {
		v := inventoryitem.DefaultUnitCost
		_c.mutation.SetUnitCost(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inventoryitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InventoryItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InventoryItem.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "InventoryItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "InventoryItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		return &ValidationError{Name: "reorder_level", err: errors.New(`repo: missing required field "InventoryItem.reorder_level"`)}
	}
	if v, ok := _c.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitCost(); !ok {
		return &ValidationError{Name: "unit_cost", err: errors.New(`repo: missing required field "InventoryItem.unit_cost"`)}
	}
	if v, ok := _c.mutation.UnitCost(); ok {
		if err := inventoryitem.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_cost": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	return nil
}

func (_c *InventoryItemCreate) sqlSave(ctx context.Context) (*InventoryItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InventoryItemCreate) createSpec() (*InventoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventoryitem.Table, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
		_node.ReorderLevel = value
	}
	if value, ok := _c.mutation.UnitCost(); ok {
		_spec.SetField(inventoryitem.FieldUnitCost, field.TypeInt64, value)
		_node.UnitCost = value
	}
	if value, ok := _c.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
		_node.Supplier = &value
	}
	return _node, _spec
}

// InventoryItemCreateBulk is the builder for creating many InventoryItem entities in bulk.
type InventoryItemCreateBulk struct {
	config
	err      error
	builders []*InventoryItemCreate
}

// Save creates the InventoryItem entities in the database.
func (_c *InventoryItemCreateBulk) Save(ctx context.Context) ([]*InventoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) SaveX(ctx context.Context) []*InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
