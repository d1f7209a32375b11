// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/physiofit/clinic_backend/internal/repo/inventoryitem"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdate) SetName(v string) *InventoryItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableName(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdate) SetCategory(v string) *InventoryItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCategory(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InventoryItemUpdate) ClearCategory() *InventoryItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdate) SetQuantity(v int) *InventoryItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableQuantity(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdate) AddQuantity(v int) *InventoryItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *InventoryItemUpdate) SetReorderLevel(v int) *InventoryItemUpdate {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableReorderLevel(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *InventoryItemUpdate) AddReorderLevel(v int) *InventoryItemUpdate {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *InventoryItemUpdate) SetUnitCost(v int64) *InventoryItemUpdate {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUnitCost(v *int64) *InventoryItemUpdate {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *InventoryItemUpdate) AddUnitCost(v int64) *InventoryItemUpdate {
	_u.mutation.AddUnitCost(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdate) SetSupplier(v string) *InventoryItemUpdate {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSupplier(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdate) ClearSupplier() *InventoryItemUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitCost(); ok {
		if err := inventoryitem.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(inventoryitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(inventoryitem.FieldUnitCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(inventoryitem.FieldUnitCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdateOne) SetName(v string) *InventoryItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableName(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdateOne) SetCategory(v string) *InventoryItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCategory(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InventoryItemUpdateOne) ClearCategory() *InventoryItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdateOne) SetQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableQuantity(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdateOne) AddQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *InventoryItemUpdateOne) SetReorderLevel(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableReorderLevel(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *InventoryItemUpdateOne) AddReorderLevel(v int) *InventoryItemUpdateOne {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *InventoryItemUpdateOne) SetUnitCost(v int64) *InventoryItemUpdateOne {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUnitCost(v *int64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *InventoryItemUpdateOne) AddUnitCost(v int64) *InventoryItemUpdateOne {
	_u.mutation.AddUnitCost(v)
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdateOne) SetSupplier(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSupplier(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdateOne) ClearSupplier() *InventoryItemUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitCost(); ok {
		if err := inventoryitem.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(inventoryitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(inventoryitem.FieldUnitCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(inventoryitem.FieldUnitCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
