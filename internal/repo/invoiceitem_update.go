// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/invoiceitem"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// InvoiceItemUpdate is the builder for updating InvoiceItem entities.
type InvoiceItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (_u *InvoiceItemUpdate) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceItemUpdate) SetInvoiceID(v uuid.UUID) *InvoiceItemUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceItemUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *InvoiceItemUpdate) SetServiceID(v uuid.UUID) *InvoiceItemUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableServiceID(v *uuid.UUID) *InvoiceItemUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *InvoiceItemUpdate) ClearServiceID() *InvoiceItemUpdate {
	_u.mutation.ClearServiceID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceItemUpdate) SetDescription(v string) *InvoiceItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableDescription(v *string) *InvoiceItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceItemUpdate) SetQuantity(v int) *InvoiceItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableQuantity(v *int) *InvoiceItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceItemUpdate) AddQuantity(v int) *InvoiceItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceItemUpdate) SetUnitPrice(v int64) *InvoiceItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableUnitPrice(v *int64) *InvoiceItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceItemUpdate) AddUnitPrice(v int64) *InvoiceItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *InvoiceItemUpdate) SetLineTotal(v int64) *InvoiceItemUpdate {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableLineTotal(v *int64) *InvoiceItemUpdate {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *InvoiceItemUpdate) AddLineTotal(v int64) *InvoiceItemUpdate {
	_u.mutation.AddLineTotal(v)
	return _u
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_u *InvoiceItemUpdate) Mutation() *InvoiceItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceItemUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := invoiceitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := invoiceitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineTotal(); ok {
		if err := invoiceitem.LineTotalValidator(v); err != nil {
			return &ValidationError{Name: "line_total", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.line_total": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceID(); ok {
		_spec.SetField(invoiceitem.FieldInvoiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(invoiceitem.FieldServiceID, field.TypeUUID, value)
	}
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(invoiceitem.FieldServiceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(invoiceitem.FieldLineTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(invoiceitem.FieldLineTotal, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceItemUpdateOne is the builder for updating a single InvoiceItem entity.
type InvoiceItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceItemUpdateOne) SetInvoiceID(v uuid.UUID) *InvoiceItemUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *InvoiceItemUpdateOne) SetServiceID(v uuid.UUID) *InvoiceItemUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableServiceID(v *uuid.UUID) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *InvoiceItemUpdateOne) ClearServiceID() *InvoiceItemUpdateOne {
	_u.mutation.ClearServiceID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceItemUpdateOne) SetDescription(v string) *InvoiceItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableDescription(v *string) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceItemUpdateOne) SetQuantity(v int) *InvoiceItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableQuantity(v *int) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceItemUpdateOne) AddQuantity(v int) *InvoiceItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceItemUpdateOne) SetUnitPrice(v int64) *InvoiceItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableUnitPrice(v *int64) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceItemUpdateOne) AddUnitPrice(v int64) *InvoiceItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *InvoiceItemUpdateOne) SetLineTotal(v int64) *InvoiceItemUpdateOne {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableLineTotal(v *int64) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *InvoiceItemUpdateOne) AddLineTotal(v int64) *InvoiceItemUpdateOne {
	_u.mutation.AddLineTotal(v)
	return _u
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_u *InvoiceItemUpdateOne) Mutation() *InvoiceItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (_u *InvoiceItemUpdateOne) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceItemUpdateOne) Select(field string, fields ...string) *InvoiceItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceItem entity.
func (_u *InvoiceItemUpdateOne) Save(ctx context.Context) (*InvoiceItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceItemUpdateOne) SaveX(ctx context.Context) *InvoiceItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceItemUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := invoiceitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := invoiceitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineTotal(); ok {
		if err := invoiceitem.LineTotalValidator(v); err != nil {
			return &ValidationError{Name: "line_total", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.line_total": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InvoiceItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceitem.FieldID)
		for _, f := range fields {
			if !invoiceitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != invoiceitem.FieldID {
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
	if value, ok := _u.mutation.InvoiceID(); ok {
		_spec.SetField(invoiceitem.FieldInvoiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(invoiceitem.FieldServiceID, field.TypeUUID, value)
	}
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(invoiceitem.FieldServiceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(invoiceitem.FieldLineTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(invoiceitem.FieldLineTotal, field.TypeInt64, value)
	}
	_node = &InvoiceItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
