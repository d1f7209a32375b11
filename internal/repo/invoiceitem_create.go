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
	"github.com/physiofit/clinic_backend/internal/repo/invoiceitem"
)

// InvoiceItemCreate is the builder for creating a InvoiceItem entity.
type InvoiceItemCreate struct {
	config
	mutation *InvoiceItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceItemCreate) SetCreatedAt(v time.Time) *InvoiceItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableCreatedAt(v *time.Time) *InvoiceItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceItemCreate) SetInvoiceID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *InvoiceItemCreate) SetServiceID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableServiceID(v *uuid.UUID) *InvoiceItemCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *InvoiceItemCreate) SetDescription(v string) *InvoiceItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InvoiceItemCreate) SetQuantity(v int) *InvoiceItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *InvoiceItemCreate) SetUnitPrice(v int64) *InvoiceItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetLineTotal sets the "line_total" field.
func (_c *InvoiceItemCreate) SetLineTotal(v int64) *InvoiceItemCreate {
	_c.mutation.SetLineTotal(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceItemCreate) SetID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableID(v *uuid.UUID) *InvoiceItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_c *InvoiceItemCreate) Mutation() *InvoiceItemMutation {
	return _c.mutation
}

// Save creates the InvoiceItem in the database.
func (_c *InvoiceItemCreate) Save(ctx context.Context) (*InvoiceItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceItemCreate) SaveX(ctx context.Context) *InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InvoiceItem.created_at"`)}
	}
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`repo: missing required field "InvoiceItem.invoice_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "InvoiceItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "InvoiceItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := invoiceitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "InvoiceItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := invoiceitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LineTotal(); !ok {
		return &ValidationError{Name: "line_total", err: errors.New(`repo: missing required field "InvoiceItem.line_total"`)}
	}
	if v, ok := _c.mutation.LineTotal(); ok {
		if err := invoiceitem.LineTotalValidator(v); err != nil {
			return &ValidationError{Name: "line_total", err: fmt.Errorf(`repo: validator failed for field "InvoiceItem.line_total": %w`, err)}
		}
	}
	return nil
}

func (_c *InvoiceItemCreate) sqlSave(ctx context.Context) (*InvoiceItem, error) {
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

func (_c *InvoiceItemCreate) createSpec() (*InvoiceItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceitem.Table, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.InvoiceID(); ok {
		_spec.SetField(invoiceitem.FieldInvoiceID, field.TypeUUID, value)
		_node.InvoiceID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(invoiceitem.FieldServiceID, field.TypeUUID, value)
		_node.ServiceID = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.LineTotal(); ok {
		_spec.SetField(invoiceitem.FieldLineTotal, field.TypeInt64, value)
		_node.LineTotal = value
	}
	return _node, _spec
}

// InvoiceItemCreateBulk is the builder for creating many InvoiceItem entities in bulk.
type InvoiceItemCreateBulk struct {
	config
	err      error
	builders []*InvoiceItemCreate
}

// Save creates the InvoiceItem entities in the database.
func (_c *InvoiceItemCreateBulk) Save(ctx context.Context) ([]*InvoiceItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceItemMutation)
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
func (_c *InvoiceItemCreateBulk) SaveX(ctx context.Context) []*InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
