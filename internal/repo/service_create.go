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
	"github.com/physiofit/clinic_backend/internal/repo/service"
)

// ServiceCreate is the builder for creating a Service entity.
type ServiceCreate struct {
	config
	mutation *ServiceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceCreate) SetCreatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableCreatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceCreate) SetUpdatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableUpdatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceCreate) SetName(v string) *ServiceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceCreate) SetDescription(v string) *ServiceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableDescription(v *string) *ServiceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ServiceCreate) SetUnitPrice(v int64) *ServiceCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *ServiceCreate) SetDurationMinutes(v int) *ServiceCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableDurationMinutes(v *int) *ServiceCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ServiceCreate) SetActive(v bool) *ServiceCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableActive(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceCreate) SetID(v uuid.UUID) *ServiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableID(v *uuid.UUID) *ServiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceMutation object of the builder.
func (_c *ServiceCreate) Mutation() *ServiceMutation {
	return _c.mutation
}

// Save creates the Service in the database.
func (_c *ServiceCreate) Save(ctx context.Context) (*Service, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceCreate) SaveX(ctx context.Context) *Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := service.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := service.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := service.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := service.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := service.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Service.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Service.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Service.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Service.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "Service.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := service.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "Service.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Service.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := service.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Service.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Service.active"`)}
	}
	return nil
}

func (_c *ServiceCreate) sqlSave(ctx context.Context) (*Service, error) {
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

func (_c *ServiceCreate) createSpec() (*Service, *sqlgraph.CreateSpec) {
	var (
		_node = &Service{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(service.Table, sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(service.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(service.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(service.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(service.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(service.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ServiceCreateBulk is the builder for creating many Service entities in bulk.
type ServiceCreateBulk struct {
	config
	err      error
	builders []*ServiceCreate
}

// Save creates the Service entities in the database.
func (_c *ServiceCreateBulk) Save(ctx context.Context) ([]*Service, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Service, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceMutation)
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
func (_c *ServiceCreateBulk) SaveX(ctx context.Context) []*Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
