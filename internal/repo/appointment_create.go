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
	"github.com/physiofit/clinic_backend/internal/repo/appointment"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentCreate) SetPatientID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPhysioID sets the "physio_id" field.
func (_c *AppointmentCreate) SetPhysioID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPhysioID(v)
	return _c
}

// SetNillablePhysioID sets the "physio_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePhysioID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetPhysioID(*v)
	}
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *AppointmentCreate) SetServiceID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *AppointmentCreate) SetRoomID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableRoomID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AppointmentCreate) SetEndTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReminderSent sets the "reminder_sent" field.
func (_c *AppointmentCreate) SetReminderSent(v bool) *AppointmentCreate {
	_c.mutation.SetReminderSent(v)
	return _c
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableReminderSent(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetReminderSent(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AppointmentCreate) SetNotes(v string) *AppointmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNotes(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *AppointmentCreate) SetCancellationReason(v string) *AppointmentCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancellationReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AppointmentCreate) SetCompletedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCompletedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		v := appointment.DefaultReminderSent
		_c.mutation.SetReminderSent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Appointment.patient_id"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`repo: missing required field "Appointment.service_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Appointment.end_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		return &ValidationError{Name: "reminder_sent", err: errors.New(`repo: missing required field "Appointment.reminder_sent"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.PhysioID(); ok {
		_spec.SetField(appointment.FieldPhysioID, field.TypeUUID, value)
		_node.PhysioID = &value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeUUID, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(appointment.FieldRoomID, field.TypeUUID, value)
		_node.RoomID = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReminderSent(); ok {
		_spec.SetField(appointment.FieldReminderSent, field.TypeBool, value)
		_node.ReminderSent = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
