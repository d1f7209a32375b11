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
	"github.com/physiofit/clinic_backend/internal/repo/patient"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUserID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PatientCreate) SetFirstName(v string) *PatientCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PatientCreate) SetLastName(v string) *PatientCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PatientCreate) SetEmail(v string) *PatientCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmail(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PatientCreate) SetDateOfBirth(v time.Time) *PatientCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDateOfBirth(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetTaxIDEncrypted sets the "tax_id_encrypted" field.
func (_c *PatientCreate) SetTaxIDEncrypted(v string) *PatientCreate {
	_c.mutation.SetTaxIDEncrypted(v)
	return _c
}

// SetNillableTaxIDEncrypted sets the "tax_id_encrypted" field if the given value is not nil.
func (_c *PatientCreate) SetNillableTaxIDEncrypted(v *string) *PatientCreate {
	if v != nil {
		_c.SetTaxIDEncrypted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientCreate) SetStatus(v patient.Status) *PatientCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientCreate) SetNillableStatus(v *patient.Status) *PatientCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMedicalNotes sets the "medical_notes" field.
func (_c *PatientCreate) SetMedicalNotes(v string) *PatientCreate {
	_c.mutation.SetMedicalNotes(v)
	return _c
}

// SetNillableMedicalNotes sets the "medical_notes" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMedicalNotes(v *string) *PatientCreate {
	if v != nil {
		_c.SetMedicalNotes(*v)
	}
	return _c
}

// SetReferralSource sets the "referral_source" field.
func (_c *PatientCreate) SetReferralSource(v string) *PatientCreate {
	_c.mutation.SetReferralSource(v)
	return _c
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_c *PatientCreate) SetNillableReferralSource(v *string) *PatientCreate {
	if v != nil {
		_c.SetReferralSource(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := patient.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Patient.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Patient.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Patient.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(patient.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.TaxIDEncrypted(); ok {
		_spec.SetField(patient.FieldTaxIDEncrypted, field.TypeString, value)
		_node.TaxIDEncrypted = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MedicalNotes(); ok {
		_spec.SetField(patient.FieldMedicalNotes, field.TypeString, value)
		_node.MedicalNotes = &value
	}
	if value, ok := _c.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
		_node.ReferralSource = &value
	}
	return _node, _spec
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
