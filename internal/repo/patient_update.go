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
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/patient"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientUpdate) ClearUserID() *PatientUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdate) SetFirstName(v string) *PatientUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFirstName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdate) SetLastName(v string) *PatientUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PatientUpdate) SetEmail(v string) *PatientUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmail(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PatientUpdate) ClearEmail() *PatientUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdate) ClearPhone() *PatientUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdate) SetDateOfBirth(v time.Time) *PatientUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDateOfBirth(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdate) ClearDateOfBirth() *PatientUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetTaxIDEncrypted sets the "tax_id_encrypted" field.
func (_u *PatientUpdate) SetTaxIDEncrypted(v string) *PatientUpdate {
	_u.mutation.SetTaxIDEncrypted(v)
	return _u
}

// SetNillableTaxIDEncrypted sets the "tax_id_encrypted" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableTaxIDEncrypted(v *string) *PatientUpdate {
	if v != nil {
		_u.SetTaxIDEncrypted(*v)
	}
	return _u
}

// ClearTaxIDEncrypted clears the value of the "tax_id_encrypted" field.
func (_u *PatientUpdate) ClearTaxIDEncrypted() *PatientUpdate {
	_u.mutation.ClearTaxIDEncrypted()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdate) SetStatus(v patient.Status) *PatientUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableStatus(v *patient.Status) *PatientUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMedicalNotes sets the "medical_notes" field.
func (_u *PatientUpdate) SetMedicalNotes(v string) *PatientUpdate {
	_u.mutation.SetMedicalNotes(v)
	return _u
}

// SetNillableMedicalNotes sets the "medical_notes" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMedicalNotes(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMedicalNotes(*v)
	}
	return _u
}

// ClearMedicalNotes clears the value of the "medical_notes" field.
func (_u *PatientUpdate) ClearMedicalNotes() *PatientUpdate {
	_u.mutation.ClearMedicalNotes()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdate) SetReferralSource(v string) *PatientUpdate {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableReferralSource(v *string) *PatientUpdate {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdate) ClearReferralSource() *PatientUpdate {
	_u.mutation.ClearReferralSource()
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(patient.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(patient.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(patient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxIDEncrypted(); ok {
		_spec.SetField(patient.FieldTaxIDEncrypted, field.TypeString, value)
	}
	if _u.mutation.TaxIDEncryptedCleared() {
		_spec.ClearField(patient.FieldTaxIDEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MedicalNotes(); ok {
		_spec.SetField(patient.FieldMedicalNotes, field.TypeString, value)
	}
	if _u.mutation.MedicalNotesCleared() {
		_spec.ClearField(patient.FieldMedicalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientUpdateOne) ClearUserID() *PatientUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdateOne) SetFirstName(v string) *PatientUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFirstName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdateOne) SetLastName(v string) *PatientUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PatientUpdateOne) SetEmail(v string) *PatientUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmail(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PatientUpdateOne) ClearEmail() *PatientUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdateOne) ClearPhone() *PatientUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdateOne) SetDateOfBirth(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDateOfBirth(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdateOne) ClearDateOfBirth() *PatientUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetTaxIDEncrypted sets the "tax_id_encrypted" field.
func (_u *PatientUpdateOne) SetTaxIDEncrypted(v string) *PatientUpdateOne {
	_u.mutation.SetTaxIDEncrypted(v)
	return _u
}

// SetNillableTaxIDEncrypted sets the "tax_id_encrypted" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableTaxIDEncrypted(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetTaxIDEncrypted(*v)
	}
	return _u
}

// ClearTaxIDEncrypted clears the value of the "tax_id_encrypted" field.
func (_u *PatientUpdateOne) ClearTaxIDEncrypted() *PatientUpdateOne {
	_u.mutation.ClearTaxIDEncrypted()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdateOne) SetStatus(v patient.Status) *PatientUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableStatus(v *patient.Status) *PatientUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMedicalNotes sets the "medical_notes" field.
func (_u *PatientUpdateOne) SetMedicalNotes(v string) *PatientUpdateOne {
	_u.mutation.SetMedicalNotes(v)
	return _u
}

// SetNillableMedicalNotes sets the "medical_notes" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMedicalNotes(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMedicalNotes(*v)
	}
	return _u
}

// ClearMedicalNotes clears the value of the "medical_notes" field.
func (_u *PatientUpdateOne) ClearMedicalNotes() *PatientUpdateOne {
	_u.mutation.ClearMedicalNotes()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdateOne) SetReferralSource(v string) *PatientUpdateOne {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableReferralSource(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdateOne) ClearReferralSource() *PatientUpdateOne {
	_u.mutation.ClearReferralSource()
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(patient.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(patient.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(patient.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxIDEncrypted(); ok {
		_spec.SetField(patient.FieldTaxIDEncrypted, field.TypeString, value)
	}
	if _u.mutation.TaxIDEncryptedCleared() {
		_spec.ClearField(patient.FieldTaxIDEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MedicalNotes(); ok {
		_spec.SetField(patient.FieldMedicalNotes, field.TypeString, value)
	}
	if _u.mutation.MedicalNotesCleared() {
		_spec.ClearField(patient.FieldMedicalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeString)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
