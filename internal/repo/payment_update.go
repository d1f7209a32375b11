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
	"github.com/physiofit/clinic_backend/internal/repo/payment"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *PaymentUpdate) SetInvoiceID(v uuid.UUID) *PaymentUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableInvoiceID(v *uuid.UUID) *PaymentUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentUpdate) SetAmount(v int64) *PaymentUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableAmount(v *int64) *PaymentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentUpdate) AddAmount(v int64) *PaymentUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdate) SetMethod(v payment.Method) *PaymentUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableMethod(v *payment.Method) *PaymentUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *PaymentUpdate) SetReceivedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReceivedAt(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *PaymentUpdate) SetReference(v string) *PaymentUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableReference(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *PaymentUpdate) ClearReference() *PaymentUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *PaymentUpdate) SetRecordedBy(v uuid.UUID) *PaymentUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableRecordedBy(v *uuid.UUID) *PaymentUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *PaymentUpdate) ClearRecordedBy() *PaymentUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := payment.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Payment.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := payment.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "Payment.reference": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceID(); ok {
		_spec.SetField(payment.FieldInvoiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(payment.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(payment.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(payment.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(payment.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(payment.FieldRecordedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *PaymentUpdateOne) SetInvoiceID(v uuid.UUID) *PaymentUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *PaymentUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentUpdateOne) SetAmount(v int64) *PaymentUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableAmount(v *int64) *PaymentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentUpdateOne) AddAmount(v int64) *PaymentUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentUpdateOne) SetMethod(v payment.Method) *PaymentUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableMethod(v *payment.Method) *PaymentUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *PaymentUpdateOne) SetReceivedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReceivedAt(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *PaymentUpdateOne) SetReference(v string) *PaymentUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableReference(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *PaymentUpdateOne) ClearReference() *PaymentUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *PaymentUpdateOne) SetRecordedBy(v uuid.UUID) *PaymentUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableRecordedBy(v *uuid.UUID) *PaymentUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *PaymentUpdateOne) ClearRecordedBy() *PaymentUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := payment.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Payment.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := payment.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "Payment.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := payment.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "Payment.reference": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
		_spec.SetField(payment.FieldInvoiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payment.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(payment.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(payment.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(payment.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(payment.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(payment.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(payment.FieldRecordedBy, field.TypeUUID)
	}
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
