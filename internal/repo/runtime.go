// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/appointment"
	"github.com/physiofit/clinic_backend/internal/repo/auditlog"
	"github.com/physiofit/clinic_backend/internal/repo/inventoryitem"
	"github.com/physiofit/clinic_backend/internal/repo/invoice"
	"github.com/physiofit/clinic_backend/internal/repo/invoiceitem"
	"github.com/physiofit/clinic_backend/internal/repo/patient"
	"github.com/physiofit/clinic_backend/internal/repo/payment"
	"github.com/physiofit/clinic_backend/internal/repo/room"
	"github.com/physiofit/clinic_backend/internal/repo/service"
	"github.com/physiofit/clinic_backend/internal/repo/user"
	"github.com/physiofit/clinic_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescReminderSent is the schema descriptor for reminder_sent field.
	appointmentDescReminderSent := appointmentFields[7].Descriptor()
	// appointment.DefaultReminderSent holds the default value on creation for the reminder_sent field.
	appointment.DefaultReminderSent = appointmentDescReminderSent.Default.(bool)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogMixinFields1 := auditlogMixin[1].Fields()
	_ = auditlogMixinFields1
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields1[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[2].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescRequestID is the schema descriptor for request_id field.
	auditlogDescRequestID := auditlogFields[5].Descriptor()
	// auditlog.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	auditlog.RequestIDValidator = auditlogDescRequestID.Validators[0].(func(string) error)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	inventoryitemMixin := schema.InventoryItem{}.Mixin()
	inventoryitemMixinFields0 := inventoryitemMixin[0].Fields()
	_ = inventoryitemMixinFields0
	inventoryitemMixinFields1 := inventoryitemMixin[1].Fields()
	_ = inventoryitemMixinFields1
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemMixinFields1[0].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemMixinFields1[1].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescName is the schema descriptor for name field.
	inventoryitemDescName := inventoryitemFields[0].Descriptor()
	// inventoryitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	inventoryitem.NameValidator = inventoryitemDescName.Validators[0].(func(string) error)
	// inventoryitemDescCategory is the schema descriptor for category field.
	inventoryitemDescCategory := inventoryitemFields[1].Descriptor()
	// inventoryitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	inventoryitem.CategoryValidator = inventoryitemDescCategory.Validators[0].(func(string) error)
	// inventoryitemDescQuantity is the schema descriptor for quantity field.
	inventoryitemDescQuantity := inventoryitemFields[2].Descriptor()
	// inventoryitem.DefaultQuantity holds the default value on creation for the quantity field.
	inventoryitem.DefaultQuantity = inventoryitemDescQuantity.Default.(int)
	// inventoryitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	inventoryitem.QuantityValidator = inventoryitemDescQuantity.Validators[0].(func(int) error)
	// inventoryitemDescReorderLevel is the schema descriptor for reorder_level field.
	inventoryitemDescReorderLevel := inventoryitemFields[3].Descriptor()
	// inventoryitem.DefaultReorderLevel holds the default value on creation for the reorder_level field.
	inventoryitem.DefaultReorderLevel = inventoryitemDescReorderLevel.Default.(int)
	// inventoryitem.ReorderLevelValidator is a validator for the "reorder_level" field. It is called by the builders before save.
	inventoryitem.ReorderLevelValidator = inventoryitemDescReorderLevel.Validators[0].(func(int) error)
	// inventoryitemDescUnitCost is the schema descriptor for unit_cost field.
	inventoryitemDescUnitCost := inventoryitemFields[4].Descriptor()
	// inventoryitem.DefaultUnitCost holds the default value on creation for the unit_cost field.
	inventoryitem.DefaultUnitCost = inventoryitemDescUnitCost.Default.(int64)
	// inventoryitem.UnitCostValidator is a validator for the "unit_cost" field. It is called by the builders before save.
	inventoryitem.UnitCostValidator = inventoryitemDescUnitCost.Validators[0].(func(int64) error)
	// inventoryitemDescSupplier is the schema descriptor for supplier field.
	inventoryitemDescSupplier := inventoryitemFields[5].Descriptor()
	// inventoryitem.SupplierValidator is a validator for the "supplier" field. It is called by the builders before save.
	inventoryitem.SupplierValidator = inventoryitemDescSupplier.Validators[0].(func(string) error)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemMixinFields0[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceMixinFields1 := invoiceMixin[1].Fields()
	_ = invoiceMixinFields1
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields1[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields1[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescNumber is the schema descriptor for number field.
	invoiceDescNumber := invoiceFields[2].Descriptor()
	// invoice.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	invoice.NumberValidator = invoiceDescNumber.Validators[0].(func(string) error)
	// invoiceDescTotalAmount is the schema descriptor for total_amount field.
	invoiceDescTotalAmount := invoiceFields[4].Descriptor()
	// invoice.DefaultTotalAmount holds the default value on creation for the total_amount field.
	invoice.DefaultTotalAmount = invoiceDescTotalAmount.Default.(int64)
	// invoice.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	invoice.TotalAmountValidator = invoiceDescTotalAmount.Validators[0].(func(int64) error)
	// invoiceDescAmountPaid is the schema descriptor for amount_paid field.
	invoiceDescAmountPaid := invoiceFields[5].Descriptor()
	// invoice.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	invoice.DefaultAmountPaid = invoiceDescAmountPaid.Default.(int64)
	// invoice.AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	invoice.AmountPaidValidator = invoiceDescAmountPaid.Validators[0].(func(int64) error)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemMixin := schema.InvoiceItem{}.Mixin()
	invoiceitemMixinFields0 := invoiceitemMixin[0].Fields()
	_ = invoiceitemMixinFields0
	invoiceitemMixinFields1 := invoiceitemMixin[1].Fields()
	_ = invoiceitemMixinFields1
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescCreatedAt is the schema descriptor for created_at field.
	invoiceitemDescCreatedAt := invoiceitemMixinFields1[0].Descriptor()
	// invoiceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceitem.DefaultCreatedAt = invoiceitemDescCreatedAt.Default.(func() time.Time)
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[2].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescQuantity is the schema descriptor for quantity field.
	invoiceitemDescQuantity := invoiceitemFields[3].Descriptor()
	// invoiceitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	invoiceitem.QuantityValidator = invoiceitemDescQuantity.Validators[0].(func(int) error)
	// invoiceitemDescUnitPrice is the schema descriptor for unit_price field.
	invoiceitemDescUnitPrice := invoiceitemFields[4].Descriptor()
	// invoiceitem.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	invoiceitem.UnitPriceValidator = invoiceitemDescUnitPrice.Validators[0].(func(int64) error)
	// invoiceitemDescLineTotal is the schema descriptor for line_total field.
	invoiceitemDescLineTotal := invoiceitemFields[5].Descriptor()
	// invoiceitem.LineTotalValidator is a validator for the "line_total" field. It is called by the builders before save.
	invoiceitem.LineTotalValidator = invoiceitemDescLineTotal.Validators[0].(func(int64) error)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemMixinFields0[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescReferralSource is the schema descriptor for referral_source field.
	patientDescReferralSource := patientFields[9].Descriptor()
	// patient.ReferralSourceValidator is a validator for the "referral_source" field. It is called by the builders before save.
	patient.ReferralSourceValidator = patientDescReferralSource.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescAmount is the schema descriptor for amount field.
	paymentDescAmount := paymentFields[1].Descriptor()
	// payment.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	payment.AmountValidator = paymentDescAmount.Validators[0].(func(int64) error)
	// paymentDescReference is the schema descriptor for reference field.
	paymentDescReference := paymentFields[4].Descriptor()
	// payment.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	payment.ReferenceValidator = paymentDescReference.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	roomMixin := schema.Room{}.Mixin()
	roomMixinFields0 := roomMixin[0].Fields()
	_ = roomMixinFields0
	roomMixinFields1 := roomMixin[1].Fields()
	_ = roomMixinFields1
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomMixinFields1[0].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	// roomDescUpdatedAt is the schema descriptor for updated_at field.
	roomDescUpdatedAt := roomMixinFields1[1].Descriptor()
	// room.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	room.DefaultUpdatedAt = roomDescUpdatedAt.Default.(func() time.Time)
	// room.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	room.UpdateDefaultUpdatedAt = roomDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[0].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescCapacity is the schema descriptor for capacity field.
	roomDescCapacity := roomFields[1].Descriptor()
	// room.DefaultCapacity holds the default value on creation for the capacity field.
	room.DefaultCapacity = roomDescCapacity.Default.(int)
	// room.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	room.CapacityValidator = roomDescCapacity.Validators[0].(func(int) error)
	// roomDescActive is the schema descriptor for active field.
	roomDescActive := roomFields[2].Descriptor()
	// room.DefaultActive holds the default value on creation for the active field.
	room.DefaultActive = roomDescActive.Default.(bool)
	// roomDescID is the schema descriptor for id field.
	roomDescID := roomMixinFields0[0].Descriptor()
	// room.DefaultID holds the default value on creation for the id field.
	room.DefaultID = roomDescID.Default.(func() uuid.UUID)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceMixinFields1 := serviceMixin[1].Fields()
	_ = serviceMixinFields1
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields1[0].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields1[1].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[0].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = serviceDescName.Validators[0].(func(string) error)
	// serviceDescUnitPrice is the schema descriptor for unit_price field.
	serviceDescUnitPrice := serviceFields[2].Descriptor()
	// service.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	service.UnitPriceValidator = serviceDescUnitPrice.Validators[0].(func(int64) error)
	// serviceDescDurationMinutes is the schema descriptor for duration_minutes field.
	serviceDescDurationMinutes := serviceFields[3].Descriptor()
	// service.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	service.DefaultDurationMinutes = serviceDescDurationMinutes.Default.(int)
	// service.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	service.DurationMinutesValidator = serviceDescDurationMinutes.Validators[0].(func(int) error)
	// serviceDescActive is the schema descriptor for active field.
	serviceDescActive := serviceFields[4].Descriptor()
	// service.DefaultActive holds the default value on creation for the active field.
	service.DefaultActive = serviceDescActive.Default.(bool)
	// serviceDescID is the schema descriptor for id field.
	serviceDescID := serviceMixinFields0[0].Descriptor()
	// service.DefaultID holds the default value on creation for the id field.
	service.DefaultID = serviceDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescMustChangePassword is the schema descriptor for must_change_password field.
	userDescMustChangePassword := userFields[7].Descriptor()
	// user.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	user.DefaultMustChangePassword = userDescMustChangePassword.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[9].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
