// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// TaxIDEncrypted applies equality check predicate on the "tax_id_encrypted" field. It's identical to TaxIDEncryptedEQ.
func TaxIDEncrypted(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTaxIDEncrypted, v))
}

// MedicalNotes applies equality check predicate on the "medical_notes" field. It's identical to MedicalNotesEQ.
func MedicalNotes(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalNotes, v))
}

// ReferralSource applies equality check predicate on the "referral_source" field. It's identical to ReferralSourceEQ.
func ReferralSource(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferralSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldUserID))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldLastName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPhone, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDateOfBirth))
}

// TaxIDEncryptedEQ applies the EQ predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedNEQ applies the NEQ predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedIn applies the In predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldTaxIDEncrypted, vs...))
}

// TaxIDEncryptedNotIn applies the NotIn predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldTaxIDEncrypted, vs...))
}

// TaxIDEncryptedGT applies the GT predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedGTE applies the GTE predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedLT applies the LT predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedLTE applies the LTE predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedContains applies the Contains predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedHasPrefix applies the HasPrefix predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedHasSuffix applies the HasSuffix predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedIsNil applies the IsNil predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldTaxIDEncrypted))
}

// TaxIDEncryptedNotNil applies the NotNil predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldTaxIDEncrypted))
}

// TaxIDEncryptedEqualFold applies the EqualFold predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldTaxIDEncrypted, v))
}

// TaxIDEncryptedContainsFold applies the ContainsFold predicate on the "tax_id_encrypted" field.
func TaxIDEncryptedContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldTaxIDEncrypted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldStatus, vs...))
}

// MedicalNotesEQ applies the EQ predicate on the "medical_notes" field.
func MedicalNotesEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalNotes, v))
}

// MedicalNotesNEQ applies the NEQ predicate on the "medical_notes" field.
func MedicalNotesNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMedicalNotes, v))
}

// MedicalNotesIn applies the In predicate on the "medical_notes" field.
func MedicalNotesIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMedicalNotes, vs...))
}

// MedicalNotesNotIn applies the NotIn predicate on the "medical_notes" field.
func MedicalNotesNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMedicalNotes, vs...))
}

// MedicalNotesGT applies the GT predicate on the "medical_notes" field.
func MedicalNotesGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMedicalNotes, v))
}

// MedicalNotesGTE applies the GTE predicate on the "medical_notes" field.
func MedicalNotesGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMedicalNotes, v))
}

// MedicalNotesLT applies the LT predicate on the "medical_notes" field.
func MedicalNotesLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMedicalNotes, v))
}

// MedicalNotesLTE applies the LTE predicate on the "medical_notes" field.
func MedicalNotesLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMedicalNotes, v))
}

// MedicalNotesContains applies the Contains predicate on the "medical_notes" field.
func MedicalNotesContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMedicalNotes, v))
}

// MedicalNotesHasPrefix applies the HasPrefix predicate on the "medical_notes" field.
func MedicalNotesHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMedicalNotes, v))
}

// MedicalNotesHasSuffix applies the HasSuffix predicate on the "medical_notes" field.
func MedicalNotesHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMedicalNotes, v))
}

// MedicalNotesIsNil applies the IsNil predicate on the "medical_notes" field.
func MedicalNotesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMedicalNotes))
}

// MedicalNotesNotNil applies the NotNil predicate on the "medical_notes" field.
func MedicalNotesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMedicalNotes))
}

// MedicalNotesEqualFold applies the EqualFold predicate on the "medical_notes" field.
func MedicalNotesEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMedicalNotes, v))
}

// MedicalNotesContainsFold applies the ContainsFold predicate on the "medical_notes" field.
func MedicalNotesContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMedicalNotes, v))
}

// ReferralSourceEQ applies the EQ predicate on the "referral_source" field.
func ReferralSourceEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferralSource, v))
}

// ReferralSourceNEQ applies the NEQ predicate on the "referral_source" field.
func ReferralSourceNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldReferralSource, v))
}

// ReferralSourceIn applies the In predicate on the "referral_source" field.
func ReferralSourceIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldReferralSource, vs...))
}

// ReferralSourceNotIn applies the NotIn predicate on the "referral_source" field.
func ReferralSourceNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldReferralSource, vs...))
}

// ReferralSourceGT applies the GT predicate on the "referral_source" field.
func ReferralSourceGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldReferralSource, v))
}

// ReferralSourceGTE applies the GTE predicate on the "referral_source" field.
func ReferralSourceGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldReferralSource, v))
}

// ReferralSourceLT applies the LT predicate on the "referral_source" field.
func ReferralSourceLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldReferralSource, v))
}

// ReferralSourceLTE applies the LTE predicate on the "referral_source" field.
func ReferralSourceLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldReferralSource, v))
}

// ReferralSourceContains applies the Contains predicate on the "referral_source" field.
func ReferralSourceContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldReferralSource, v))
}

// ReferralSourceHasPrefix applies the HasPrefix predicate on the "referral_source" field.
func ReferralSourceHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldReferralSource, v))
}

// ReferralSourceHasSuffix applies the HasSuffix predicate on the "referral_source" field.
func ReferralSourceHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldReferralSource, v))
}

// ReferralSourceIsNil applies the IsNil predicate on the "referral_source" field.
func ReferralSourceIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldReferralSource))
}

// ReferralSourceNotNil applies the NotNil predicate on the "referral_source" field.
func ReferralSourceNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldReferralSource))
}

// ReferralSourceEqualFold applies the EqualFold predicate on the "referral_source" field.
func ReferralSourceEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldReferralSource, v))
}

// ReferralSourceContainsFold applies the ContainsFold predicate on the "referral_source" field.
func ReferralSourceContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldReferralSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
