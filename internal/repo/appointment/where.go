// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PhysioID applies equality check predicate on the "physio_id" field. It's identical to PhysioIDEQ.
func PhysioID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPhysioID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRoomID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// ReminderSent applies equality check predicate on the "reminder_sent" field. It's identical to ReminderSentEQ.
func ReminderSent(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSent, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientID, v))
}

// PhysioIDEQ applies the EQ predicate on the "physio_id" field.
func PhysioIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPhysioID, v))
}

// PhysioIDNEQ applies the NEQ predicate on the "physio_id" field.
func PhysioIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPhysioID, v))
}

// PhysioIDIn applies the In predicate on the "physio_id" field.
func PhysioIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPhysioID, vs...))
}

// PhysioIDNotIn applies the NotIn predicate on the "physio_id" field.
func PhysioIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPhysioID, vs...))
}

// PhysioIDGT applies the GT predicate on the "physio_id" field.
func PhysioIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPhysioID, v))
}

// PhysioIDGTE applies the GTE predicate on the "physio_id" field.
func PhysioIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPhysioID, v))
}

// PhysioIDLT applies the LT predicate on the "physio_id" field.
func PhysioIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPhysioID, v))
}

// PhysioIDLTE applies the LTE predicate on the "physio_id" field.
func PhysioIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPhysioID, v))
}

// PhysioIDIsNil applies the IsNil predicate on the "physio_id" field.
func PhysioIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPhysioID))
}

// PhysioIDNotNil applies the NotNil predicate on the "physio_id" field.
func PhysioIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPhysioID))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldServiceID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldRoomID))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEndTime, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// ReminderSentEQ applies the EQ predicate on the "reminder_sent" field.
func ReminderSentEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentNEQ applies the NEQ predicate on the "reminder_sent" field.
func ReminderSentNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldReminderSent, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldNotes, v))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
