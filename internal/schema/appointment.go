package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a physiotherapist and a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("physio_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (nullable until a physiotherapist is assigned)"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → services.id"),

		field.UUID("room_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → rooms.id (nullable until a room is assigned)"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("scheduled", "confirmed", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Bool("reminder_sent").
			Default(false),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("physio_id", "start_time"),
		index.Fields("room_id", "start_time"),
		index.Fields("patient_id", "status"),
		index.Fields("status", "start_time"),
	}
}
