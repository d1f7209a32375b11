package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a clinic patient record.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id when the patient has a portal account"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("tax_id_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM ciphertext, base64-encoded"),

		field.Enum("status").
			Values("active", "inactive", "discharged").
			Default("active"),

		field.Text("medical_notes").
			Optional().
			Nillable(),

		field.String("referral_source").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_name", "first_name"),
		index.Fields("status"),
		index.Fields("user_id"),
	}
}
