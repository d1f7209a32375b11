package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Invoice is the billing ledger head for a patient.
// total_amount and amount_paid are derived from items and payments and
// re-computed inside the same transaction as every mutation.
type Invoice struct {
	ent.Schema
}

func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → appointments.id when generated from a visit"),

		field.String("number").
			Unique().
			MaxLen(50).
			Comment("Human-readable invoice number, e.g. INV-2026-000123"),

		field.Enum("status").
			Values("draft", "issued", "paid", "partial", "cancelled").
			Default("draft"),

		field.Int64("total_amount").
			Default(0).
			NonNegative().
			Comment("Sum of item line totals in euro cents"),

		field.Int64("amount_paid").
			Default(0).
			NonNegative().
			Comment("Sum of recorded payments in euro cents"),

		field.Time("issued_at").
			Optional().
			Nillable(),

		field.Time("due_date").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		// One invoice per visit. NULL rows (standalone invoices) stay free.
		index.Fields("appointment_id").Unique(),
		index.Fields("status"),
	}
}
