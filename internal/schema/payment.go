package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Payment is an append-only record of money received against an invoice.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}).
			Comment("FK → invoices.id"),

		field.Int64("amount").
			Positive().
			Comment("Amount received in euro cents"),

		field.Enum("method").
			Values("cash", "card", "transfer", "insurance"),

		field.Time("received_at"),

		field.String("reference").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("External reference: terminal receipt, transfer id, claim number"),

		field.UUID("recorded_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id of the staff member who recorded it"),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
		index.Fields("received_at"),
	}
}
