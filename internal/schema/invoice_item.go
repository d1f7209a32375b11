package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InvoiceItem is a single line on an invoice.
// line_total is always quantity * unit_price, snapshotted at insert time.
type InvoiceItem struct {
	ent.Schema
}

func (InvoiceItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}).
			Comment("FK → invoices.id"),

		field.UUID("service_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → services.id (nullable for free-form lines)"),

		field.String("description").
			MaxLen(500),

		field.Int("quantity").
			Positive(),

		field.Int64("unit_price").
			NonNegative().
			Comment("Price per unit in euro cents, snapshotted from the service"),

		field.Int64("line_total").
			NonNegative().
			Comment("quantity * unit_price in euro cents"),
	}
}

func (InvoiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
