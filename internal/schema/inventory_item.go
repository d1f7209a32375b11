package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InventoryItem tracks clinic supplies (tape, electrodes, towels, ...).
type InventoryItem struct {
	ent.Schema
}

func (InventoryItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(255),

		field.String("category").
			Optional().
			Nillable().
			MaxLen(100),

		field.Int("quantity").
			Default(0).
			NonNegative(),

		field.Int("reorder_level").
			Default(0).
			NonNegative().
			Comment("Restock when quantity drops to or below this"),

		field.Int64("unit_cost").
			Default(0).
			NonNegative().
			Comment("Purchase cost per unit in euro cents"),

		field.String("supplier").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
