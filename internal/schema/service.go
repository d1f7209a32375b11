package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Service is a billable catalog entry (physiotherapy session, massage, ...).
type Service struct {
	ent.Schema
}

func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int64("unit_price").
			NonNegative().
			Comment("Default price per unit in euro cents"),

		field.Int("duration_minutes").
			Default(60).
			Positive(),

		field.Bool("active").
			Default(true),
	}
}

func (Service) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
