package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Room is a bookable treatment room.
type Room struct {
	ent.Schema
}

func (Room) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(100),

		field.Int("capacity").
			Default(1).
			Positive(),

		field.Bool("active").
			Default(true),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}
