package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of who changed what.
// Services record entries explicitly; there is no implicit capture.
type AuditLog struct {
	ent.Schema
}

func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id, nil for system actions"),

		field.String("action").
			MaxLen(50).
			Comment("create, update, delete, status_change, ..."),

		field.String("entity_type").
			MaxLen(100),

		field.UUID("entity_id", uuid.UUID{}),

		field.JSON("changes", map[string]any{}).
			Optional().
			Comment("Field-level before/after values"),

		field.String("request_id").
			Optional().
			Nillable().
			MaxLen(64),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("actor_id"),
		index.Fields("created_at"),
	}
}
