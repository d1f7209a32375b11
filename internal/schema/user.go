package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a staff member or patient portal account.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("admin", "physio", "receptionist", "patient"),

		field.Enum("status").
			Values("active", "suspended").
			Default("active"),

		field.Bool("must_change_password").
			Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("status"),
	}
}
