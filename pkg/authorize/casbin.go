// pkg/authorize/casbin.go
package authorize

import (
	"context"
	"errors"
	"fmt"

	casbin "github.com/casbin/casbin/v2"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidArgs = errors.New("invalid authorization arguments")
)

// IAuthorization is the only thing services/middleware should depend on.
type IAuthorization interface {
	// Enforce answers: "Is subject allowed to act on object?"
	Enforce(ctx context.Context, subject GroupSubject, object Resource, action Action) (bool, error)

	// MustEnforce is convenience for services: return ErrForbidden if not allowed.
	MustEnforce(ctx context.Context, subject GroupSubject, object Resource, action Action) error

	// Role management (grouping policies): g, user_id, role
	AddRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error)
	RemoveRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error)
	GetRolesForUser(ctx context.Context, subject GroupSubject) ([]Role, error)

	// Permission management (policies): p, role, object, action, eft
	AddPermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error)
	RemovePermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error)

	Raw() *casbin.DistributedEnforcer
}

// Authorization is a thin typed wrapper around casbin.Enforcer.
type Authorization struct {
	enforcer  *casbin.DistributedEnforcer
	adminRole Role
}

// NewAuthorization wraps an already-configured Enforcer.
// When adminBypass is true, users holding the admin role skip policy lookups.
func NewAuthorization(e *casbin.DistributedEnforcer, adminBypass bool) (IAuthorization, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: enforcer is nil", ErrInvalidArgs)
	}

	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}

	a := &Authorization{enforcer: e}
	if adminBypass {
		a.adminRole = RoleAdmin
	}
	return a, nil
}

func (a *Authorization) Raw() *casbin.DistributedEnforcer { return a.enforcer }

func (a *Authorization) Enforce(ctx context.Context, subject GroupSubject, object Resource, action Action) (bool, error) {
	_ = ctx // reserved for tracing/logging later

	if subject == "" {
		return false, fmt.Errorf("%w: subject is empty", ErrInvalidArgs)
	}
	if object == "" {
		return false, fmt.Errorf("%w: object is empty", ErrInvalidArgs)
	}
	if action == "" {
		return false, fmt.Errorf("%w: action is empty", ErrInvalidArgs)
	}

	// Guardrails: ensure you're only using known constants
	if _, ok := KnownResources[object]; !ok && object != WildcardResource {
		return false, fmt.Errorf("%w: unknown resource: %q", ErrInvalidArgs, object)
	}
	if _, ok := KnownActions[action]; !ok && action != WildcardAction {
		return false, fmt.Errorf("%w: unknown action: %q", ErrInvalidArgs, action)
	}

	// Optional bypass: users holding the admin role are allowed everything.
	if a.adminRole != "" {
		ok, err := a.enforcer.HasGroupingPolicy(string(subject), string(a.adminRole))
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	allowed, err := a.enforcer.Enforce(string(subject), string(object), string(action))
	if err != nil {
		return false, err
	}
	return allowed, nil
}

func (a *Authorization) MustEnforce(ctx context.Context, subject GroupSubject, object Resource, action Action) error {
	ok, err := a.Enforce(ctx, subject, object, action)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// ---- Grouping (roles) ----

func (a *Authorization) AddRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error) {
	_ = ctx
	if subject == "" || role == "" {
		return false, fmt.Errorf("%w: empty subject/role", ErrInvalidArgs)
	}
	if _, ok := KnownRoles[role]; !ok && role != WildcardRole {
		return false, fmt.Errorf("%w: unknown role: %q", ErrInvalidArgs, role)
	}
	return a.enforcer.AddGroupingPolicy(string(subject), string(role))
}

func (a *Authorization) RemoveRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error) {
	_ = ctx
	if subject == "" || role == "" {
		return false, fmt.Errorf("%w: empty subject/role", ErrInvalidArgs)
	}
	return a.enforcer.RemoveGroupingPolicy(string(subject), string(role))
}

func (a *Authorization) GetRolesForUser(ctx context.Context, subject GroupSubject) ([]Role, error) {
	_ = ctx
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidArgs)
	}
	roles, err := a.enforcer.GetRolesForUser(string(subject))
	if err != nil {
		return nil, err
	}
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, Role(r))
	}
	return out, nil
}

// ---- Permissions (p rules) ----

func (a *Authorization) AddPermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if role == "" || object == "" || action == "" || effect == "" {
		return false, fmt.Errorf("%w: empty permission fields", ErrInvalidArgs)
	}
	if _, ok := KnownRoles[role]; !ok && role != WildcardRole {
		return false, fmt.Errorf("%w: unknown role: %q", ErrInvalidArgs, role)
	}
	if _, ok := KnownResources[object]; !ok && object != WildcardResource {
		return false, fmt.Errorf("%w: unknown resource: %q", ErrInvalidArgs, object)
	}
	if _, ok := KnownActions[action]; !ok && action != WildcardAction {
		return false, fmt.Errorf("%w: unknown action: %q", ErrInvalidArgs, action)
	}
	if effect != EffectAllow && effect != EffectDeny {
		return false, fmt.Errorf("%w: invalid effect: %q", ErrInvalidArgs, effect)
	}

	// p, sub(role), obj, act, eft
	return a.enforcer.AddPolicy(string(role), string(object), string(action), string(effect))
}

func (a *Authorization) RemovePermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if role == "" || object == "" || action == "" || effect == "" {
		return false, fmt.Errorf("%w: empty permission fields", ErrInvalidArgs)
	}
	return a.enforcer.RemovePolicy(string(role), string(object), string(action), string(effect))
}
