package authorize

import (
	"context"
	"log/slog"
	"time"

	casbin "github.com/casbin/casbin/v2"
)

// AuditedAuthorization wraps an IAuthorization implementation with audit logging.
type AuditedAuthorization struct {
	inner  IAuthorization
	logger *slog.Logger
}

func NewAuditedAuthorization(inner IAuthorization, logger *slog.Logger) IAuthorization {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditedAuthorization{
		inner:  inner,
		logger: logger,
	}
}

func (a *AuditedAuthorization) Enforce(ctx context.Context, subject GroupSubject, object Resource, action Action) (bool, error) {
	start := time.Now()
	allowed, err := a.inner.Enforce(ctx, subject, object, action)
	duration := time.Since(start)

	attrs := []any{
		"subject", string(subject),
		"resource", string(object),
		"action", string(action),
		"allowed", allowed,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_decision", attrs...)
	} else if allowed {
		a.logger.Info("authz_decision", attrs...)
	} else {
		a.logger.Warn("authz_decision", attrs...)
	}

	return allowed, err
}

func (a *AuditedAuthorization) MustEnforce(ctx context.Context, subject GroupSubject, object Resource, action Action) error {
	ok, err := a.Enforce(ctx, subject, object, action)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (a *AuditedAuthorization) AddRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error) {
	added, err := a.inner.AddRoleForUser(ctx, subject, role)

	attrs := []any{
		"operation", "add_role",
		"subject", string(subject),
		"role", string(role),
		"added", added,
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_role_change", attrs...)
	} else {
		a.logger.Info("authz_role_change", attrs...)
	}

	return added, err
}

func (a *AuditedAuthorization) RemoveRoleForUser(ctx context.Context, subject GroupSubject, role Role) (bool, error) {
	removed, err := a.inner.RemoveRoleForUser(ctx, subject, role)

	attrs := []any{
		"operation", "remove_role",
		"subject", string(subject),
		"role", string(role),
		"removed", removed,
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_role_change", attrs...)
	} else {
		a.logger.Info("authz_role_change", attrs...)
	}

	return removed, err
}

func (a *AuditedAuthorization) GetRolesForUser(ctx context.Context, subject GroupSubject) ([]Role, error) {
	return a.inner.GetRolesForUser(ctx, subject)
}

func (a *AuditedAuthorization) AddPermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error) {
	added, err := a.inner.AddPermission(ctx, role, object, action, effect)

	attrs := []any{
		"operation", "add_permission",
		"role", string(role),
		"resource", string(object),
		"action", string(action),
		"effect", string(effect),
		"added", added,
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_permission_change", attrs...)
	} else {
		a.logger.Info("authz_permission_change", attrs...)
	}

	return added, err
}

func (a *AuditedAuthorization) RemovePermission(ctx context.Context, role Role, object Resource, action Action, effect PolicyEffect) (bool, error) {
	removed, err := a.inner.RemovePermission(ctx, role, object, action, effect)

	attrs := []any{
		"operation", "remove_permission",
		"role", string(role),
		"resource", string(object),
		"action", string(action),
		"effect", string(effect),
		"removed", removed,
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_permission_change", attrs...)
	} else {
		a.logger.Info("authz_permission_change", attrs...)
	}

	return removed, err
}

func (a *AuditedAuthorization) Raw() *casbin.DistributedEnforcer {
	return a.inner.Raw()
}
