package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the clinic.
// Ownership checks (a patient only seeing their own records) are enforced
// in the services; these policies gate resource access per role.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	adminPolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, WildcardResource, WildcardAction, EffectAllow},
	}

	receptionistPolicies := []PermissionPolicy{
		// Front desk runs scheduling and billing end to end
		{RoleReceptionist, ResourcePatient, ActionManage, EffectAllow},
		{RoleReceptionist, ResourceAppointment, ActionManage, EffectAllow},
		{RoleReceptionist, ResourceInvoice, ActionManage, EffectAllow},
		{RoleReceptionist, ResourcePayment, ActionManage, EffectAllow},
		{RoleReceptionist, ResourceInventory, ActionManage, EffectAllow},
		{RoleReceptionist, ResourceService, ActionRead, EffectAllow},
		{RoleReceptionist, ResourceService, ActionList, EffectAllow},
		{RoleReceptionist, ResourceRoom, ActionRead, EffectAllow},
		{RoleReceptionist, ResourceRoom, ActionList, EffectAllow},
	}

	physioPolicies := []PermissionPolicy{
		// Therapists see their schedule and patient records, and close out visits
		{RolePhysio, ResourcePatient, ActionRead, EffectAllow},
		{RolePhysio, ResourcePatient, ActionList, EffectAllow},
		{RolePhysio, ResourceAppointment, ActionRead, EffectAllow},
		{RolePhysio, ResourceAppointment, ActionList, EffectAllow},
		{RolePhysio, ResourceAppointment, ActionUpdate, EffectAllow},
		{RolePhysio, ResourceService, ActionRead, EffectAllow},
		{RolePhysio, ResourceService, ActionList, EffectAllow},
		{RolePhysio, ResourceRoom, ActionRead, EffectAllow},
		{RolePhysio, ResourceRoom, ActionList, EffectAllow},
		{RolePhysio, ResourceAnalytics, ActionRead, EffectAllow},
	}

	patientPolicies := []PermissionPolicy{
		// Patients book and view their own appointments and bills
		{RolePatient, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, ResourceInvoice, ActionRead, EffectAllow},
		{RolePatient, ResourceInvoice, ActionList, EffectAllow},
		{RolePatient, ResourceService, ActionRead, EffectAllow},
		{RolePatient, ResourceService, ActionList, EffectAllow},
	}

	allPolicies := append(append(append(adminPolicies, receptionistPolicies...), physioPolicies...), patientPolicies...)

	count := 0
	for _, p := range allPolicies {
		for _, expanded := range expandManage(p) {
			added, err := auth.AddPermission(ctx, expanded.Subject, expanded.Object, expanded.Action, expanded.Effect)
			if err != nil {
				logger.Error("failed to add policy", "policy", expanded, "error", err)
				return err
			}
			if added {
				logger.Debug("added policy", "role", expanded.Subject, "resource", expanded.Object, "action", expanded.Action)
			}
			count++
		}
	}

	logger.Info("seeded default RBAC policies", "count", count)
	return nil
}

// expandManage turns an ActionManage policy into one policy per concrete
// CRUD action, so enforcement stays exact-match.
func expandManage(p PermissionPolicy) []PermissionPolicy {
	if p.Action != ActionManage {
		return []PermissionPolicy{p}
	}
	out := make([]PermissionPolicy, 0, len(ManageActions))
	for _, a := range ManageActions {
		out = append(out, PermissionPolicy{Subject: p.Subject, Object: p.Object, Action: a, Effect: p.Effect})
	}
	return out
}

// AssignUserRole maps a users.role value onto the matching Casbin role
// and assigns it. Call this when creating a user or changing their role.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), role)
	return err
}

// RemoveUserRole removes the Casbin role matching a users.role value.
func RemoveUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	role, ok := UserRoleToRBACRole[userRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUser(ctx, GroupSubject(userID), role)
	return err
}
