package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil, true)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e, true)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)
	ctx := context.Background()

	userID := "user-123"

	// Add role to user
	_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), RoleReceptionist)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	// Add permission to role
	_, err = auth.AddPermission(ctx, RoleReceptionist, ResourceAppointment, ActionCreate, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			subject:  GroupSubject(userID),
			resource: ResourceAppointment,
			action:   ActionCreate,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "denied when no permission",
			subject:  GroupSubject(userID),
			resource: ResourceUser,
			action:   ActionRead,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			resource: ResourceAppointment,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			resource: ResourceAppointment,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)
	ctx := context.Background()

	userID := "user-456"

	// Add role and permission
	auth.AddRoleForUser(ctx, GroupSubject(userID), RolePhysio)
	auth.AddPermission(ctx, RolePhysio, ResourcePatient, ActionRead, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), ResourcePatient, ActionRead)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), ResourceAudit, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestAdminBypass(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, true)
	ctx := context.Background()

	adminID := "admin-id"

	// Add admin role, no explicit permissions
	_, err := auth.AddRoleForUser(ctx, GroupSubject(adminID), RoleAdmin)
	if err != nil {
		t.Fatalf("Failed to add admin role: %v", err)
	}

	// Admin should be allowed to do anything (bypass check)
	allowed, err := auth.Enforce(ctx, GroupSubject(adminID), ResourceUser, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected admin to be allowed")
	}
}

func TestAdminBypassDisabled(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)
	ctx := context.Background()

	adminID := "admin-id"
	auth.AddRoleForUser(ctx, GroupSubject(adminID), RoleAdmin)

	// Without bypass, an admin with no policies gets denied
	allowed, err := auth.Enforce(ctx, GroupSubject(adminID), ResourceUser, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if allowed {
		t.Error("Expected deny when bypass is disabled and no policy exists")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)
	ctx := context.Background()

	userID := "user-789"

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUser(ctx, GroupSubject(userID), RolePatient)
		if err != nil {
			t.Fatalf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		roles, err := auth.GetRolesForUser(ctx, GroupSubject(userID))
		if err != nil {
			t.Fatalf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 || roles[0] != RolePatient {
			t.Errorf("Expected [RolePatient], got %v", roles)
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUser(ctx, GroupSubject(userID), RolePatient)
		if err != nil {
			t.Fatalf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		roles, err := auth.GetRolesForUser(ctx, GroupSubject(userID))
		if err != nil {
			t.Fatalf("Failed to get roles: %v", err)
		}
		if len(roles) != 0 {
			t.Errorf("Expected no roles, got %v", roles)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := auth.AddRoleForUser(ctx, GroupSubject(userID), Role("role:unknown"))
		if err == nil {
			t.Error("Expected error for unknown role")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}

	receptionist := "recep-1"
	if err := AssignUserRole(ctx, auth, receptionist, UserRoleReceptionist); err != nil {
		t.Fatalf("AssignUserRole: %v", err)
	}

	// Receptionists run billing
	if err := auth.MustEnforce(ctx, GroupSubject(receptionist), ResourceInvoice, ActionCreate); err != nil {
		t.Errorf("expected receptionist to create invoices: %v", err)
	}

	// But do not manage users
	if err := auth.MustEnforce(ctx, GroupSubject(receptionist), ResourceUser, ActionDelete); err != ErrForbidden {
		t.Errorf("expected ErrForbidden for receptionist deleting users, got %v", err)
	}

	patient := "patient-1"
	if err := AssignUserRole(ctx, auth, patient, UserRolePatient); err != nil {
		t.Fatalf("AssignUserRole: %v", err)
	}

	// Patients can book appointments but not record payments
	if err := auth.MustEnforce(ctx, GroupSubject(patient), ResourceAppointment, ActionCreate); err != nil {
		t.Errorf("expected patient to book appointments: %v", err)
	}
	if err := auth.MustEnforce(ctx, GroupSubject(patient), ResourcePayment, ActionCreate); err != ErrForbidden {
		t.Errorf("expected ErrForbidden for patient recording payments, got %v", err)
	}
}

func TestAssignUserRoleRejectsUnknown(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e, false)

	err := AssignUserRole(context.Background(), auth, "user-1", "janitor")
	if err != ErrInvalidArgs {
		t.Errorf("Expected ErrInvalidArgs, got %v", err)
	}
}
