package user

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/physiofit/clinic_backend/internal/repo"
	"github.com/physiofit/clinic_backend/internal/repo/enttest"
	"github.com/physiofit/clinic_backend/pkg/authorize"
	"github.com/physiofit/clinic_backend/pkg/util/password"
)

const testModel = `[request_definition]
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

func newTestAuthorization(t *testing.T) authorize.IAuthorization {
	t.Helper()
	tmpDir := t.TempDir()

	modelPath := filepath.Join(tmpDir, "model.conf")
	if err := os.WriteFile(modelPath, []byte(testModel), 0644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	if err != nil {
		t.Fatalf("create enforcer: %v", err)
	}
	e.EnableAutoSave(false)
	auth, err := authorize.NewAuthorization(e, false)
	if err != nil {
		t.Fatalf("create authorization: %v", err)
	}
	return auth
}

func newTestService(t *testing.T) (Service, authorize.IAuthorization, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	auth := newTestAuthorization(t)
	return New(client, auth), auth, client
}

func baseCreateRequest() CreateRequest {
	return CreateRequest{
		FirstName: "Ines",
		LastName:  "Pereira",
		Email:     "ines@clinic.test",
		Password:  "a-strong-password",
		Role:      "receptionist",
	}
}

func TestCreateHashesPasswordAndAssignsRole(t *testing.T) {
	svc, auth, client := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, baseCreateRequest())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	row, err := client.User.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.PasswordHash == "a-strong-password" {
		t.Errorf("password stored in plaintext")
	}
	if err := password.Verify(row.PasswordHash, "a-strong-password"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	roles, err := auth.GetRolesForUser(ctx, authorize.GroupSubject(created.ID.String()))
	if err != nil {
		t.Fatalf("get roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != authorize.RoleReceptionist {
		t.Errorf("roles = %v, want [%s]", roles, authorize.RoleReceptionist)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, baseCreateRequest())
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		req := baseCreateRequest()
		req.Email = "other@clinic.test"
		req.Password = "short"
		if _, err := svc.Create(ctx, req); !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("err = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		req := baseCreateRequest()
		req.Email = "third@clinic.test"
		req.Role = "janitor"
		if _, err := svc.Create(ctx, req); !errors.Is(err, ErrUnknownRole) {
			t.Errorf("err = %v, want ErrUnknownRole", err)
		}
	})
}

func TestChangeRole(t *testing.T) {
	svc, auth, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, baseCreateRequest())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	updated, err := svc.ChangeRole(ctx, created.ID, "physio")
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if string(updated.Role) != "physio" {
		t.Errorf("role = %s, want physio", updated.Role)
	}

	roles, err := auth.GetRolesForUser(ctx, authorize.GroupSubject(created.ID.String()))
	if err != nil {
		t.Fatalf("get roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != authorize.RolePhysio {
		t.Errorf("roles = %v, want [%s]", roles, authorize.RolePhysio)
	}

	t.Run("unknown role rejected", func(t *testing.T) {
		if _, err := svc.ChangeRole(ctx, created.ID, "janitor"); !errors.Is(err, ErrUnknownRole) {
			t.Errorf("err = %v, want ErrUnknownRole", err)
		}
	})
}

func TestDelete(t *testing.T) {
	svc, auth, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, baseCreateRequest())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	actor := uuid.New()

	t.Run("self delete rejected", func(t *testing.T) {
		if err := svc.Delete(ctx, created.ID, created.ID); !errors.Is(err, ErrSelfDelete) {
			t.Errorf("err = %v, want ErrSelfDelete", err)
		}
	})

	if err := svc.Delete(ctx, actor, created.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("get after delete: err = %v, want ErrUserNotFound", err)
	}

	roles, err := auth.GetRolesForUser(ctx, authorize.GroupSubject(created.ID.String()))
	if err != nil {
		t.Fatalf("get roles: %v", err)
	}
	if len(roles) != 0 {
		t.Errorf("roles after delete = %v, want none", roles)
	}
}

func TestListFilters(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i, role := range []string{"physio", "physio", "receptionist"} {
		req := baseCreateRequest()
		req.Email = fmt.Sprintf("staff%d@clinic.test", i)
		req.Role = role
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	physio := "physio"
	result, err := svc.List(ctx, ListRequest{Role: &physio})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
}
