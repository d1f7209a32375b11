// Package user manages staff and patient portal accounts. Role changes go
// through casbin so the RBAC grouping policy always mirrors the user row.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entuser "github.com/physiofit/clinic_backend/internal/repo/user"
	"github.com/physiofit/clinic_backend/pkg/authorize"
	"github.com/physiofit/clinic_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Password  string
	Role      string // admin | physio | receptionist | patient
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Status    *string // active | suspended
}

type ListRequest struct {
	Page    int
	PerPage int
	Role    *string
	Status  *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, newRole string) (*repo.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	Delete(ctx context.Context, actorID, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &userService{db: db, auth: auth}
}

func (s *userService) Create(ctx context.Context, req CreateRequest) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if _, ok := authorize.UserRoleToRBACRole[req.Role]; !ok {
		return nil, ErrUnknownRole
	}

	exists, err := s.db.User.Query().
		Where(entuser.EmailEQ(email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(email).
		SetPasswordHash(passHash).
		SetRole(entuser.Role(req.Role))

	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserRole(ctx, s.auth, u.ID.String(), req.Role); err != nil {
		// Roll the row back so a user never exists without a grouping policy.
		_ = s.db.User.DeleteOne(u).Exec(ctx)
		return nil, fmt.Errorf("assign role: %w", err)
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.DeletedAtIsNil())

	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.Status != nil {
		q = q.Where(entuser.StatusEQ(entuser.Status(*req.Status)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.User]{
		Data:       users,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entuser.Status(*req.Status))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) ChangeRole(ctx context.Context, userID uuid.UUID, newRole string) (*repo.User, error) {
	if _, ok := authorize.UserRoleToRBACRole[newRole]; !ok {
		return nil, ErrUnknownRole
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if string(u.Role) == newRole {
		return u, nil
	}

	if err := authorize.RemoveUserRole(ctx, s.auth, u.ID.String(), string(u.Role)); err != nil {
		return nil, fmt.Errorf("remove old role: %w", err)
	}
	if err := authorize.AssignUserRole(ctx, s.auth, u.ID.String(), newRole); err != nil {
		return nil, fmt.Errorf("assign new role: %w", err)
	}

	updated, err := s.db.User.UpdateOne(u).
		SetRole(entuser.Role(newRole)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return updated, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	passHash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	n, err := s.db.User.Update().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		SetPasswordHash(passHash).
		SetMustChangePassword(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return ErrSelfDelete
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.db.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	// Drop the grouping policy so the token's role no longer resolves.
	if err := authorize.RemoveUserRole(ctx, s.auth, u.ID.String(), string(u.Role)); err != nil {
		return fmt.Errorf("remove role: %w", err)
	}
	return nil
}
