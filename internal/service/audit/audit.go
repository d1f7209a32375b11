// Package audit records who changed what. Services call Record explicitly
// after their own mutation succeeds; a lost audit row never fails the
// business operation.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entaudit "github.com/physiofit/clinic_backend/internal/repo/auditlog"
	"github.com/physiofit/clinic_backend/pkg/reqctx"
)

var ErrNotFound = errors.New("audit entry not found")

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Page       int
	PerPage    int
	ActorID    *uuid.UUID
	EntityType *string
	EntityID   *uuid.UUID
	Since      *time.Time
}

type PaginatedResult struct {
	Data       []*repo.AuditLog
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Record writes one audit entry. actorID may be nil for system
	// actions (workers, seeding). changes carries a flat field → value
	// summary of what was mutated.
	Record(ctx context.Context, actorID *uuid.UUID, action, entityType string, entityID uuid.UUID, changes map[string]any)

	List(ctx context.Context, req ListRequest) (*PaginatedResult, error)
	GetByID(ctx context.Context, entryID uuid.UUID) (*repo.AuditLog, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type auditService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &auditService{db: db}
}

func (s *auditService) Record(ctx context.Context, actorID *uuid.UUID, action, entityType string, entityID uuid.UUID, changes map[string]any) {
	c := s.db.AuditLog.Create().
		SetAction(action).
		SetEntityType(entityType).
		SetEntityID(entityID)

	if actorID != nil {
		c = c.SetActorID(*actorID)
	}
	if changes != nil {
		c = c.SetChanges(changes)
	}
	if meta, ok := reqctx.RequestMetaFromContext(ctx); ok && meta.RequestID != "" {
		c = c.SetRequestID(meta.RequestID)
	}

	if _, err := c.Save(ctx); err != nil {
		slog.Warn("audit record failed",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}
}

func (s *auditService) List(ctx context.Context, req ListRequest) (*PaginatedResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.AuditLog.Query()

	if req.ActorID != nil {
		q = q.Where(entaudit.ActorID(*req.ActorID))
	}
	if req.EntityType != nil {
		q = q.Where(entaudit.EntityTypeEQ(*req.EntityType))
	}
	if req.EntityID != nil {
		q = q.Where(entaudit.EntityID(*req.EntityID))
	}
	if req.Since != nil {
		q = q.Where(entaudit.CreatedAtGTE(*req.Since))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}

	entries, err := q.
		Order(entaudit.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult{
		Data:       entries,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *auditService) GetByID(ctx context.Context, entryID uuid.UUID) (*repo.AuditLog, error) {
	entry, err := s.db.AuditLog.Get(ctx, entryID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get audit entry: %w", err)
	}
	return entry, nil
}
