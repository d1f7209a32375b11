// Package catalog manages the bookable offering: treatment services with
// prices and durations, and the physical rooms appointments are held in.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entroom "github.com/physiofit/clinic_backend/internal/repo/room"
	entsvc "github.com/physiofit/clinic_backend/internal/repo/service"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateServiceRequest struct {
	Name            string
	Description     *string
	UnitPrice       int64 // euro cents
	DurationMinutes int
}

type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	UnitPrice       *int64
	DurationMinutes *int
	Active          *bool
}

type CreateRoomRequest struct {
	Name     string
	Capacity int
	Notes    *string
}

type UpdateRoomRequest struct {
	Name     *string
	Capacity *int
	Active   *bool
	Notes    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*repo.Service, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]*repo.Service, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req UpdateServiceRequest) (*repo.Service, error)

	CreateRoom(ctx context.Context, req CreateRoomRequest) (*repo.Room, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*repo.Room, error)
	ListRooms(ctx context.Context, activeOnly bool) ([]*repo.Room, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest) (*repo.Room, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &catalogService{db: db}
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

func (s *catalogService) CreateService(ctx context.Context, req CreateServiceRequest) (*repo.Service, error) {
	if req.UnitPrice < 0 {
		return nil, ErrInvalidPrice
	}

	c := s.db.Service.Create().
		SetName(req.Name).
		SetUnitPrice(req.UnitPrice)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.DurationMinutes > 0 {
		c = c.SetDurationMinutes(req.DurationMinutes)
	}

	svc, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error) {
	svc, err := s.db.Service.Get(ctx, serviceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) ListServices(ctx context.Context, activeOnly bool) ([]*repo.Service, error) {
	q := s.db.Service.Query()
	if activeOnly {
		q = q.Where(entsvc.Active(true))
	}
	services, err := q.Order(entsvc.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID uuid.UUID, req UpdateServiceRequest) (*repo.Service, error) {
	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		return nil, ErrInvalidPrice
	}

	u := s.db.Service.UpdateOneID(serviceID)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.UnitPrice != nil {
		u = u.SetUnitPrice(*req.UnitPrice)
	}
	if req.DurationMinutes != nil {
		u = u.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Active != nil {
		u = u.SetActive(*req.Active)
	}

	svc, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

func (s *catalogService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*repo.Room, error) {
	if req.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	c := s.db.Room.Create().
		SetName(req.Name)

	if req.Capacity > 0 {
		c = c.SetCapacity(req.Capacity)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	room, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (s *catalogService) GetRoom(ctx context.Context, roomID uuid.UUID) (*repo.Room, error) {
	room, err := s.db.Room.Get(ctx, roomID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *catalogService) ListRooms(ctx context.Context, activeOnly bool) ([]*repo.Room, error) {
	q := s.db.Room.Query()
	if activeOnly {
		q = q.Where(entroom.Active(true))
	}
	rooms, err := q.Order(entroom.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *catalogService) UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest) (*repo.Room, error) {
	if req.Capacity != nil && *req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	u := s.db.Room.UpdateOneID(roomID)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Capacity != nil {
		u = u.SetCapacity(*req.Capacity)
	}
	if req.Active != nil {
		u = u.SetActive(*req.Active)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	room, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}
