package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return New(client)
}

func TestServiceLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, CreateServiceRequest{
		Name:            "Manual therapy",
		UnitPrice:       4500,
		DurationMinutes: 45,
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	if created.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", created.DurationMinutes)
	}
	if !created.Active {
		t.Errorf("new service should be active")
	}

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.CreateService(ctx, CreateServiceRequest{Name: "Manual therapy", UnitPrice: 100})
		if !errors.Is(err, ErrNameTaken) {
			t.Errorf("err = %v, want ErrNameTaken", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.CreateService(ctx, CreateServiceRequest{Name: "Bad", UnitPrice: -1})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("err = %v, want ErrInvalidPrice", err)
		}
	})

	t.Run("deactivate hides from active list", func(t *testing.T) {
		inactive := false
		if _, err := svc.UpdateService(ctx, created.ID, UpdateServiceRequest{Active: &inactive}); err != nil {
			t.Fatalf("update service: %v", err)
		}
		active, err := svc.ListServices(ctx, true)
		if err != nil {
			t.Fatalf("list services: %v", err)
		}
		if len(active) != 0 {
			t.Errorf("active services = %d, want 0", len(active))
		}
		all, err := svc.ListServices(ctx, false)
		if err != nil {
			t.Fatalf("list services: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("all services = %d, want 1", len(all))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := svc.GetService(ctx, uuid.New()); !errors.Is(err, ErrServiceNotFound) {
			t.Errorf("err = %v, want ErrServiceNotFound", err)
		}
	})
}

func TestRoomLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRoom(ctx, CreateRoomRequest{Name: "Gym floor", Capacity: 6})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if created.Capacity != 6 {
		t.Errorf("capacity = %d, want 6", created.Capacity)
	}

	t.Run("default capacity", func(t *testing.T) {
		room, err := svc.CreateRoom(ctx, CreateRoomRequest{Name: "Treatment room 1"})
		if err != nil {
			t.Fatalf("create room: %v", err)
		}
		if room.Capacity != 1 {
			t.Errorf("capacity = %d, want 1", room.Capacity)
		}
	})

	t.Run("invalid capacity on update", func(t *testing.T) {
		zero := 0
		if _, err := svc.UpdateRoom(ctx, created.ID, UpdateRoomRequest{Capacity: &zero}); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("err = %v, want ErrInvalidCapacity", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := svc.GetRoom(ctx, uuid.New()); !errors.Is(err, ErrRoomNotFound) {
			t.Errorf("err = %v, want ErrRoomNotFound", err)
		}
	})
}
