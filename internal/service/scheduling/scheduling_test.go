package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/physiofit/clinic_backend/internal/repo"
	entappt "github.com/physiofit/clinic_backend/internal/repo/appointment"
	"github.com/physiofit/clinic_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	return client, New(client, nil, dialect.SQLite)
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func baseCreateRequest(start time.Time) CreateRequest {
	return CreateRequest{
		PatientID: uuid.New(),
		PhysioID:  uuidPtr(uuid.New()),
		ServiceID: uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestCreateValidatesTimeRange(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)

	req := baseCreateRequest(start)
	req.EndTime = start.Add(-time.Hour)

	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}

	req.EndTime = start
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange for zero-length slot, got %v", err)
	}
}

func TestCreateDoubleBooking(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	req := baseCreateRequest(start)

	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	t.Run("same physio overlapping slot is rejected", func(t *testing.T) {
		second := req
		second.PatientID = uuid.New()
		second.StartTime = start.Add(30 * time.Minute)
		second.EndTime = start.Add(90 * time.Minute)

		if _, err := svc.Create(ctx, second); !errors.Is(err, ErrDoubleBooking) {
			t.Fatalf("expected ErrDoubleBooking, got %v", err)
		}
	})

	t.Run("adjacent slot is allowed", func(t *testing.T) {
		second := req
		second.PatientID = uuid.New()
		second.StartTime = start.Add(time.Hour)
		second.EndTime = start.Add(2 * time.Hour)

		if _, err := svc.Create(ctx, second); err != nil {
			t.Fatalf("adjacent booking failed: %v", err)
		}
	})

	t.Run("different physio same slot is allowed", func(t *testing.T) {
		second := baseCreateRequest(start)
		if _, err := svc.Create(ctx, second); err != nil {
			t.Fatalf("booking with another physio failed: %v", err)
		}
	})

	t.Run("same room same slot is rejected", func(t *testing.T) {
		roomID := uuid.New()

		first := baseCreateRequest(start.Add(48 * time.Hour))
		first.RoomID = &roomID
		if _, err := svc.Create(ctx, first); err != nil {
			t.Fatalf("room booking failed: %v", err)
		}

		second := baseCreateRequest(start.Add(48 * time.Hour))
		second.RoomID = &roomID
		if _, err := svc.Create(ctx, second); !errors.Is(err, ErrDoubleBooking) {
			t.Fatalf("expected ErrDoubleBooking for room conflict, got %v", err)
		}
	})
}

func TestUnassignedAppointments(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	req := baseCreateRequest(start)
	req.PhysioID = nil
	first, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create without physio: %v", err)
	}
	if first.PhysioID != nil {
		t.Fatalf("expected no physio, got %v", first.PhysioID)
	}

	t.Run("unassigned slots do not block each other", func(t *testing.T) {
		second := baseCreateRequest(start)
		second.PhysioID = nil
		if _, err := svc.Create(ctx, second); err != nil {
			t.Fatalf("second unassigned booking failed: %v", err)
		}
	})

	t.Run("assigning a busy physio is rejected", func(t *testing.T) {
		busy := baseCreateRequest(start)
		if _, err := svc.Create(ctx, busy); err != nil {
			t.Fatalf("create busy physio booking: %v", err)
		}
		if _, err := svc.Update(ctx, first.ID, UpdateRequest{PhysioID: busy.PhysioID}); !errors.Is(err, ErrDoubleBooking) {
			t.Fatalf("expected ErrDoubleBooking, got %v", err)
		}
	})

	t.Run("assigning a free physio works", func(t *testing.T) {
		free := uuid.New()
		updated, err := svc.Update(ctx, first.ID, UpdateRequest{PhysioID: &free})
		if err != nil {
			t.Fatalf("assign physio: %v", err)
		}
		if updated.PhysioID == nil || *updated.PhysioID != free {
			t.Errorf("expected physio %s, got %v", free, updated.PhysioID)
		}
	})
}

func TestCancelledSlotDoesNotBlock(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)
	req := baseCreateRequest(start)

	appt, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Cancel(ctx, appt.ID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	second := req
	second.PatientID = uuid.New()
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("expected cancelled slot to be free, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)

	t.Run("scheduled to confirmed to completed", func(t *testing.T) {
		appt, err := svc.Create(ctx, baseCreateRequest(start))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := svc.Confirm(ctx, appt.ID); err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if err := svc.Complete(ctx, appt.ID); err != nil {
			t.Fatalf("complete: %v", err)
		}

		got, err := svc.GetByID(ctx, appt.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != entappt.StatusCompleted {
			t.Errorf("expected completed, got %s", got.Status)
		}
		if got.CompletedAt == nil {
			t.Error("expected completed_at to be set")
		}
	})

	t.Run("terminal states are locked", func(t *testing.T) {
		appt, err := svc.Create(ctx, baseCreateRequest(start.Add(3 * time.Hour)))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := svc.Cancel(ctx, appt.ID, nil); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		if err := svc.Complete(ctx, appt.ID); !errors.Is(err, ErrTerminalStatus) {
			t.Errorf("expected ErrTerminalStatus for complete after cancel, got %v", err)
		}
		if err := svc.Cancel(ctx, appt.ID, nil); !errors.Is(err, ErrTerminalStatus) {
			t.Errorf("expected ErrTerminalStatus for double cancel, got %v", err)
		}

		newStart := start.Add(6 * time.Hour)
		if _, err := svc.Update(ctx, appt.ID, UpdateRequest{StartTime: &newStart}); !errors.Is(err, ErrTerminalStatus) {
			t.Errorf("expected ErrTerminalStatus for update after cancel, got %v", err)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		if err := svc.Confirm(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateRevalidatesOverlap(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	first, err := svc.Create(ctx, baseCreateRequest(start))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := baseCreateRequest(start.Add(2 * time.Hour))
	second.PhysioID = first.PhysioID
	moved, err := svc.Create(ctx, second)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Moving the second on top of the first must fail.
	newStart := start.Add(30 * time.Minute)
	newEnd := newStart.Add(time.Hour)
	if _, err := svc.Update(ctx, moved.ID, UpdateRequest{StartTime: &newStart, EndTime: &newEnd}); !errors.Is(err, ErrDoubleBooking) {
		t.Fatalf("expected ErrDoubleBooking, got %v", err)
	}

	// Moving it elsewhere works, and the appointment keeps its own slot
	// out of the overlap check.
	laterStart := start.Add(4 * time.Hour)
	laterEnd := laterStart.Add(time.Hour)
	updated, err := svc.Update(ctx, moved.ID, UpdateRequest{StartTime: &laterStart, EndTime: &laterEnd})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if !updated.StartTime.Equal(laterStart) {
		t.Errorf("expected start %v, got %v", laterStart, updated.StartTime)
	}
}

func TestReminders(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	now := time.Now()

	inWindow, err := svc.Create(ctx, baseCreateRequest(now.Add(2*time.Hour)))
	if err != nil {
		t.Fatalf("create in-window: %v", err)
	}
	if _, err := svc.Create(ctx, baseCreateRequest(now.Add(48*time.Hour))); err != nil {
		t.Fatalf("create out-of-window: %v", err)
	}
	cancelled, err := svc.Create(ctx, baseCreateRequest(now.Add(3*time.Hour)))
	if err != nil {
		t.Fatalf("create cancelled: %v", err)
	}
	if err := svc.Cancel(ctx, cancelled.ID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	due, err := svc.FindDueReminders(ctx, now, 24*time.Hour)
	if err != nil {
		t.Fatalf("find due reminders: %v", err)
	}
	if len(due) != 1 || due[0].ID != inWindow.ID {
		t.Fatalf("expected exactly the in-window appointment, got %d results", len(due))
	}

	// Idempotent marking
	if err := svc.MarkReminderSent(ctx, inWindow.ID); err != nil {
		t.Fatalf("mark reminder: %v", err)
	}
	if err := svc.MarkReminderSent(ctx, inWindow.ID); err != nil {
		t.Fatalf("second mark reminder should be a no-op: %v", err)
	}

	due, err = svc.FindDueReminders(ctx, now, 24*time.Hour)
	if err != nil {
		t.Fatalf("find due reminders: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected no due reminders after marking, got %d", len(due))
	}

	if err := svc.MarkReminderSent(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
