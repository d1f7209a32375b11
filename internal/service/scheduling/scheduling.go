package scheduling

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/physiofit/clinic_backend/internal/repo"
	entappt "github.com/physiofit/clinic_backend/internal/repo/appointment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	PhysioID  *uuid.UUID
	PatientID *uuid.UUID
	RoomID    *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type CreateRequest struct {
	PatientID uuid.UUID
	PhysioID  *uuid.UUID // nil books an unassigned slot
	ServiceID uuid.UUID
	RoomID    *uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
}

type UpdateRequest struct {
	PhysioID  *uuid.UUID
	RoomID    *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error)
	Update(ctx context.Context, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)

	// Status transitions. The machine is forward-only: completed, cancelled
	// and no_show are terminal.
	Confirm(ctx context.Context, apptID uuid.UUID) error
	Complete(ctx context.Context, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, apptID uuid.UUID) error
	Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error

	// Reminder sweep support.
	MarkReminderSent(ctx context.Context, apptID uuid.UUID) error
	FindDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db      *repo.Client
	nc      *nats.Conn
	dialect string
}

func New(db *repo.Client, nc *nats.Conn, dialect string) Service {
	return &schedulingService{db: db, nc: nc, dialect: dialect}
}

func (s *schedulingService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.PhysioID != nil {
		q = q.Where(entappt.PhysioID(*req.PhysioID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.RoomID != nil {
		q = q.Where(entappt.RoomID(*req.RoomID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	q = q.Order(entappt.ByStartTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *schedulingService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *schedulingService) Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	appt, err := s.createInTx(ctx, tx, req)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.publish("clinic.appointment.created", appt.ID)

	return appt, nil
}

func (s *schedulingService) createInTx(ctx context.Context, tx *repo.Tx, req CreateRequest) (*repo.Appointment, error) {
	// Lock the physio and room, then check overlap, all inside the same
	// transaction as the insert.
	if err := s.lockSlots(ctx, tx, req.PhysioID, req.RoomID); err != nil {
		return nil, err
	}
	conflict, err := overlapExists(ctx, tx, req.PhysioID, req.RoomID, req.StartTime, req.EndTime, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDoubleBooking
	}

	c := tx.Appointment.Create().
		SetPatientID(req.PatientID).
		SetNillablePhysioID(req.PhysioID).
		SetServiceID(req.ServiceID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.RoomID != nil {
		c = c.SetRoomID(*req.RoomID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *schedulingService) Update(ctx context.Context, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	appt, err := s.updateInTx(ctx, tx, apptID, req)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return appt, nil
}

func (s *schedulingService) updateInTx(ctx context.Context, tx *repo.Tx, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := tx.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	if isTerminal(appt.Status) {
		return nil, ErrTerminalStatus
	}

	physioID := appt.PhysioID
	if req.PhysioID != nil {
		physioID = req.PhysioID
	}
	roomID := appt.RoomID
	if req.RoomID != nil {
		roomID = req.RoomID
	}
	start := appt.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := appt.EndTime
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	// Re-validate overlap when the slot or its occupants changed.
	rescheduled := req.PhysioID != nil || req.RoomID != nil || req.StartTime != nil || req.EndTime != nil
	if rescheduled {
		if err := s.lockSlots(ctx, tx, physioID, roomID); err != nil {
			return nil, err
		}
		conflict, err := overlapExists(ctx, tx, physioID, roomID, start, end, &apptID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrDoubleBooking
		}
	}

	upd := tx.Appointment.UpdateOne(appt).
		SetNillablePhysioID(physioID).
		SetStartTime(start).
		SetEndTime(end)

	if req.RoomID != nil {
		upd = upd.SetRoomID(*req.RoomID)
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Status transitions
// ---------------------------------------------------------------------------

func (s *schedulingService) Confirm(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusScheduled},
		func(u *repo.AppointmentUpdate) { u.SetStatus(entappt.StatusConfirmed) },
		"")
}

func (s *schedulingService) Complete(ctx context.Context, apptID uuid.UUID) error {
	now := time.Now()
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusScheduled, entappt.StatusConfirmed},
		func(u *repo.AppointmentUpdate) { u.SetStatus(entappt.StatusCompleted).SetCompletedAt(now) },
		"clinic.appointment.completed")
}

func (s *schedulingService) MarkNoShow(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusScheduled, entappt.StatusConfirmed},
		func(u *repo.AppointmentUpdate) { u.SetStatus(entappt.StatusNoShow) },
		"")
}

func (s *schedulingService) Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error {
	now := time.Now()
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusScheduled, entappt.StatusConfirmed},
		func(u *repo.AppointmentUpdate) {
			u.SetStatus(entappt.StatusCancelled).SetCancelledAt(now)
			if reason != nil {
				u.SetCancellationReason(*reason)
			}
		},
		"clinic.appointment.cancelled")
}

// transition performs a conditional update: the row must still be in one of
// the allowed source states. A zero row count means the appointment either
// does not exist or sits in a terminal state already.
func (s *schedulingService) transition(ctx context.Context, apptID uuid.UUID, from []entappt.Status, apply func(*repo.AppointmentUpdate), event string) error {
	upd := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.StatusIn(from...),
		)
	apply(upd)

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if n == 0 {
		exists, err := s.db.Appointment.Query().Where(entappt.ID(apptID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check appointment: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrTerminalStatus
	}

	if event != "" {
		s.publish(event, apptID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reminders
// ---------------------------------------------------------------------------

func (s *schedulingService) MarkReminderSent(ctx context.Context, apptID uuid.UUID) error {
	// Idempotent: marking twice is a no-op, not an error.
	n, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.ReminderSent(false),
		).
		SetReminderSent(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	if n == 0 {
		exists, err := s.db.Appointment.Query().Where(entappt.ID(apptID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check appointment: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (s *schedulingService) FindDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.ReminderSent(false),
			entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
			entappt.StartTimeGT(now),
			entappt.StartTimeLTE(now.Add(window)),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("find due reminders: %w", err)
	}
	return appts, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func isTerminal(st entappt.Status) bool {
	switch st {
	case entappt.StatusCompleted, entappt.StatusCancelled, entappt.StatusNoShow:
		return true
	}
	return false
}

// lockSlots takes per-resource advisory locks so two transactions cannot
// both pass the overlap check for the same physio or room. The locks
// release at commit or rollback. Only Postgres has advisory locks; the
// sqlite driver used in tests serializes writers by itself.
func (s *schedulingService) lockSlots(ctx context.Context, tx *repo.Tx, physioID, roomID *uuid.UUID) error {
	if s.dialect != dialect.Postgres {
		return nil
	}
	for _, id := range []*uuid.UUID{physioID, roomID} {
		if id == nil {
			continue
		}
		key := int64(binary.BigEndian.Uint64(id[:8]))
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
			return fmt.Errorf("lock schedule slot: %w", err)
		}
	}
	return nil
}

// overlapExists reports whether any live appointment occupies the same
// physio (or room) during [start, end). excludeID skips the appointment
// being rescheduled. Unassigned slots (no physio, no room) never conflict.
func overlapExists(ctx context.Context, tx *repo.Tx, physioID, roomID *uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	occupied := []entappt.Status{entappt.StatusScheduled, entappt.StatusConfirmed}

	if physioID != nil {
		q := tx.Appointment.Query().
			Where(
				entappt.PhysioID(*physioID),
				entappt.StatusIn(occupied...),
				entappt.StartTimeLT(end),
				entappt.EndTimeGT(start),
			)
		if excludeID != nil {
			q = q.Where(entappt.IDNEQ(*excludeID))
		}

		exists, err := q.Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("check physio overlap: %w", err)
		}
		if exists {
			return true, nil
		}
	}

	if roomID == nil {
		return false, nil
	}

	rq := tx.Appointment.Query().
		Where(
			entappt.RoomID(*roomID),
			entappt.StatusIn(occupied...),
			entappt.StartTimeLT(end),
			entappt.EndTimeGT(start),
		)
	if excludeID != nil {
		rq = rq.Where(entappt.IDNEQ(*excludeID))
	}

	exists, err := rq.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check room overlap: %w", err)
	}
	return exists, nil
}

func (s *schedulingService) publish(subject string, apptID uuid.UUID) {
	// Fire and forget: event delivery never fails the booking.
	if s.nc != nil {
		full := fmt.Sprintf("%s.%s", subject, apptID.String())
		_ = s.nc.Publish(full, []byte(apptID.String()))
	}
}
