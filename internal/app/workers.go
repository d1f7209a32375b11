package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/repo"
	entpatient "github.com/physiofit/clinic_backend/internal/repo/patient"
	entroom "github.com/physiofit/clinic_backend/internal/repo/room"
	entsvc "github.com/physiofit/clinic_backend/internal/repo/service"
	"github.com/physiofit/clinic_backend/internal/service/scheduling"
	"github.com/physiofit/clinic_backend/pkg/email"
)

// WorkerModule registers the NATS event workers and the reminder sweep.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	SchedSvc scheduling.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	sweepDone := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startEmailWorker(p.NC, p.DB, p.Email)
			if p.Cfg.Reminders.Enabled {
				go runReminderSweep(p.Cfg.Reminders, p.DB, p.SchedSvc, p.Email, sweepDone)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// NATS drain handled by ProvideNatsClient.
			close(sweepDone)
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	_, err := nc.Subscribe("clinic.appointment.created.*", func(msg *nats.Msg) {
		apptIDStr := strings.TrimSpace(string(msg.Data))
		apptID, err := uuid.Parse(apptIDStr)
		if err != nil {
			return
		}
		ctx := context.Background()

		data, err := appointmentEmailData(ctx, db, apptID)
		if err != nil {
			slog.Warn("email_worker: load appointment failed", "id", apptIDStr, "err", err)
			return
		}

		if err := mail.Send(ctx, email.BuildAppointmentConfirmationEmail(*data)); err != nil {
			slog.Warn("email_worker: confirmation send failed", "appointment_id", apptIDStr, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.created failed", "err", err)
	}

	slog.Info("email_worker: started")
}

// ---------------------------------------------------------------------------
// reminder sweep
// ---------------------------------------------------------------------------

func runReminderSweep(
	cfg config.ReminderConfig,
	db *repo.Client,
	sched scheduling.Service,
	mail *email.Client,
	done <-chan struct{},
) {
	interval := time.Duration(cfg.SweepIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	window := time.Duration(cfg.LookaheadWindowHrs) * time.Hour
	if window <= 0 {
		window = 24 * time.Hour
	}

	slog.Info("reminder_sweep: started", "interval", interval, "window", window)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			slog.Info("reminder_sweep: stopped")
			return
		case <-ticker.C:
			sweepReminders(db, sched, mail, window)
		}
	}
}

func sweepReminders(db *repo.Client, sched scheduling.Service, mail *email.Client, window time.Duration) {
	ctx := context.Background()

	due, err := sched.FindDueReminders(ctx, time.Now(), window)
	if err != nil {
		slog.Warn("reminder_sweep: find due reminders failed", "err", err)
		return
	}

	for _, appt := range due {
		data, err := appointmentEmailData(ctx, db, appt.ID)
		if err != nil {
			slog.Warn("reminder_sweep: load appointment failed", "appointment_id", appt.ID, "err", err)
			continue
		}

		if err := mail.Send(ctx, email.BuildAppointmentReminderEmail(*data)); err != nil {
			slog.Warn("reminder_sweep: reminder send failed", "appointment_id", appt.ID, "err", err)
			continue
		}

		// Mark only after a successful send so a failed sweep retries.
		if err := sched.MarkReminderSent(ctx, appt.ID); err != nil {
			slog.Warn("reminder_sweep: mark sent failed", "appointment_id", appt.ID, "err", err)
		}
	}
}

func appointmentEmailData(ctx context.Context, db *repo.Client, apptID uuid.UUID) (*email.AppointmentEmailData, error) {
	appt, err := db.Appointment.Get(ctx, apptID)
	if err != nil {
		return nil, err
	}

	pat, err := db.Patient.Query().
		Where(entpatient.ID(appt.PatientID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	data := &email.AppointmentEmailData{
		PatientName: pat.FirstName,
		StartTime:   appt.StartTime,
	}
	if pat.Email != nil {
		data.PatientEmail = *pat.Email
	}

	if svc, err := db.Service.Query().Where(entsvc.ID(appt.ServiceID)).Only(ctx); err == nil {
		data.ServiceName = svc.Name
	}
	if appt.RoomID != nil {
		if room, err := db.Room.Query().Where(entroom.ID(*appt.RoomID)).Only(ctx); err == nil {
			data.RoomName = room.Name
		}
	}

	return data, nil
}
