package analytics

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entappt "github.com/physiofit/clinic_backend/internal/repo/appointment"
	"github.com/physiofit/clinic_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (*analyticsService, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return &analyticsService{db: client, now: time.Now}, client
}

func createAppointment(t *testing.T, client *repo.Client, patientID, physioID uuid.UUID, start time.Time, status entappt.Status) {
	t.Helper()
	_, err := client.Appointment.Create().
		SetPatientID(patientID).
		SetPhysioID(physioID).
		SetServiceID(uuid.New()).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		SetStatus(status).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
}

func TestNoShowRisk(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	physioID := uuid.New()

	t.Run("new patient", func(t *testing.T) {
		got, err := svc.NoShowRisk(ctx, uuid.New())
		if err != nil {
			t.Fatalf("risk: %v", err)
		}
		if got.RiskScore != 0 || got.Label != "Low Risk" {
			t.Errorf("got %d %q, want 0 Low Risk", got.RiskScore, got.Label)
		}
		if got.Reason != "New Patient (No history)" {
			t.Errorf("reason = %q", got.Reason)
		}
	})

	t.Run("high risk", func(t *testing.T) {
		patientID := uuid.New()
		base := time.Now().Add(-30 * 24 * time.Hour)
		// 2 no-shows, 1 cancellation, 1 completed: (2 + 0.5) / 4 = 62%.
		createAppointment(t, client, patientID, physioID, base, entappt.StatusNoShow)
		createAppointment(t, client, patientID, physioID, base.Add(24*time.Hour), entappt.StatusNoShow)
		createAppointment(t, client, patientID, physioID, base.Add(48*time.Hour), entappt.StatusCancelled)
		createAppointment(t, client, patientID, physioID, base.Add(72*time.Hour), entappt.StatusCompleted)

		got, err := svc.NoShowRisk(ctx, patientID)
		if err != nil {
			t.Fatalf("risk: %v", err)
		}
		if got.RiskScore != 62 {
			t.Errorf("score = %d, want 62", got.RiskScore)
		}
		if got.Label != "High Risk" {
			t.Errorf("label = %q, want High Risk", got.Label)
		}
	})

	t.Run("reliable patient", func(t *testing.T) {
		patientID := uuid.New()
		base := time.Now().Add(-30 * 24 * time.Hour)
		for i := 0; i < 5; i++ {
			createAppointment(t, client, patientID, physioID, base.Add(time.Duration(i)*24*time.Hour), entappt.StatusCompleted)
		}
		createAppointment(t, client, patientID, physioID, base.Add(6*24*time.Hour), entappt.StatusCancelled)

		got, err := svc.NoShowRisk(ctx, patientID)
		if err != nil {
			t.Fatalf("risk: %v", err)
		}
		// 0.5 / 6 = 8%.
		if got.Label != "Low Risk" {
			t.Errorf("label = %q (score %d), want Low Risk", got.Label, got.RiskScore)
		}
	})
}

func TestDemandForecast(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	physioID := uuid.New()

	fixed := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC) // a Monday
	svc.now = func() time.Time { return fixed }

	// Two appointments on each of the four previous Mondays.
	for weeksBack := 1; weeksBack <= 4; weeksBack++ {
		day := fixed.AddDate(0, 0, -7*weeksBack)
		createAppointment(t, client, uuid.New(), physioID, day.Add(time.Hour), entappt.StatusCompleted)
		createAppointment(t, client, uuid.New(), uuid.New(), day.Add(2*time.Hour), entappt.StatusCompleted)
	}

	forecast, err := svc.DemandForecast(ctx, nil)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(forecast) != 7 {
		t.Fatalf("days = %d, want 7", len(forecast))
	}
	if forecast[0].Weekday != "Monday" {
		t.Errorf("first day = %s, want Monday", forecast[0].Weekday)
	}
	if forecast[0].PredictedCount != 2.0 {
		t.Errorf("Monday prediction = %v, want 2.0", forecast[0].PredictedCount)
	}
	if forecast[1].PredictedCount != 0 {
		t.Errorf("Tuesday prediction = %v, want 0", forecast[1].PredictedCount)
	}

	t.Run("per physio", func(t *testing.T) {
		personal, err := svc.DemandForecast(ctx, &physioID)
		if err != nil {
			t.Fatalf("forecast: %v", err)
		}
		if personal[0].PredictedCount != 1.0 {
			t.Errorf("Monday prediction = %v, want 1.0", personal[0].PredictedCount)
		}
	})
}

func TestDashboard(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	physioID := uuid.New()
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	if _, err := client.Patient.Create().SetFirstName("Ana").SetLastName("Silva").Save(ctx); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	createAppointment(t, client, uuid.New(), physioID, now.Add(time.Hour), entappt.StatusScheduled)
	createAppointment(t, client, uuid.New(), uuid.New(), now.Add(2*time.Hour), entappt.StatusScheduled)

	inv, err := client.Invoice.Create().
		SetPatientID(uuid.New()).
		SetNumber("INV-2026-000001").
		Save(ctx)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if _, err := client.Payment.Create().
		SetInvoiceID(inv.ID).
		SetAmount(5000).
		SetMethod("card").
		SetReceivedAt(now).
		Save(ctx); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	t.Run("admin", func(t *testing.T) {
		stats, err := svc.Dashboard(ctx, "admin", uuid.New())
		if err != nil {
			t.Fatalf("dashboard: %v", err)
		}
		if stats.TotalPatients != 1 {
			t.Errorf("patients = %d, want 1", stats.TotalPatients)
		}
		if stats.TodayAppointments != 2 {
			t.Errorf("today = %d, want 2", stats.TodayAppointments)
		}
		if stats.MonthlyRevenue != 5000 {
			t.Errorf("revenue = %d, want 5000", stats.MonthlyRevenue)
		}
		if stats.PendingInvoices != 1 {
			t.Errorf("pending = %d, want 1", stats.PendingInvoices)
		}
	})

	t.Run("physio sees own schedule and no revenue", func(t *testing.T) {
		stats, err := svc.Dashboard(ctx, "physio", physioID)
		if err != nil {
			t.Fatalf("dashboard: %v", err)
		}
		if stats.TodayAppointments != 1 {
			t.Errorf("today = %d, want 1", stats.TodayAppointments)
		}
		if stats.MonthlyRevenue != 0 || stats.PendingInvoices != 0 {
			t.Errorf("physio should not see billing numbers")
		}
	})
}

func TestChat(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		message string
		want    string
	}{
		{"Hello there", "PhysioFitness Assistant"},
		{"what are your opening hours?", "09:00 to 18:00"},
		{"I want to book a session", "Scheduling page"},
		{"how much does it cost?", "initial consultation"},
		{"qwerty", "call our reception"},
	}
	for _, tc := range cases {
		got := svc.Chat(tc.message)
		if !strings.Contains(got, tc.want) {
			t.Errorf("Chat(%q) = %q, want it to mention %q", tc.message, got, tc.want)
		}
	}
}
