// Package analytics provides rule-based insights over appointment and
// billing history: no-show risk per patient, weekly demand forecasts,
// dashboard counters and a small keyword assistant.
package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entappt "github.com/physiofit/clinic_backend/internal/repo/appointment"
	entinv "github.com/physiofit/clinic_backend/internal/repo/invoice"
	entpatient "github.com/physiofit/clinic_backend/internal/repo/patient"
	entpay "github.com/physiofit/clinic_backend/internal/repo/payment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RiskAssessment struct {
	RiskScore int    `json:"risk_score"` // 0..100
	Label     string `json:"label"`      // High Risk | Medium Risk | Low Risk
	Reason    string `json:"reason"`
}

type DayForecast struct {
	Date           time.Time `json:"date"`
	Weekday        string    `json:"weekday"`
	PredictedCount float64   `json:"predicted_count"`
}

type DashboardStats struct {
	TotalPatients     int   `json:"total_patients"`
	TodayAppointments int   `json:"today_appointments"`
	MonthlyRevenue    int64 `json:"monthly_revenue"` // euro cents
	PendingInvoices   int   `json:"pending_invoices"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// NoShowRisk scores a patient's likelihood of missing the next
	// appointment from their completed/cancelled/no-show history.
	NoShowRisk(ctx context.Context, patientID uuid.UUID) (*RiskAssessment, error)

	// DemandForecast predicts appointment counts for the next seven days.
	// Each day is the mean of the same weekday over the previous four
	// weeks, restricted to one physio when physioID is set.
	DemandForecast(ctx context.Context, physioID *uuid.UUID) ([]DayForecast, error)

	// Dashboard returns the headline counters. Revenue and pending
	// invoices are only included for admins; physios see their own
	// appointment count for today.
	Dashboard(ctx context.Context, role string, userID uuid.UUID) (*DashboardStats, error)

	// Chat answers a visitor message with canned keyword responses.
	Chat(message string) string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type analyticsService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &analyticsService{db: db, now: time.Now}
}

func (s *analyticsService) NoShowRisk(ctx context.Context, patientID uuid.UUID) (*RiskAssessment, error) {
	history := s.db.Appointment.Query().
		Where(
			entappt.PatientID(patientID),
			entappt.StatusIn(
				entappt.StatusCompleted,
				entappt.StatusNoShow,
				entappt.StatusCancelled,
			),
		)

	total, err := history.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointment history: %w", err)
	}
	if total == 0 {
		return &RiskAssessment{
			RiskScore: 0,
			Label:     "Low Risk",
			Reason:    "New Patient (No history)",
		}, nil
	}

	noShows, err := history.Clone().
		Where(entappt.StatusEQ(entappt.StatusNoShow)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count no-shows: %w", err)
	}
	cancellations, err := history.Clone().
		Where(entappt.StatusEQ(entappt.StatusCancelled)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cancellations: %w", err)
	}

	// Cancellations count half as much as outright no-shows.
	weighted := float64(noShows) + float64(cancellations)*0.5
	score := int(math.Min(weighted/float64(total)*100, 100))

	var label string
	switch {
	case score > 50:
		label = "High Risk"
	case score > 20:
		label = "Medium Risk"
	default:
		label = "Low Risk"
	}

	return &RiskAssessment{
		RiskScore: score,
		Label:     label,
		Reason: fmt.Sprintf("History: %d No-Shows, %d Cancellations out of %d visits.",
			noShows, cancellations, total),
	}, nil
}

func (s *analyticsService) DemandForecast(ctx context.Context, physioID *uuid.UUID) ([]DayForecast, error) {
	today := startOfDay(s.now())
	forecast := make([]DayForecast, 0, 7)

	for i := 0; i < 7; i++ {
		target := today.AddDate(0, 0, i)

		var sum int
		for weeksBack := 1; weeksBack <= 4; weeksBack++ {
			dayStart := target.AddDate(0, 0, -7*weeksBack)
			dayEnd := dayStart.AddDate(0, 0, 1)

			q := s.db.Appointment.Query().
				Where(
					entappt.StartTimeGTE(dayStart),
					entappt.StartTimeLT(dayEnd),
				)
			if physioID != nil {
				q = q.Where(entappt.PhysioID(*physioID))
			}

			n, err := q.Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count past appointments: %w", err)
			}
			sum += n
		}

		forecast = append(forecast, DayForecast{
			Date:           target,
			Weekday:        target.Weekday().String(),
			PredictedCount: math.Round(float64(sum)/4*10) / 10,
		})
	}

	return forecast, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, role string, userID uuid.UUID) (*DashboardStats, error) {
	now := s.now()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{}

	totalPatients, err := s.db.Patient.Query().
		Where(entpatient.StatusEQ(entpatient.StatusActive), entpatient.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	stats.TotalPatients = totalPatients

	apptQuery := s.db.Appointment.Query().
		Where(
			entappt.StartTimeGTE(today),
			entappt.StartTimeLT(tomorrow),
		)
	if role == "physio" {
		apptQuery = apptQuery.Where(entappt.PhysioID(userID))
	}
	todayCount, err := apptQuery.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count today's appointments: %w", err)
	}
	stats.TodayAppointments = todayCount

	if role != "admin" {
		return stats, nil
	}

	var amounts []int64
	err = s.db.Payment.Query().
		Where(entpay.ReceivedAtGTE(monthStart)).
		Select(entpay.FieldAmount).
		Scan(ctx, &amounts)
	if err != nil {
		return nil, fmt.Errorf("sum monthly payments: %w", err)
	}
	for _, a := range amounts {
		stats.MonthlyRevenue += a
	}

	pending, err := s.db.Invoice.Query().
		Where(entinv.StatusIn(entinv.StatusDraft, entinv.StatusIssued)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending invoices: %w", err)
	}
	stats.PendingInvoices = pending

	return stats, nil
}

func (s *analyticsService) Chat(message string) string {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi"):
		return "Hello! I am the PhysioFitness Assistant. How can I help you today?"
	case strings.Contains(msg, "open") || strings.Contains(msg, "hour"):
		return "We are open Monday to Friday, 09:00 to 18:00."
	case strings.Contains(msg, "book") || strings.Contains(msg, "appointment"):
		return "You can book an appointment by logging in and visiting the Scheduling page."
	case strings.Contains(msg, "price") || strings.Contains(msg, "cost"):
		return "Our initial consultation is €50. Massages start at €30."
	default:
		return "I'm sorry, I didn't understand that. Please call our reception at 555-0123."
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
