package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildAppointmentConfirmationEmail(t *testing.T) {
	data := AppointmentEmailData{
		PatientName:  "Maria Santos",
		PatientEmail: "maria@example.com",
		ServiceName:  "Physiotherapy Session",
		StartTime:    time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		RoomName:     "Room 2",
	}

	msg := BuildAppointmentConfirmationEmail(data)

	if len(msg.To) != 1 || msg.To[0] != "maria@example.com" {
		t.Fatalf("unexpected recipients: %v", msg.To)
	}
	if msg.Subject == "" {
		t.Fatal("expected non-empty subject")
	}
	for _, want := range []string{"Maria Santos", "Physiotherapy Session", "Room 2", "Monday, 14 September 2026 at 10:30"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildAppointmentConfirmationEmailRoomFallback(t *testing.T) {
	data := AppointmentEmailData{
		PatientName:  "Maria Santos",
		PatientEmail: "maria@example.com",
		ServiceName:  "Physiotherapy Session",
		StartTime:    time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
	}

	msg := BuildAppointmentConfirmationEmail(data)

	if !strings.Contains(msg.TextBody, "TBD") {
		t.Error("expected TBD room fallback in text body")
	}
	if !strings.Contains(msg.HTMLBody, "TBD") {
		t.Error("expected TBD room fallback in html body")
	}
}

func TestBuildAppointmentReminderEmail(t *testing.T) {
	data := AppointmentEmailData{
		PatientEmail: "joao@example.com",
		ServiceName:  "Massage Therapy",
		StartTime:    time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		RoomName:     "Room 1",
	}

	msg := BuildAppointmentReminderEmail(data)

	if len(msg.To) != 1 || msg.To[0] != "joao@example.com" {
		t.Fatalf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "Reminder") {
		t.Errorf("expected reminder subject, got %q", msg.Subject)
	}
	// Empty patient name falls back to a generic greeting.
	if !strings.Contains(msg.TextBody, "Hi there") {
		t.Error("expected greeting fallback in text body")
	}
	if !strings.Contains(msg.TextBody, "Massage Therapy") {
		t.Error("text body missing service name")
	}
}
