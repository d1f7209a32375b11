package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName  string
	PatientEmail string
	ServiceName  string
	StartTime    time.Time
	RoomName     string
	ClinicName   string
}

const timeLayout = "Monday, 2 January 2006 at 15:04"

func (d AppointmentEmailData) clinicName() string {
	if d.ClinicName == "" {
		return "PhysioFitness"
	}
	return d.ClinicName
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

// roomName falls back to "TBD" when no room has been assigned yet.
func (d AppointmentEmailData) roomName() string {
	if d.RoomName == "" {
		return "TBD"
	}
	return d.RoomName
}

// BuildAppointmentConfirmationEmail creates a confirmation message for a newly
// booked appointment.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	name := data.patientName()
	when := data.StartTime.Format(timeLayout)
	room := data.roomName()

	subject := fmt.Sprintf("Your %s appointment is booked", clinic)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment at %s has been booked.

Service: %s
Date and time: %s
Room: %s

If you need to reschedule or cancel, please contact the front desk.

Thanks,
The %s Team`,
		name, clinic, data.ServiceName, when, room, clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment at %s has been booked.</p>
    <table style="width: 100%%; background-color: #f3f4f6; border-radius: 6px; padding: 10px; margin: 20px 0;">
        <tr><td style="padding: 6px 15px; color: #6b7280;">Service</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Date and time</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Room</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
    </table>
    <p>If you need to reschedule or cancel, please contact the front desk.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, clinic, data.ServiceName, when, room, clinic)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentReminderEmail creates a reminder message for an upcoming
// appointment.
func BuildAppointmentReminderEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	name := data.patientName()
	when := data.StartTime.Format(timeLayout)
	room := data.roomName()

	subject := fmt.Sprintf("Reminder: your %s appointment is coming up", clinic)

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming appointment at %s.

Service: %s
Date and time: %s
Room: %s

Please arrive a few minutes early. If you can no longer make it, let us know
as soon as possible so the slot can be offered to someone else.

Thanks,
The %s Team`,
		name, clinic, data.ServiceName, when, room, clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder of your upcoming appointment at %s.</p>
    <table style="width: 100%%; background-color: #f3f4f6; border-radius: 6px; padding: 10px; margin: 20px 0;">
        <tr><td style="padding: 6px 15px; color: #6b7280;">Service</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Date and time</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Room</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
    </table>
    <p>Please arrive a few minutes early. If you can no longer make it, let us know as soon as possible.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, clinic, data.ServiceName, when, room, clinic)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
