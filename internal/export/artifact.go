// Package export derives printable and downloadable representations
// of a finalized appointment. Pure string templating over an
// already-held record, no store round-trip.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
)

type artifactData struct {
	BookingReference string
	FullName         string
	Email            string
	Phone            string
	TreatmentType    string
	PreferredDate    string
	PreferredTime    string
	SpecialRequests  string
	BookedAt         string
	ContactPhone     string
	ContactEmail     string
}

var textTemplate = texttemplate.Must(texttemplate.New("text").Parse(`NIRAMAYA WELLNESS CENTER
Appointment Confirmation
========================================

Booking Reference : {{.BookingReference}}

Patient
  Name            : {{.FullName}}
  Email           : {{.Email}}
  Phone           : {{.Phone}}

Appointment
  Treatment       : {{.TreatmentType}}
  Date            : {{.PreferredDate}}
  Time            : {{.PreferredTime}}
{{- if .SpecialRequests}}
  Special Requests: {{.SpecialRequests}}
{{- end}}

Booked at         : {{.BookedAt}}

Please arrive 15 minutes early for check-in.
Questions or rescheduling: {{.ContactPhone}} | {{.ContactEmail}}

Thank you for choosing Niramaya Wellness.
`))

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Niramaya Appointment {{.BookingReference}}</title>
<style>
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 40px auto; color: #1f2937; }
  h1 { color: #059669; margin-bottom: 0; }
  .sub { color: #6b7280; margin-top: 4px; }
  .ref { background: #10b981; color: white; padding: 4px 10px; border-radius: 6px; font-weight: bold; }
  table { border-collapse: collapse; margin-top: 24px; }
  td { padding: 6px 16px 6px 0; vertical-align: top; }
  td:first-child { color: #6b7280; }
  .footer { margin-top: 32px; color: #9ca3af; font-size: 13px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
  <h1>🌿 Niramaya</h1>
  <p class="sub">Holistic Wellness Center — Appointment Confirmation</p>
  <p>Booking Reference: <span class="ref">{{.BookingReference}}</span></p>
  <table>
    <tr><td>Name</td><td>{{.FullName}}</td></tr>
    <tr><td>Email</td><td>{{.Email}}</td></tr>
    <tr><td>Phone</td><td>{{.Phone}}</td></tr>
    <tr><td>Treatment</td><td>{{.TreatmentType}}</td></tr>
    <tr><td>Date</td><td>{{.PreferredDate}}</td></tr>
    <tr><td>Time</td><td>{{.PreferredTime}}</td></tr>
    {{if .SpecialRequests}}<tr><td>Special Requests</td><td>{{.SpecialRequests}}</td></tr>{{end}}
    <tr><td>Booked at</td><td>{{.BookedAt}}</td></tr>
  </table>
  <p class="footer">Please arrive 15 minutes early for check-in.<br>
  Questions or rescheduling: {{.ContactPhone}} | {{.ContactEmail}}</p>
</body>
</html>`))

// Contact carries the clinic contact lines shown on both artifacts
type Contact struct {
	Phone string
	Email string
}

func buildData(appt *entity.Appointment, contact Contact) artifactData {
	return artifactData{
		BookingReference: appt.BookingReference,
		FullName:         appt.FullName,
		Email:            appt.Email,
		Phone:            appt.Phone,
		TreatmentType:    appt.TreatmentType,
		PreferredDate:    appt.PreferredDateLong(),
		PreferredTime:    appt.PreferredTime,
		SpecialRequests:  appt.SpecialRequests,
		BookedAt:         appt.CreatedAt.Format("January 2, 2006 at 3:04 PM"),
		ContactPhone:     contact.Phone,
		ContactEmail:     contact.Email,
	}
}

// Filename returns the download name for the plain-text artifact,
// e.g. Niramaya_Appointment_NIR-ABC23456.txt
func Filename(appt *entity.Appointment) string {
	return fmt.Sprintf("Niramaya_Appointment_%s.txt", appt.BookingReference)
}

// Text renders the plain-text record for download
func Text(appt *entity.Appointment, contact Contact) (string, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, buildData(appt, contact)); err != nil {
		return "", fmt.Errorf("render text artifact: %w", err)
	}
	return buf.String(), nil
}

// PrintableHTML renders the print-ready document. It triggers the
// system print dialog on load.
func PrintableHTML(appt *entity.Appointment, contact Contact) (string, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, buildData(appt, contact)); err != nil {
		return "", fmt.Errorf("render printable artifact: %w", err)
	}
	return buf.String(), nil
}
