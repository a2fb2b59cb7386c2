package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the canonical record created exactly once per
// successful submission. The store owns it after insert; callers only
// hold a read-only copy for display and export.
type Appointment struct {
	ID               uuid.UUID         `db:"id"`
	BookingReference string            `db:"booking_reference"`
	DraftID          uuid.UUID         `db:"draft_id"`
	FullName         string            `db:"full_name"`
	Email            string            `db:"email"`
	Phone            string            `db:"phone"`
	TreatmentType    string            `db:"treatment_type"`
	PreferredDate    string            `db:"preferred_date"`
	PreferredTime    string            `db:"preferred_time"`
	SpecialRequests  string            `db:"special_requests"`
	Status           AppointmentStatus `db:"status"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

// PreferredDateLong renders the date like "Monday, January 2, 2006"
// for emails and exports. Falls back to the raw value if it does not
// parse.
func (a *Appointment) PreferredDateLong() string {
	d, err := time.Parse("2006-01-02", a.PreferredDate)
	if err != nil {
		return a.PreferredDate
	}
	return d.Format("Monday, January 2, 2006")
}
