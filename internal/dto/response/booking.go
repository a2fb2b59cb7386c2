package response

import (
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
)

type PatientInfoResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

type TreatmentSelectionResponse struct {
	Treatment string `json:"treatment"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// DraftResponse mirrors the stored draft plus the step the client
// should navigate to next.
type DraftResponse struct {
	CurrentStep   int                         `json:"current_step"`
	PatientInfo   *PatientInfoResponse        `json:"patient_info,omitempty"`
	TreatmentInfo *TreatmentSelectionResponse `json:"treatment_info,omitempty"`
	Next          string                      `json:"next"`
}

// ReviewResponse is the read-only step-3 summary, every label and
// price resolved against the shared catalog.
type ReviewResponse struct {
	Patient       PatientInfoResponse `json:"patient"`
	TreatmentID   string              `json:"treatment_id"`
	TreatmentName string              `json:"treatment_name"`
	Duration      string              `json:"duration"`
	DoctorID      string              `json:"doctor_id"`
	DoctorName    string              `json:"doctor_name"`
	Date          string              `json:"date"`
	Time          string              `json:"time"`
	Price         int                 `json:"price"`
	PriceLabel    string              `json:"price_label"`
}

// AppointmentResponse is the finalized record handed back after a
// successful submission, field names matching the stored row.
type AppointmentResponse struct {
	ID               string    `json:"id"`
	BookingReference string    `json:"booking_reference"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	TreatmentType    string    `json:"treatment_type"`
	PreferredDate    string    `json:"preferred_date"`
	PreferredTime    string    `json:"preferred_time"`
	SpecialRequests  string    `json:"special_requests,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Helper converters

func PatientInfoToResponse(p *entity.PatientInfo) *PatientInfoResponse {
	if p == nil {
		return nil
	}
	return &PatientInfoResponse{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Age:       p.Age,
		Gender:    string(p.Gender),
	}
}

func TreatmentSelectionToResponse(t *entity.TreatmentSelection) *TreatmentSelectionResponse {
	if t == nil {
		return nil
	}
	return &TreatmentSelectionResponse{
		Treatment: t.TreatmentID,
		Doctor:    t.DoctorID,
		Date:      t.Date,
		Time:      t.Time,
	}
}

func AppointmentToResponse(a *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               a.ID.String(),
		BookingReference: a.BookingReference,
		FullName:         a.FullName,
		Email:            a.Email,
		Phone:            a.Phone,
		TreatmentType:    a.TreatmentType,
		PreferredDate:    a.PreferredDate,
		PreferredTime:    a.PreferredTime,
		SpecialRequests:  a.SpecialRequests,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
	}
}
