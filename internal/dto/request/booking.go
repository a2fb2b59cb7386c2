package request

// PatientInfoRequest carries the step-1 form fields. Age arrives as a
// string exactly as typed; the service parses and range-checks it.
type PatientInfoRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Age       string `json:"age" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=male female other unspecified"`
}

// TreatmentSelectionRequest carries the full step-2 form. All four
// fields are required before the wizard can advance.
type TreatmentSelectionRequest struct {
	Treatment string `json:"treatment" validate:"required"`
	Doctor    string `json:"doctor" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
}

// SelectionRequest is a partial step-2 update: any subset of fields
// may be set. Changing an earlier field in the treatment → doctor →
// date → time chain resets the later ones.
type SelectionRequest struct {
	Treatment *string `json:"treatment,omitempty"`
	Doctor    *string `json:"doctor,omitempty"`
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time,omitempty"`
}

// AppointmentEmailRequest is the notification endpoint body: the
// appointment fields plus the generated booking reference.
type AppointmentEmailRequest struct {
	FullName         string `json:"full_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	TreatmentType    string `json:"treatment_type" validate:"required"`
	PreferredDate    string `json:"preferred_date" validate:"required"`
	PreferredTime    string `json:"preferred_time" validate:"required"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	BookingReference string `json:"booking_reference" validate:"required"`
}
