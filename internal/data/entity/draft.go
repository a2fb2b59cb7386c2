package entity

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

// PatientInfo is captured at step 1 and immutable once step 3 submits
type PatientInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`
	Gender    Gender `json:"gender"`
}

// TreatmentSelection is captured at step 2. Date is stored as
// YYYY-MM-DD, Time as one of the catalog slot labels.
type TreatmentSelection struct {
	TreatmentID string `json:"treatment"`
	DoctorID    string `json:"doctor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ApplyTreatment sets a new treatment and clears the dependent
// fields. Selecting the same treatment again changes nothing.
func (t *TreatmentSelection) ApplyTreatment(treatmentID string) {
	if t.TreatmentID == treatmentID {
		return
	}
	t.TreatmentID = treatmentID
	t.DoctorID = ""
	t.Date = ""
	t.Time = ""
}

// ApplyDoctor sets a new doctor and clears date and time
func (t *TreatmentSelection) ApplyDoctor(doctorID string) {
	if t.DoctorID == doctorID {
		return
	}
	t.DoctorID = doctorID
	t.Date = ""
	t.Time = ""
}

// ApplyDate sets a new date and clears the time
func (t *TreatmentSelection) ApplyDate(date string) {
	if t.Date == date {
		return
	}
	t.Date = date
	t.Time = ""
}

// ApplyTime sets the time slot
func (t *TreatmentSelection) ApplyTime(slot string) {
	t.Time = slot
}

// BookingDraft is the single mutable aggregate of the wizard. It is
// created empty on the first step-1 submit, mutated by each step and
// cleared once the appointment is durably stored.
type BookingDraft struct {
	PatientInfo   *PatientInfo        `json:"patientInfo,omitempty"`
	TreatmentInfo *TreatmentSelection `json:"treatmentInfo,omitempty"`
	CurrentStep   int                 `json:"currentStep"`
}

// Step1Complete reports whether the draft satisfies the step-2 guard
func (d *BookingDraft) Step1Complete() bool {
	return d != nil && d.PatientInfo != nil
}

// Step2Complete reports whether the draft satisfies the step-3 guard
func (d *BookingDraft) Step2Complete() bool {
	return d.Step1Complete() && d.TreatmentInfo != nil &&
		d.TreatmentInfo.TreatmentID != "" && d.TreatmentInfo.DoctorID != "" &&
		d.TreatmentInfo.Date != "" && d.TreatmentInfo.Time != ""
}
