// Package catalog holds the fixed treatment, doctor and time-slot
// tables. Every step of the booking flow, the submission path and the
// export path resolve ids against this single source so prices and
// labels can never drift apart.
package catalog

import "fmt"

type Treatment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
}

// PriceLabel formats the price the way the booking pages show it, e.g. ₹14,400
func (t Treatment) PriceLabel() string {
	if t.Price < 1000 {
		return fmt.Sprintf("₹%d", t.Price)
	}
	return fmt.Sprintf("₹%d,%03d", t.Price/1000, t.Price%1000)
}

type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Rating         float64  `json:"rating"`
	Treatments     []string `json:"treatments"`
}

// Treats reports whether the doctor services the given treatment
func (d Doctor) Treats(treatmentID string) bool {
	for _, id := range d.Treatments {
		if id == treatmentID {
			return true
		}
	}
	return false
}

var treatments = []Treatment{
	{
		ID:          "panchakarma",
		Name:        "Panchakarma Detox",
		Description: "Complete body purification and rejuvenation therapy",
		Duration:    "90 min",
		Price:       14400,
	},
	{
		ID:          "abhyanga",
		Name:        "Abhyanga Massage",
		Description: "Full body oil massage for deep relaxation",
		Duration:    "60 min",
		Price:       9600,
	},
	{
		ID:          "shirodhara",
		Name:        "Shirodhara Therapy",
		Description: "Continuous oil pouring for mental clarity",
		Duration:    "45 min",
		Price:       12000,
	},
	{
		ID:          "consultation",
		Name:        "Herbal Consultation",
		Description: "Personalized Ayurvedic health assessment",
		Duration:    "30 min",
		Price:       6400,
	},
}

var doctors = []Doctor{
	{
		ID:             "dr-patel",
		Name:           "Dr. Arjun Patel",
		Specialization: "Mind & Spirit Wellness",
		Experience:     "12 years",
		Rating:         4.9,
		Treatments:     []string{"shirodhara", "consultation"},
	},
	{
		ID:             "dr-sharma",
		Name:           "Dr. Priya Sharma",
		Specialization: "Panchakarma & Detox",
		Experience:     "15 years",
		Rating:         4.9,
		Treatments:     []string{"panchakarma", "abhyanga"},
	},
	{
		ID:             "dr-krishna",
		Name:           "Dr. Maya Krishna",
		Specialization: "General Ayurvedic Practice",
		Experience:     "10 years",
		Rating:         4.7,
		Treatments:     []string{"abhyanga", "consultation", "panchakarma"},
	},
}

// the daily slot list is the same for every doctor and date
var timeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Treatments returns the full treatment catalog in display order
func Treatments() []Treatment {
	out := make([]Treatment, len(treatments))
	copy(out, treatments)
	return out
}

// TreatmentByID returns the treatment or nil when the id is unknown
func TreatmentByID(id string) *Treatment {
	for i := range treatments {
		if treatments[i].ID == id {
			t := treatments[i]
			return &t
		}
	}
	return nil
}

// Doctors returns the full doctor catalog in display order
func Doctors() []Doctor {
	out := make([]Doctor, len(doctors))
	copy(out, doctors)
	return out
}

// DoctorByID returns the doctor or nil when the id is unknown
func DoctorByID(id string) *Doctor {
	for i := range doctors {
		if doctors[i].ID == id {
			d := doctors[i]
			return &d
		}
	}
	return nil
}

// DoctorsForTreatment returns exactly the doctors whose service set
// contains the treatment id. Eligibility is enforced here by
// filtering, not by validation after the fact.
func DoctorsForTreatment(treatmentID string) []Doctor {
	var out []Doctor
	for _, d := range doctors {
		if d.Treats(treatmentID) {
			out = append(out, d)
		}
	}
	return out
}

// TimeSlots returns the fixed ordered daily slot list
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidSlot reports whether the time is one of the offered slots
func ValidSlot(t string) bool {
	for _, slot := range timeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
