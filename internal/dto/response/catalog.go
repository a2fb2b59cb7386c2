package response

import "github.com/adityaraj161616/Nirmalaya/internal/catalog"

type TreatmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
	PriceLabel  string `json:"price_label"`
}

type DoctorResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Rating         float64  `json:"rating"`
	Treatments     []string `json:"treatments"`
}

func TreatmentToResponse(t catalog.Treatment) TreatmentResponse {
	return TreatmentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Duration:    t.Duration,
		Price:       t.Price,
		PriceLabel:  t.PriceLabel(),
	}
}

func DoctorToResponse(d catalog.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Experience:     d.Experience,
		Rating:         d.Rating,
		Treatments:     d.Treatments,
	}
}
