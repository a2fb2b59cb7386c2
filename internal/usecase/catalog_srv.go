package usecase

import (
	"context"

	"github.com/adityaraj161616/Nirmalaya/internal/catalog"
	"github.com/adityaraj161616/Nirmalaya/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListTreatments(ctx context.Context) []response.TreatmentResponse
	ListDoctors(ctx context.Context) []response.DoctorResponse
	DoctorsForTreatment(ctx context.Context, treatmentID string) ([]response.DoctorResponse, error)
	ListTimeSlots(ctx context.Context) []string
}

type catalogService struct {
	log *zap.Logger
}

func NewCatalogService(log *zap.Logger) CatalogService {
	return &catalogService{
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListTreatments(_ context.Context) []response.TreatmentResponse {
	treatments := catalog.Treatments()
	out := make([]response.TreatmentResponse, len(treatments))
	for i, t := range treatments {
		out[i] = response.TreatmentToResponse(t)
	}
	return out
}

func (s *catalogService) ListDoctors(_ context.Context) []response.DoctorResponse {
	doctors := catalog.Doctors()
	out := make([]response.DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = response.DoctorToResponse(d)
	}
	return out
}

// DoctorsForTreatment returns only eligible doctors for the treatment
func (s *catalogService) DoctorsForTreatment(_ context.Context, treatmentID string) ([]response.DoctorResponse, error) {
	if catalog.TreatmentByID(treatmentID) == nil {
		s.log.Warn("Unknown treatment requested", zap.String("treatment_id", treatmentID))
		return nil, ErrNotFound
	}

	doctors := catalog.DoctorsForTreatment(treatmentID)
	out := make([]response.DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = response.DoctorToResponse(d)
	}
	return out, nil
}

func (s *catalogService) ListTimeSlots(_ context.Context) []string {
	return catalog.TimeSlots()
}
