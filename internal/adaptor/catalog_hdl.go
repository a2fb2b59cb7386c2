package adaptor

import (
	"errors"
	"net/http"

	"github.com/adityaraj161616/Nirmalaya/internal/usecase"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetTreatments handles GET /api/treatments
func (h *CatalogHandler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListTreatments(r.Context()))
}

// GetDoctors handles GET /api/doctors
func (h *CatalogHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListDoctors(r.Context()))
}

// GetDoctorsForTreatment handles GET /api/treatments/{id}/doctors,
// returning only doctors eligible for the treatment
func (h *CatalogHandler) GetDoctorsForTreatment(w http.ResponseWriter, r *http.Request) {
	treatmentID := chi.URLParam(r, "id")
	if treatmentID == "" {
		utils.ResponseBadRequest(w, "Treatment ID is required", nil)
		return
	}

	doctors, err := h.service.DoctorsForTreatment(r.Context(), treatmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "Treatment not found")
			return
		}
		h.log.Error("Failed to get doctors for treatment",
			zap.Error(err),
			zap.String("treatment_id", treatmentID),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", doctors)
}

// GetTimeSlots handles GET /api/slots
func (h *CatalogHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListTimeSlots(r.Context()))
}
