package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/internal/dto/response"
	"github.com/adityaraj161616/Nirmalaya/internal/export"
	"github.com/adityaraj161616/Nirmalaya/internal/usecase"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AppointmentHandler serves finalized records: lookup plus the
// printable and downloadable confirmation artifacts.
type AppointmentHandler struct {
	service usecase.BookingService
	contact export.Contact
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.BookingService, config *utils.Config, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		contact: export.Contact{
			Phone: config.Email.ContactPhone,
			Email: config.Email.ContactEmail,
		},
		log: log.With(zap.String("handler", "appointment")),
	}
}

// GetAppointment handles GET /api/appointments/{reference}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt, ok := h.lookup(w, r)
	if !ok {
		return
	}
	utils.ResponseSuccess(w, "success", response.AppointmentToResponse(appt))
}

// Download handles GET /api/appointments/{reference}/download,
// serving the plain-text record as a file attachment
func (h *AppointmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	appt, ok := h.lookup(w, r)
	if !ok {
		return
	}

	body, err := export.Text(appt, h.contact)
	if err != nil {
		h.log.Error("Failed to render download artifact",
			zap.Error(err),
			zap.String("booking_reference", appt.BookingReference),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(appt)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Print handles GET /api/appointments/{reference}/print, serving a
// document that opens the system print dialog
func (h *AppointmentHandler) Print(w http.ResponseWriter, r *http.Request) {
	appt, ok := h.lookup(w, r)
	if !ok {
		return
	}

	body, err := export.PrintableHTML(appt, h.contact)
	if err != nil {
		h.log.Error("Failed to render printable artifact",
			zap.Error(err),
			zap.String("booking_reference", appt.BookingReference),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *AppointmentHandler) lookup(w http.ResponseWriter, r *http.Request) (*entity.Appointment, bool) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		utils.ResponseBadRequest(w, "Booking reference is required", nil)
		return nil, false
	}

	found, err := h.service.Appointment(r.Context(), reference)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "Appointment not found")
			return nil, false
		}
		h.log.Error("Failed to find appointment",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return nil, false
	}

	return found, true
}
