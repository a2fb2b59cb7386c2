package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/internal/dto/request"
	"github.com/adityaraj161616/Nirmalaya/internal/notify"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"go.uber.org/zap"
)

// NotifyHandler exposes the email dispatch as its own endpoint, the
// same surface the booking pages call after an appointment row is
// stored. The caller persists first; this endpoint only sends.
type NotifyHandler struct {
	dispatcher *notify.Dispatcher
	log        *zap.Logger
}

func NewNotifyHandler(dispatcher *notify.Dispatcher, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		dispatcher: dispatcher,
		log:        log.With(zap.String("handler", "notify")),
	}
}

// SendAppointmentEmails handles POST /api/notify/appointment
func (h *NotifyHandler) SendAppointmentEmails(w http.ResponseWriter, r *http.Request) {
	var req request.AppointmentEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	appt := &entity.Appointment{
		BookingReference: req.BookingReference,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		TreatmentType:    req.TreatmentType,
		PreferredDate:    req.PreferredDate,
		PreferredTime:    req.PreferredTime,
		SpecialRequests:  req.SpecialRequests,
	}

	outcome := h.dispatcher.DispatchBookingConfirmed(r.Context(), appt)
	if !outcome.AnySent() {
		h.log.Warn("No appointment email could be sent",
			zap.String("booking_reference", req.BookingReference),
		)
		utils.ResponseBadGateway(w, "Failed to send appointment emails")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{
		"customer_sent": outcome.CustomerSent,
		"operator_sent": outcome.OperatorSent,
	})
}
