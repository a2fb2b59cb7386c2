package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/dto/request"
	"github.com/adityaraj161616/Nirmalaya/internal/usecase"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftCookieName identifies the browser's in-progress booking. The
// cookie is minted on the first step-1 submit and cleared together
// with the draft.
const DraftCookieName = "niramaya_draft"

const stepOneRedirect = "/book/step-1"

type BookingHandler struct {
	service  usecase.BookingService
	draftTTL time.Duration
	log      *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, config *utils.Config, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		draftTTL: time.Duration(config.Booking.DraftTTLHours) * time.Hour,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// GetDraft handles GET /api/booking/draft
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseStepGuard(w, "No booking in progress", stepOneRedirect)
		return
	}

	draft, err := h.service.Draft(r.Context(), draftID)
	if err != nil {
		h.handleServiceError(w, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// DiscardDraft handles DELETE /api/booking/draft
func (h *BookingHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseSuccess(w, "success", nil)
		return
	}

	if err := h.service.DiscardDraft(r.Context(), draftID); err != nil {
		h.handleServiceError(w, err, "discard draft")
		return
	}

	h.clearDraftCookie(w)
	utils.ResponseSuccess(w, "success", nil)
}

// SavePatientInfo handles POST /api/booking/step-1
func (h *BookingHandler) SavePatientInfo(w http.ResponseWriter, r *http.Request) {
	var req request.PatientInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// step 1 starts a fresh draft when no cookie is present
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		draftID = uuid.New()
	}

	draft, err := h.service.SavePatientInfo(r.Context(), draftID, &req)
	if err != nil {
		h.handleServiceError(w, err, "save patient info")
		return
	}

	if !ok {
		h.setDraftCookie(w, draftID)
	}
	utils.ResponseSuccess(w, "success", draft)
}

// ApplySelection handles PATCH /api/booking/step-2: an incremental
// treatment/doctor/date/time pick with the cascading reset rule.
func (h *BookingHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseStepGuard(w, "Please complete step 1 first", stepOneRedirect)
		return
	}

	var req request.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.ApplySelection(r.Context(), draftID, &req)
	if err != nil {
		h.handleServiceError(w, err, "apply selection")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SaveTreatmentSelection handles POST /api/booking/step-2
func (h *BookingHandler) SaveTreatmentSelection(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseStepGuard(w, "Please complete step 1 first", stepOneRedirect)
		return
	}

	var req request.TreatmentSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SaveTreatmentSelection(r.Context(), draftID, &req)
	if err != nil {
		h.handleServiceError(w, err, "save treatment selection")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Review handles GET /api/booking/review
func (h *BookingHandler) Review(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseStepGuard(w, "Please complete the previous steps first", stepOneRedirect)
		return
	}

	review, err := h.service.Review(r.Context(), draftID)
	if err != nil {
		h.handleServiceError(w, err, "review booking")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Confirm handles POST /api/booking/confirm
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDFromRequest(r)
	if !ok {
		utils.ResponseStepGuard(w, "Please complete the previous steps first", stepOneRedirect)
		return
	}

	appointment, err := h.service.Confirm(r.Context(), draftID)
	if err != nil {
		h.handleServiceError(w, err, "confirm booking")
		return
	}

	h.clearDraftCookie(w)
	utils.ResponseCreated(w, "success", appointment)
}

func draftIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	c, err := r.Cookie(DraftCookieName)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) setDraftCookie(w http.ResponseWriter, draftID uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     DraftCookieName,
		Value:    draftID.String(),
		Path:     "/",
		MaxAge:   int(h.draftTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *BookingHandler) clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     DraftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// handleServiceError maps service errors onto HTTP responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		h.log.Warn(operation+" validation failed",
			zap.Any("errors", vErr.Fields),
			zap.String("operation", operation),
		)
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	case errors.Is(err, usecase.ErrStepIncomplete):
		h.log.Warn(operation+" blocked by step guard",
			zap.String("operation", operation),
		)
		utils.ResponseStepGuard(w, "Please complete the previous steps first", stepOneRedirect)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
		if operation == "confirm booking" {
			// submission failure is retryable; the draft is untouched
			utils.ResponseInternalError(w, "Booking failed. Please try again.")
			return
		}
		utils.ResponseInternalError(w, "Internal server error")
	}
}
