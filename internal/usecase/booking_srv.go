package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/catalog"
	"github.com/adityaraj161616/Nirmalaya/internal/data/draft"
	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/internal/data/repository"
	"github.com/adityaraj161616/Nirmalaya/internal/dto/request"
	"github.com/adityaraj161616/Nirmalaya/internal/dto/response"
	"github.com/adityaraj161616/Nirmalaya/internal/notify"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier dispatches the booking emails after a successful insert
type Notifier interface {
	DispatchBookingConfirmed(ctx context.Context, appt *entity.Appointment) notify.Outcome
}

type BookingService interface {
	// Draft state
	Draft(ctx context.Context, draftID uuid.UUID) (*response.DraftResponse, error)
	DiscardDraft(ctx context.Context, draftID uuid.UUID) error

	// Wizard steps
	SavePatientInfo(ctx context.Context, draftID uuid.UUID, req *request.PatientInfoRequest) (*response.DraftResponse, error)
	ApplySelection(ctx context.Context, draftID uuid.UUID, req *request.SelectionRequest) (*response.DraftResponse, error)
	SaveTreatmentSelection(ctx context.Context, draftID uuid.UUID, req *request.TreatmentSelectionRequest) (*response.DraftResponse, error)

	// Review & submit
	Review(ctx context.Context, draftID uuid.UUID) (*response.ReviewResponse, error)
	Confirm(ctx context.Context, draftID uuid.UUID) (*response.AppointmentResponse, error)

	// Finalized records
	Appointment(ctx context.Context, reference string) (*entity.Appointment, error)
}

type bookingService struct {
	repo     *repository.Repository
	drafts   draft.Store
	notifier Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, drafts draft.Store, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		drafts:   drafts,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Draft(ctx context.Context, draftID uuid.UUID) (*response.DraftResponse, error) {
	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if d == nil {
		return nil, ErrStepIncomplete
	}
	return draftToResponse(d), nil
}

func (s *bookingService) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	if err := s.drafts.Clear(ctx, draftID); err != nil {
		return fmt.Errorf("discard draft: %w", err)
	}
	s.log.Info("Draft discarded", zap.String("draft_id", draftID.String()))
	return nil
}

func (s *bookingService) SavePatientInfo(ctx context.Context, draftID uuid.UUID, req *request.PatientInfoRequest) (*response.DraftResponse, error) {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if _, ok := errs["FirstName"]; !ok && firstName == "" {
		errs["FirstName"] = "First name is required"
	}
	if _, ok := errs["LastName"]; !ok && lastName == "" {
		errs["LastName"] = "Last name is required"
	}

	age, ageErr := strconv.Atoi(strings.TrimSpace(req.Age))
	if _, ok := errs["Age"]; !ok && (ageErr != nil || age < 1 || age > 120) {
		errs["Age"] = "Please enter a valid age"
	}

	if len(errs) > 0 {
		s.log.Warn("Patient info validation failed",
			zap.String("draft_id", draftID.String()),
			zap.Any("errors", errs),
		)
		return nil, &ValidationError{Fields: errs}
	}

	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if d == nil {
		d = &entity.BookingDraft{}
	}

	d.PatientInfo = &entity.PatientInfo{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Age:       age,
		Gender:    entity.Gender(req.Gender),
	}
	if d.CurrentStep < 1 {
		d.CurrentStep = 1
	}

	if err := s.drafts.Save(ctx, draftID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.Info("Patient info saved",
		zap.String("draft_id", draftID.String()),
		zap.String("email", d.PatientInfo.Email),
	)

	return draftToResponse(d), nil
}

func (s *bookingService) ApplySelection(ctx context.Context, draftID uuid.UUID, req *request.SelectionRequest) (*response.DraftResponse, error) {
	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !d.Step1Complete() {
		return nil, ErrStepIncomplete
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	sel := entity.TreatmentSelection{}
	if d.TreatmentInfo != nil {
		sel = *d.TreatmentInfo
	}

	errs := make(map[string]string)

	// apply in chain order so each later field is judged against the
	// already-updated earlier ones
	if req.Treatment != nil {
		if catalog.TreatmentByID(*req.Treatment) == nil {
			errs["Treatment"] = "Please select a treatment"
		} else {
			sel.ApplyTreatment(*req.Treatment)
		}
	}

	if req.Doctor != nil && len(errs) == 0 {
		doctor := catalog.DoctorByID(*req.Doctor)
		switch {
		case sel.TreatmentID == "":
			errs["Doctor"] = "Please select a treatment first"
		case doctor == nil:
			errs["Doctor"] = "Please select a doctor"
		case !doctor.Treats(sel.TreatmentID):
			errs["Doctor"] = "Selected doctor is not available for this treatment"
		default:
			sel.ApplyDoctor(*req.Doctor)
		}
	}

	if req.Date != nil && len(errs) == 0 {
		if msg := validateDate(*req.Date); msg != "" {
			errs["Date"] = msg
		} else {
			sel.ApplyDate(*req.Date)
		}
	}

	if req.Time != nil && len(errs) == 0 {
		if !catalog.ValidSlot(*req.Time) {
			errs["Time"] = "Please select a valid time slot"
		} else {
			sel.ApplyTime(*req.Time)
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	d.TreatmentInfo = &sel

	if err := s.drafts.Save(ctx, draftID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return draftToResponse(d), nil
}

func (s *bookingService) SaveTreatmentSelection(ctx context.Context, draftID uuid.UUID, req *request.TreatmentSelectionRequest) (*response.DraftResponse, error) {
	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !d.Step1Complete() {
		return nil, ErrStepIncomplete
	}

	errs := validateSelection(req)
	if len(errs) > 0 {
		s.log.Warn("Treatment selection validation failed",
			zap.String("draft_id", draftID.String()),
			zap.Any("errors", errs),
		)
		return nil, &ValidationError{Fields: errs}
	}

	d.TreatmentInfo = &entity.TreatmentSelection{
		TreatmentID: req.Treatment,
		DoctorID:    req.Doctor,
		Date:        req.Date,
		Time:        req.Time,
	}
	if d.CurrentStep < 2 {
		d.CurrentStep = 2
	}

	if err := s.drafts.Save(ctx, draftID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.Info("Treatment selection saved",
		zap.String("draft_id", draftID.String()),
		zap.String("treatment", req.Treatment),
		zap.String("doctor", req.Doctor),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)

	return draftToResponse(d), nil
}

func (s *bookingService) Review(ctx context.Context, draftID uuid.UUID) (*response.ReviewResponse, error) {
	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !d.Step2Complete() {
		return nil, ErrStepIncomplete
	}

	treatment := catalog.TreatmentByID(d.TreatmentInfo.TreatmentID)
	doctor := catalog.DoctorByID(d.TreatmentInfo.DoctorID)
	if treatment == nil || doctor == nil {
		return nil, fmt.Errorf("draft %s references unknown catalog entry", draftID.String())
	}

	return &response.ReviewResponse{
		Patient:       *response.PatientInfoToResponse(d.PatientInfo),
		TreatmentID:   treatment.ID,
		TreatmentName: treatment.Name,
		Duration:      treatment.Duration,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		Date:          d.TreatmentInfo.Date,
		Time:          d.TreatmentInfo.Time,
		Price:         treatment.Price,
		PriceLabel:    treatment.PriceLabel(),
	}, nil
}

func (s *bookingService) Confirm(ctx context.Context, draftID uuid.UUID) (*response.AppointmentResponse, error) {
	d, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !d.Step2Complete() {
		return nil, ErrStepIncomplete
	}

	treatment := catalog.TreatmentByID(d.TreatmentInfo.TreatmentID)
	doctor := catalog.DoctorByID(d.TreatmentInfo.DoctorID)
	if treatment == nil || doctor == nil {
		return nil, fmt.Errorf("draft %s references unknown catalog entry", draftID.String())
	}

	p := d.PatientInfo
	appt := &entity.Appointment{
		DraftID:       draftID,
		FullName:      p.FirstName + " " + p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		TreatmentType: treatment.Name,
		PreferredDate: d.TreatmentInfo.Date,
		PreferredTime: d.TreatmentInfo.Time,
		SpecialRequests: fmt.Sprintf("Age: %d, Gender: %s, Preferred Doctor: %s",
			p.Age, p.Gender, doctor.Name),
	}

	// insert must succeed before anything else happens; on failure the
	// draft stays intact so the user can retry from step 3
	stored, err := s.repo.Appointment.Create(ctx, appt)
	if err != nil {
		s.log.Error("Failed to submit booking",
			zap.Error(err),
			zap.String("draft_id", draftID.String()),
		)
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	// best-effort notification: the appointment is already durable,
	// a failed email never fails the booking
	outcome := s.notifier.DispatchBookingConfirmed(ctx, stored)
	if !outcome.AnySent() {
		s.log.Warn("Booking notifications not delivered",
			zap.String("booking_reference", stored.BookingReference),
		)
	}

	if err := s.drafts.Clear(ctx, draftID); err != nil {
		s.log.Warn("Failed to clear draft after booking",
			zap.Error(err),
			zap.String("draft_id", draftID.String()),
		)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_reference", stored.BookingReference),
		zap.String("treatment_type", stored.TreatmentType),
		zap.Bool("customer_email_sent", outcome.CustomerSent),
		zap.Bool("operator_email_sent", outcome.OperatorSent),
	)

	return response.AppointmentToResponse(stored), nil
}

func (s *bookingService) Appointment(ctx context.Context, reference string) (*entity.Appointment, error) {
	appt, err := s.repo.Appointment.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

// required-field messages matching what the booking form always showed
var selectionRequiredMessages = map[string]string{
	"Treatment": "Please select a treatment",
	"Doctor":    "Please select a doctor",
	"Date":      "Please select a date",
	"Time":      "Please select a time",
}

func validateSelection(req *request.TreatmentSelectionRequest) map[string]string {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}
	// swap the generic required message for the field-specific wording
	missing := map[string]bool{
		"Treatment": req.Treatment == "",
		"Doctor":    req.Doctor == "",
		"Date":      req.Date == "",
		"Time":      req.Time == "",
	}
	for field, msg := range selectionRequiredMessages {
		if missing[field] {
			errs[field] = msg
		}
	}

	if _, ok := errs["Treatment"]; !ok {
		if catalog.TreatmentByID(req.Treatment) == nil {
			errs["Treatment"] = "Please select a treatment"
		}
	}

	if _, ok := errs["Doctor"]; !ok {
		doctor := catalog.DoctorByID(req.Doctor)
		switch {
		case doctor == nil:
			errs["Doctor"] = "Please select a doctor"
		case catalog.TreatmentByID(req.Treatment) != nil && !doctor.Treats(req.Treatment):
			errs["Doctor"] = "Selected doctor is not available for this treatment"
		}
	}

	if _, ok := errs["Date"]; !ok {
		if msg := validateDate(req.Date); msg != "" {
			errs["Date"] = msg
		}
	}

	if _, ok := errs["Time"]; !ok {
		if !catalog.ValidSlot(req.Time) {
			errs["Time"] = "Please select a valid time slot"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateDate returns an error message unless the date parses and is
// strictly after today; the minimum bookable date is tomorrow.
func validateDate(date string) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "Invalid date format"
	}
	if d.Before(minBookableDate(time.Now())) {
		return "Please select a date from tomorrow onwards"
	}
	return ""
}

func minBookableDate(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

func draftToResponse(d *entity.BookingDraft) *response.DraftResponse {
	next := "/book/step-1"
	switch {
	case d.Step2Complete():
		next = "/book/step-3"
	case d.Step1Complete():
		next = "/book/step-2"
	}

	return &response.DraftResponse{
		CurrentStep:   d.CurrentStep,
		PatientInfo:   response.PatientInfoToResponse(d.PatientInfo),
		TreatmentInfo: response.TreatmentSelectionToResponse(d.TreatmentInfo),
		Next:          next,
	}
}
