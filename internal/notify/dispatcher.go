package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"go.uber.org/zap"
)

// Outcome reports what the dispatcher managed to deliver. It is never
// an error for the booking itself: the record is already persisted by
// the time the dispatcher runs.
type Outcome struct {
	CustomerSent bool
	OperatorSent bool
}

// AnySent reports whether at least one send attempt succeeded
func (o Outcome) AnySent() bool {
	return o.CustomerSent || o.OperatorSent
}

// Dispatcher composes and sends the two booking emails: the
// customer-facing confirmation and the operator-facing action item.
type Dispatcher struct {
	sender EmailSender
	cfg    utils.EmailConfig
	log    *zap.Logger
}

func NewDispatcher(sender EmailSender, cfg utils.EmailConfig, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		cfg:    cfg,
		log:    log.With(zap.String("service", "notify")),
	}
}

// DispatchBookingConfirmed sends both messages best-effort. Failures
// are logged as warnings and reflected in the outcome, never
// propagated as a hard failure.
func (d *Dispatcher) DispatchBookingConfirmed(ctx context.Context, appt *entity.Appointment) Outcome {
	data := emailData{
		FullName:         appt.FullName,
		Email:            appt.Email,
		Phone:            appt.Phone,
		TreatmentType:    appt.TreatmentType,
		PreferredDate:    appt.PreferredDateLong(),
		PreferredTime:    appt.PreferredTime,
		SpecialRequests:  appt.SpecialRequests,
		BookingReference: appt.BookingReference,
		ContactPhone:     d.cfg.ContactPhone,
		ContactEmail:     d.cfg.ContactEmail,
	}

	var outcome Outcome

	customerHTML, err := renderTemplate(customerTemplate, data)
	if err != nil {
		d.log.Warn("Failed to render customer email", zap.Error(err))
	} else {
		err = d.sender.Send(ctx, EmailMessage{
			To:      appt.Email,
			ToName:  appt.FullName,
			Subject: "🌿 Appointment Confirmation - Niramaya Wellness",
			HTML:    customerHTML,
		})
		if err != nil {
			d.log.Warn("Customer confirmation email failed",
				zap.Error(err),
				zap.String("booking_reference", appt.BookingReference),
				zap.String("to", appt.Email),
			)
		} else {
			outcome.CustomerSent = true
		}
	}

	if d.cfg.OperationsEmail == "" {
		d.log.Warn("Operations mailbox not configured, skipping operator alert",
			zap.String("booking_reference", appt.BookingReference),
		)
		return outcome
	}

	operatorHTML, err := renderTemplate(operatorTemplate, data)
	if err != nil {
		d.log.Warn("Failed to render operator email", zap.Error(err))
		return outcome
	}

	err = d.sender.Send(ctx, EmailMessage{
		To:      d.cfg.OperationsEmail,
		ToName:  "Niramaya Bookings",
		Subject: fmt.Sprintf("🔔 New Appointment Booking - %s", appt.BookingReference),
		HTML:    operatorHTML,
	})
	if err != nil {
		d.log.Warn("Operator alert email failed",
			zap.Error(err),
			zap.String("booking_reference", appt.BookingReference),
			zap.String("to", d.cfg.OperationsEmail),
		)
	} else {
		outcome.OperatorSent = true
	}

	return outcome
}

func renderTemplate(tpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
