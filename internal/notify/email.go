package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailSender is the outbound transport capability. Implementations
// can be swapped (SendGrid, SMTP, stub) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents one email to be sent
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// SendGridSender sends emails via the SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       *zap.Logger
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender returns nil when no API key is configured;
// callers fall back to the stub sender.
func NewSendGridSender(cfg SendGridConfig, log *zap.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "Niramaya Wellness"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log.With(zap.String("sender", "sendgrid")),
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Subject, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.log.Error("SendGrid send failed",
			zap.Error(err),
			zap.String("to", msg.To),
		)
		return fmt.Errorf("sendgrid send: %w", err)
	}

	if response.StatusCode >= 400 {
		s.log.Error("SendGrid returned error status",
			zap.Int("status", response.StatusCode),
			zap.String("to", msg.To),
		)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.log.Info("Email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("status", response.StatusCode),
	)
	return nil
}

// StubSender logs instead of sending, used when email is disabled
// and in tests.
type StubSender struct {
	log *zap.Logger
}

func NewStubSender(log *zap.Logger) *StubSender {
	return &StubSender{log: log.With(zap.String("sender", "stub"))}
}

func (s *StubSender) Send(_ context.Context, msg EmailMessage) error {
	s.log.Info("Stub email sender: would send",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
