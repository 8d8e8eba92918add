package notification

import (
	"context"
	"fmt"
	"strings"

	"tourvisto/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const defaultEmailFrom = `"Tourvisto" <noreply@tourvisto.com>`

// EmailConfig holds the SMTP relay settings.
type EmailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// ValidateEmailConfig reports the required settings that are missing. The
// error is a ValidationError so callers fail fast before any connection is
// attempted.
func ValidateEmailConfig(cfg EmailConfig) error {
	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "EMAIL_HOST")
	}
	if cfg.User == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if cfg.Pass == "" {
		missing = append(missing, "EMAIL_PASS")
	}
	if len(missing) > 0 {
		return &models.ValidationError{Message: "missing email configuration: " + strings.Join(missing, ", ")}
	}
	return nil
}

// EmailSender sends mail through an SMTP relay. The dialer is constructed
// once and reused for the process lifetime.
type EmailSender struct {
	cfg    EmailConfig
	dialer *gomail.Dialer
	logger *zap.Logger
}

// NewEmailSender builds a sender from explicit configuration. Construction
// never dials; validation also runs on every Send so a misconfigured sender
// fails fast instead of at connect time.
func NewEmailSender(cfg EmailConfig, logger *zap.Logger) *EmailSender {
	return &EmailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		logger: logger,
	}
}

// Send delivers a multi-part message and returns the normalized result.
func (s *EmailSender) Send(ctx context.Context, to, subject, html, text string) (*models.EmailResult, error) {
	if err := ValidateEmailConfig(s.cfg); err != nil {
		return nil, err
	}

	from := s.cfg.From
	if from == "" {
		from = defaultEmailFrom
	}
	messageID := fmt.Sprintf("<%s@tourvisto>", uuid.New().String())

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	if text != "" {
		m.SetBody("text/plain", text)
		if html != "" {
			m.AddAlternative("text/html", html)
		}
	} else {
		m.SetBody("text/html", html)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return nil, &models.ProviderError{Provider: "email", Message: "failed to send email", Err: err}
	}

	s.logger.Info("Email sent successfully",
		zap.String("to", to),
		zap.String("messageId", messageID),
	)
	return &models.EmailResult{
		Success:   true,
		MessageID: messageID,
		Recipient: to,
	}, nil
}
