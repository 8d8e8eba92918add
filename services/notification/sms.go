package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourvisto/models"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Placeholder credentials shipped in .env.example. When they are still in
// place, sends short-circuit to a synthetic success so development works
// without a Twilio account.
const (
	placeholderAccountSID = "your-twilio-account-sid"
	placeholderAuthToken  = "your-twilio-auth-token"
	placeholderFromNumber = "your-twilio-phone-number"
)

// Twilio error codes mapped to specific messages.
const (
	twilioCodeUnverified = 21608
	twilioCodeBadNumber  = 21614
	twilioCodeAuthFailed = 20003
)

// SMSConfig holds the SMS gateway settings.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	Region     RegionPolicy
}

// ValidateSMSConfig checks that the gateway credentials are present and well
// formed. It returns a ValidationError before any network call.
func ValidateSMSConfig(cfg SMSConfig) error {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return &models.ValidationError{Message: "missing Twilio configuration: set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER"}
	}
	if !strings.HasPrefix(cfg.AccountSID, "AC") || len(cfg.AccountSID) != 34 {
		return &models.ValidationError{Message: "invalid Twilio Account SID: must start with \"AC\" and be 34 characters long"}
	}
	if len(cfg.AuthToken) != 32 {
		return &models.ValidationError{Message: fmt.Sprintf("invalid Twilio Auth Token: must be 32 characters long, got %d", len(cfg.AuthToken))}
	}
	if !strings.HasPrefix(cfg.FromNumber, "+") {
		return &models.ValidationError{Message: "invalid Twilio phone number: must start with \"+\""}
	}
	return nil
}

// SMSSender sends text messages through the Twilio gateway.
type SMSSender struct {
	cfg    SMSConfig
	client *twilio.RestClient
	logger *zap.Logger
}

// NewSMSSender builds a sender from explicit configuration. With placeholder
// dev credentials no client is created and sends run in development mode.
func NewSMSSender(cfg SMSConfig, logger *zap.Logger) *SMSSender {
	if cfg.Region == (RegionPolicy{}) {
		cfg.Region = IndiaRegion
	}
	s := &SMSSender{cfg: cfg, logger: logger}
	if !s.devMode() && ValidateSMSConfig(cfg) == nil {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

func (s *SMSSender) devMode() bool {
	return s.cfg.AccountSID == placeholderAccountSID ||
		s.cfg.AuthToken == placeholderAuthToken ||
		s.cfg.FromNumber == placeholderFromNumber
}

// Send normalizes the destination number and delivers the message.
func (s *SMSSender) Send(ctx context.Context, to, message string) (*models.SMSResult, error) {
	cleaned := NormalizePhone(to, s.cfg.Region)

	if s.devMode() {
		s.logger.Info("SMS development mode, message not sent",
			zap.String("to", cleaned),
			zap.Int("length", len(message)),
		)
		return &models.SMSResult{
			Success:   true,
			MessageID: fmt.Sprintf("dev-mode-%d", time.Now().UnixMilli()),
			Status:    "development",
			To:        cleaned,
		}, nil
	}

	if err := ValidateSMSConfig(s.cfg); err != nil {
		return nil, err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetBody(message)
	params.SetFrom(s.cfg.FromNumber)
	params.SetTo(cleaned)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return nil, mapTwilioError(err)
	}

	result := &models.SMSResult{Success: true, To: cleaned}
	if resp.Sid != nil {
		result.MessageID = *resp.Sid
	}
	if resp.Status != nil {
		result.Status = *resp.Status
	}

	s.logger.Info("SMS sent successfully",
		zap.String("to", cleaned),
		zap.String("sid", result.MessageID),
		zap.String("status", result.Status),
	)
	return result, nil
}

func mapTwilioError(err error) error {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		switch restErr.Code {
		case twilioCodeUnverified:
			return &models.ProviderError{Provider: "sms", Code: "21608",
				Message: "the phone number is not verified; trial accounts must verify it in the Twilio console", Err: err}
		case twilioCodeBadNumber:
			return &models.ProviderError{Provider: "sms", Code: "21614",
				Message: "invalid phone number format, use E.164 (e.g. +919876543210)", Err: err}
		case twilioCodeAuthFailed:
			return &models.ProviderError{Provider: "sms", Code: "20003",
				Message: "authentication failed, check your Twilio credentials", Err: err}
		}
	}
	return &models.ProviderError{Provider: "sms", Message: "failed to send SMS", Err: err}
}
