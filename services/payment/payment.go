package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tourvisto/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// usdToINRRate is a fixed approximate conversion rate applied when a USD
// denominated trip price is charged in INR.
const usdToINRRate = 83.50

// CheckoutService creates a hosted checkout session for a booking.
type CheckoutService interface {
	CreateSession(ctx context.Context, booking *models.Booking, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

// StripeCheckoutService implements CheckoutService against the Stripe
// checkout API. The API key is set process-wide at startup.
type StripeCheckoutService struct {
	BaseURL string
	Logger  *zap.Logger
}

// NewStripeCheckoutService returns a checkout adapter redirecting back to
// baseURL after payment.
func NewStripeCheckoutService(baseURL string, logger *zap.Logger) *StripeCheckoutService {
	return &StripeCheckoutService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Logger:  logger,
	}
}

func convertUSDToINR(usdAmount float64) float64 {
	return math.Round(usdAmount * usdToINRRate)
}

// MinorUnits converts a major-unit amount to the provider's minor currency
// units, applying the INR conversion and the provider's minimum charge.
func MinorUnits(amount float64, currency string) int64 {
	final := amount
	if strings.EqualFold(currency, "inr") {
		final = convertUSDToINR(amount)
	}
	units := int64(math.Round(final * 100))
	if units < 100 {
		units = 100
	}
	return units
}

// CreateSession creates the checkout session and returns its redirect URL.
func (s *StripeCheckoutService) CreateSession(ctx context.Context, booking *models.Booking, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	currency := req.Currency
	if currency == "" {
		currency = "inr"
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Trip booking for %d member(s)", booking.NumberOfMembers)
	}

	// The provider substitutes the session reference into the success URL
	// and redirects back with it after checkout.
	successURL := fmt.Sprintf("%s/payment-success?bookingId=%s&session_id={CHECKOUT_SESSION_ID}", s.BaseURL, booking.ID)
	cancelURL := fmt.Sprintf("%s/payment/%s", s.BaseURL, booking.ID)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Trip to %s", booking.Destination)),
						Description: stripe.String(description),
					},
					UnitAmount: stripe.Int64(MinorUnits(req.Amount, currency)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.AddMetadata("bookingId", booking.ID)
	params.AddMetadata("travelerName", booking.TravelerName)
	params.AddMetadata("email", booking.Email)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, &models.PaymentInitError{Message: "failed to create checkout session", Err: err}
	}
	if sess.URL == "" {
		return nil, &models.PaymentInitError{Message: "checkout session returned no redirect URL"}
	}

	s.Logger.Info("Stripe session created",
		zap.String("bookingId", booking.ID),
		zap.String("sessionId", sess.ID),
	)
	return &models.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}
