package stripe

import (
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

type PaymentIntent = stripe.PaymentIntent

// Client is the slice of Stripe the storefront needs: open an intent for a card payment and trust
// the webhook that reports how it ended.
type Client interface {
	CreatePaymentIntent(amount int64, currency string, description string, metadata map[string]string) (*stripe.PaymentIntent, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// CreatePaymentIntent opens a card payment. amount is in the currency's smallest unit (centavos for BRL).
func (s *stripeClient) CreatePaymentIntent(amount int64, currency string, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		Description:        stripe.String(description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
