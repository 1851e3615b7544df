package models

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDENTE"
	PaymentStatusApproved PaymentStatus = "APROVADO"
	PaymentStatusRefused  PaymentStatus = "RECUSADO"
	PaymentStatusRefunded PaymentStatus = "ESTORNADO"
)

type Payment struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"order_id"`
	Method   string          `json:"method"`
	Amount   decimal.Decimal `json:"amount"`
	Status   PaymentStatus   `json:"status"`
	Provider string          `json:"provider,omitempty"`
	// ProviderRef is the Stripe PaymentIntent id when card payments go through Stripe.
	ProviderRef string `json:"provider_ref,omitempty"`
}

type CreatePaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=card pix boleto"`
}

type PaymentResponse struct {
	Payment      *Payment `json:"payment"`
	ClientSecret string   `json:"client_secret,omitempty"`
	Message      string   `json:"message,omitempty"`
}
