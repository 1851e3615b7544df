package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutStep string

const (
	StepCart              CheckoutStep = "cart"
	StepContactAndAddress CheckoutStep = "contact_and_address"
	StepPaymentHandoff    CheckoutStep = "payment_handoff"
)

type Contact struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}

// CheckoutState is the transient wizard state kept in the session.
type CheckoutState struct {
	Step              CheckoutStep   `json:"step"`
	Contact           Contact        `json:"contact"`
	SelectedAddressID string         `json:"selected_address_id,omitempty"`
	AddressZip        string         `json:"address_zip,omitempty"`
	Shipping          *ShippingQuote `json:"shipping,omitempty"`
	CouponCode        string         `json:"coupon_code,omitempty"`
	// AttemptID is the idempotency key for order creation within this checkout.
	AttemptID string       `json:"attempt_id,omitempty"`
	Order     *PlacedOrder `json:"order,omitempty"`
	Payment   *Payment     `json:"payment,omitempty"`
}

func (s *CheckoutState) Reset() {
	contact := s.Contact
	*s = CheckoutState{Step: StepCart, Contact: contact}
}

type PlacedOrder struct {
	OrderID  string          `json:"order_id"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

type CheckoutSummary struct {
	TotalItems   int             `json:"total_items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Shipping     decimal.Decimal `json:"shipping"`
	Total        decimal.Decimal `json:"total"`
	CouponCode   string          `json:"coupon_code,omitempty"`
	FreeShipping bool            `json:"free_shipping,omitempty"`
}

// ComputeSummary derives the displayed totals. The order total returned by the backend supersedes Total.
func ComputeSummary(cart *Cart, shipping *ShippingOption, coupon *Coupon) CheckoutSummary {
	totals := cart.Totals()

	summary := CheckoutSummary{
		TotalItems: totals.TotalItems,
		Subtotal:   totals.Subtotal,
		Discount:   coupon.DiscountFor(totals.Subtotal),
		Shipping:   decimal.Zero,
	}

	if coupon != nil {
		summary.CouponCode = coupon.Code
	}

	if shipping != nil {
		summary.Shipping = shipping.Price
	}

	if coupon.FreeShipping() {
		summary.Shipping = decimal.Zero
		summary.FreeShipping = true
	}

	summary.Total = decimal.Max(summary.Subtotal.Sub(summary.Discount), decimal.Zero).Add(summary.Shipping)

	return summary
}

// CheckoutView is what the client renders for the current wizard step.
type CheckoutView struct {
	Step              CheckoutStep    `json:"step"`
	Cart              *CartResponse   `json:"cart"`
	Contact           Contact         `json:"contact"`
	Addresses         []Address       `json:"addresses,omitempty"`
	SelectedAddressID string          `json:"selected_address_id,omitempty"`
	Shipping          *ShippingQuote  `json:"shipping,omitempty"`
	Summary           CheckoutSummary `json:"summary"`
	Stock             *StockReport    `json:"stock,omitempty"`
	Order             *PlacedOrder    `json:"order,omitempty"`
	Payment           *Payment        `json:"payment,omitempty"`
	Notice            string          `json:"notice,omitempty"`
}

type PlaceOrderRequest struct {
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type QuoteShippingRequest struct {
	Zip string `json:"zip,omitempty"`
}

type SelectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}
