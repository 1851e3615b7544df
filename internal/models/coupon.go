package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CouponKind string

const (
	CouponPercentage   CouponKind = "percentage"
	CouponFixed        CouponKind = "fixed"
	CouponFreeShipping CouponKind = "free_shipping"
)

func (k CouponKind) Valid() bool {
	switch k {
	case CouponPercentage, CouponFixed, CouponFreeShipping:
		return true
	}

	return false
}

type Coupon struct {
	Code        string          `json:"code"`
	Kind        CouponKind      `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	MinSubtotal decimal.Decimal `json:"min_subtotal"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountFor is the amount taken off the subtotal. Free shipping discounts nothing here.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}

	switch c.Kind {
	case CouponPercentage:
		return subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponFixed:
		return decimal.Min(c.Value, subtotal)
	default:
		return decimal.Zero
	}
}

func (c *Coupon) FreeShipping() bool {
	return c != nil && c.Kind == CouponFreeShipping
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=40"`
}
