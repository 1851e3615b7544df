package models

import (
	"github.com/shopspring/decimal"
)

type ShippingOption struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	EtaDescription string          `json:"eta_description"`
	EtaDays        int             `json:"eta_days"`
}

// ShippingQuote is only valid for the zip and cart contents encoded in Key.
type ShippingQuote struct {
	Key        string           `json:"key"`
	Zip        string           `json:"zip"`
	Options    []ShippingOption `json:"options"`
	SelectedID string           `json:"selected_id,omitempty"`
}

func QuoteKey(zip string, cart *Cart) string {
	return zip + "|" + cart.Signature()
}

func (q *ShippingQuote) Selected() (ShippingOption, bool) {
	if q == nil {
		return ShippingOption{}, false
	}

	for _, o := range q.Options {
		if o.ID == q.SelectedID {
			return o, true
		}
	}

	return ShippingOption{}, false
}

// DefaultOptionID picks the middle option when there are at least two, else the first.
func DefaultOptionID(options []ShippingOption) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0].ID
	default:
		return options[len(options)/2].ID
	}
}

type SelectShippingRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}
