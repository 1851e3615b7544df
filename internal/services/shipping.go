package service

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type ShippingQuoter interface {
	Quote(zip string, cart *models.Cart) (*models.ShippingQuote, error)
}

type tier struct {
	id      string
	name    string
	floor   decimal.Decimal
	rate    decimal.Decimal
	eta     string
	etaDays int
}

type shippingQuoter struct {
	tiers []tier
}

func NewShippingQuoter(cfg config.Shipping) ShippingQuoter {

	tiers := make([]tier, 0, len(cfg.Tiers))

	for i, t := range cfg.Tiers {
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("opcao-%d", i+1)
		}

		tiers = append(tiers, tier{
			id:      id,
			name:    t.Name,
			floor:   decimal.NewFromFloat(t.FloorPrice),
			rate:    decimal.NewFromFloat(t.Rate),
			eta:     t.EtaDescription,
			etaDays: t.EtaDays,
		})
	}

	return &shippingQuoter{tiers: tiers}
}

// NormalizeZip strips everything but digits. A Brazilian CEP has exactly eight.
func NormalizeZip(zip string) (string, error) {

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, zip)

	if len(digits) != 8 {
		return "", errors.ValidationError("CEP inválido. Informe os 8 dígitos.")
	}

	return digits, nil
}

// Quote prices every tier for the cart subtotal, cheapest first, with the default option preselected.
func (s *shippingQuoter) Quote(zip string, cart *models.Cart) (*models.ShippingQuote, error) {

	normalized, err := NormalizeZip(zip)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, errors.ValidationError("Adicione itens ao carrinho para calcular o frete.")
	}

	subtotal := cart.Totals().Subtotal

	options := make([]models.ShippingOption, 0, len(s.tiers))
	for _, t := range s.tiers {
		options = append(options, models.ShippingOption{
			ID:             t.id,
			Name:           t.name,
			Price:          decimal.Max(t.floor, subtotal.Mul(t.rate)).Round(2),
			EtaDescription: t.eta,
			EtaDays:        t.etaDays,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
		if a.EtaDays != b.EtaDays {
			return a.EtaDays < b.EtaDays
		}
		return a.Name < b.Name
	})

	return &models.ShippingQuote{
		Key:        models.QuoteKey(normalized, cart),
		Zip:        normalized,
		Options:    options,
		SelectedID: models.DefaultOptionID(options),
	}, nil
}
