package service_test

import (
	"testing"

	"github.com/discool/storefront/internal/config"
	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingQuoter_Quote(t *testing.T) {
	quoter := service.NewShippingQuoter(config.Shipping{Tiers: config.DefaultShippingTiers()})

	t.Run("Success - Floor Prices On Small Cart", func(t *testing.T) {
		// Arrange
		cart := cartWith(t, line("1", "Abbey Road", 100, 1))

		// Act
		quote, err := quoter.Quote("01310-100", &cart)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "01310100", quote.Zip)
		require.Len(t, quote.Options, 3)
		assert.Equal(t, "economico", quote.Options[0].ID)
		assert.True(t, decimal.NewFromInt(15).Equal(quote.Options[0].Price))
		assert.True(t, decimal.NewFromInt(20).Equal(quote.Options[1].Price))
		assert.True(t, decimal.NewFromInt(35).Equal(quote.Options[2].Price))
		assert.Equal(t, "padrao", quote.SelectedID, "middle option is preselected")
		assert.Equal(t, models.QuoteKey("01310100", &cart), quote.Key)
	})

	t.Run("Success - Rate Beats Floor On Large Cart", func(t *testing.T) {
		// Arrange
		cart := cartWith(t, line("1", "Box Beatles", 1000, 1))

		// Act
		quote, err := quoter.Quote("01310100", &cart)

		// Assert
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(quote.Options[0].Price))
		assert.True(t, decimal.NewFromInt(80).Equal(quote.Options[1].Price))
		assert.True(t, decimal.NewFromInt(120).Equal(quote.Options[2].Price))
	})

	t.Run("Success - Ties Break On Eta Then Name", func(t *testing.T) {
		// Arrange
		tied := service.NewShippingQuoter(config.Shipping{Tiers: []config.ShippingTier{
			{ID: "b", Name: "Beta", FloorPrice: 10, EtaDays: 5},
			{ID: "a", Name: "Alfa", FloorPrice: 10, EtaDays: 5},
			{ID: "c", Name: "Correio", FloorPrice: 10, EtaDays: 2},
		}})
		cart := cartWith(t, line("1", "Abbey Road", 10, 1))

		// Act
		quote, err := tied.Quote("01310100", &cart)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, []string{quote.Options[0].ID, quote.Options[1].ID, quote.Options[2].ID})
	})

	t.Run("Success - Single Option Is Selected", func(t *testing.T) {
		// Arrange
		single := service.NewShippingQuoter(config.Shipping{Tiers: []config.ShippingTier{{Name: "Retirada", FloorPrice: 0}}})
		cart := cartWith(t, line("1", "Abbey Road", 10, 1))

		// Act
		quote, err := single.Quote("01310100", &cart)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "opcao-1", quote.SelectedID)
	})

	t.Run("Failure - Invalid Zip", func(t *testing.T) {
		// Arrange
		cart := cartWith(t, line("1", "Abbey Road", 100, 1))

		// Act
		quote, err := quoter.Quote("1234", &cart)

		// Assert
		assert.Nil(t, quote)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Act
		_, err := quoter.Quote("01310100", &models.Cart{})

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestNormalizeZip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Success - Formatted", input: "01310-100", want: "01310100"},
		{name: "Success - Spaces", input: " 20040 020 ", want: "20040020"},
		{name: "Failure - Too Long", input: "013101000", wantErr: true},
		{name: "Failure - Letters Only", input: "abcdefgh", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			got, err := service.NormalizeZip(tc.input)

			// Assert
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
