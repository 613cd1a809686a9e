package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestConverter() *Converter {
	return NewConverter(models.CurrencyUSD, DefaultRates())
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	c := newTestConverter()

	// No rounding either: three decimal places survive.
	got, err := c.Convert(dec("10.123"), models.CurrencyEUR, models.CurrencyEUR)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("10.123")), "got %s", got)
}

func TestConvert_ThroughBase(t *testing.T) {
	c := newTestConverter()

	tests := []struct {
		name     string
		amount   string
		from, to models.Currency
		want     string
	}{
		{"usd to eur", "100", models.CurrencyUSD, models.CurrencyEUR, "85"},
		{"usd to gbp", "100", models.CurrencyUSD, models.CurrencyGBP, "73"},
		{"eur to usd", "85", models.CurrencyEUR, models.CurrencyUSD, "100"},
		{"eur to gbp cross rate", "100", models.CurrencyEUR, models.CurrencyGBP, "85.88"},
		{"usd to egp", "10", models.CurrencyUSD, models.CurrencyEGP, "309"},
		{"zero amount", "0", models.CurrencyUSD, models.CurrencyEUR, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(dec(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestConvert_RoundsToTwoPlaces(t *testing.T) {
	c := newTestConverter()

	got, err := c.Convert(dec("1"), models.CurrencyEUR, models.CurrencyGBP)
	require.NoError(t, err)
	// 1 / 0.85 * 0.73 = 0.8588... -> 0.86
	assert.True(t, got.Equal(dec("0.86")), "got %s", got)
	assert.LessOrEqual(t, int(got.Exponent())*-1, 2)
}

func TestConvert_UnknownCurrency(t *testing.T) {
	c := NewConverter(models.CurrencyUSD, map[models.Currency]decimal.Decimal{
		models.CurrencyUSD: dec("1"),
	})

	_, err := c.Convert(dec("10"), models.CurrencyUSD, models.Currency("JPY"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = c.Convert(dec("10"), models.Currency("JPY"), models.CurrencyUSD)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestRates_ReturnsDefensiveCopy(t *testing.T) {
	c := newTestConverter()

	snapshot := c.Rates()
	snapshot[models.CurrencyEUR] = dec("999")

	got, err := c.Convert(dec("100"), models.CurrencyUSD, models.CurrencyEUR)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("85")), "mutating the snapshot must not change conversions, got %s", got)
}

func TestNewConverter_CopiesInput(t *testing.T) {
	rates := DefaultRates()
	c := NewConverter(models.CurrencyUSD, rates)
	rates[models.CurrencyEUR] = dec("999")

	got, err := c.Convert(dec("100"), models.CurrencyUSD, models.CurrencyEUR)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("85")), "got %s", got)
}
