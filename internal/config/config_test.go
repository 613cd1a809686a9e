package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet/internal/models"
)

func TestParseRates(t *testing.T) {
	rates, err := ParseRates("USD=1.0,EUR=0.85, gbp=0.73")
	require.NoError(t, err)
	require.Len(t, rates, 3)

	assert.Equal(t, "1", rates[models.CurrencyUSD].String())
	assert.Equal(t, "0.85", rates[models.CurrencyEUR].String())
	assert.Equal(t, "0.73", rates[models.CurrencyGBP].String(), "codes are upper-cased")
}

func TestParseRates_Malformed(t *testing.T) {
	_, err := ParseRates("EUR")
	assert.Error(t, err)

	_, err = ParseRates("EUR=abc")
	assert.Error(t, err)
}

func TestParseRates_NonPositive(t *testing.T) {
	_, err := ParseRates("EUR=0")
	assert.Error(t, err)

	_, err = ParseRates("EUR=-1.5")
	assert.Error(t, err)
}
