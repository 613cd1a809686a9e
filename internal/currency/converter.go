// Package currency converts amounts between the wallet's supported
// currencies using a static rate table. Rates are configuration, not live
// data: each rate expresses one unit of the base currency in the quoted
// currency.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet/internal/models"
)

// ErrUnknownCurrency means a currency has no configured conversion rate.
// This is a configuration problem, never silently defaulted.
var ErrUnknownCurrency = errors.New("no conversion rate configured")

// DefaultRates returns the built-in rate table, quoted against USD.
func DefaultRates() map[models.Currency]decimal.Decimal {
	return map[models.Currency]decimal.Decimal{
		models.CurrencyUSD: decimal.NewFromFloat(1.0),
		models.CurrencyEUR: decimal.NewFromFloat(0.85),
		models.CurrencyGBP: decimal.NewFromFloat(0.73),
		models.CurrencyEGP: decimal.NewFromFloat(30.9),
	}
}

type Converter struct {
	base  models.Currency
	rates map[models.Currency]decimal.Decimal
}

// NewConverter builds a Converter over a copy of the given rate table, so
// later mutation of the caller's map cannot change conversion results.
func NewConverter(base models.Currency, rates map[models.Currency]decimal.Decimal) *Converter {
	copied := make(map[models.Currency]decimal.Decimal, len(rates))
	for c, r := range rates {
		copied[c] = r
	}
	return &Converter{base: base, rates: copied}
}

// Convert returns amount expressed in the target currency, rounded to two
// decimal places. Same-currency conversion is the identity and applies no
// rounding.
func (c *Converter) Convert(amount decimal.Decimal, from, to models.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := c.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	// Through the base currency: amount / rate(from) * rate(to).
	return amount.Div(fromRate).Mul(toRate).Round(2), nil
}

// Base returns the currency the rate table is quoted against.
func (c *Converter) Base() models.Currency {
	return c.base
}

// Rates returns a copy of the configured rate table for read-only display.
func (c *Converter) Rates() map[models.Currency]decimal.Decimal {
	out := make(map[models.Currency]decimal.Decimal, len(c.rates))
	for cur, r := range c.rates {
		out[cur] = r
	}
	return out
}
