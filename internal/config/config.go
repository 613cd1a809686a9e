package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet/internal/currency"
	"github.com/walletapp/wallet/internal/models"
)

type Config struct {
	DatabaseURI string

	// Telegram batch-summary notifications; disabled when the token is empty.
	TelegramToken  string
	TelegramChatID int64

	// BaseCurrency is the currency the rate table is quoted against.
	BaseCurrency  models.Currency
	CurrencyRates map[models.Currency]decimal.Decimal

	// PollInterval is how often the scheduler checks for due recurring
	// transactions.
	PollInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	cfg := &Config{
		DatabaseURI:   os.Getenv("DATABASE_URI"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		BaseCurrency:  models.Currency(getEnvOrDefault("BASE_CURRENCY", string(models.CurrencyUSD))),
		CurrencyRates: currency.DefaultRates(),
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", v, err)
		}
		cfg.TelegramChatID = chatID
	}

	if v := os.Getenv("CURRENCY_RATES"); v != "" {
		rates, err := ParseRates(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CURRENCY_RATES: %w", err)
		}
		cfg.CurrencyRates = rates
	}

	interval := getEnvOrDefault("POLL_INTERVAL", "1m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL %q: %w", interval, err)
	}
	cfg.PollInterval = d

	return cfg, nil
}

// ParseRates parses a rate-table override of the form
// "USD=1.0,EUR=0.85,GBP=0.73". Every rate must be a positive decimal.
func ParseRates(s string) (map[models.Currency]decimal.Decimal, error) {
	rates := make(map[models.Currency]decimal.Decimal)
	for _, pair := range strings.Split(s, ",") {
		code, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("malformed rate %q, want CODE=RATE", pair)
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("malformed rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
		rates[models.Currency(strings.ToUpper(code))] = rate
	}
	return rates, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
