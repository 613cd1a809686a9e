package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet/internal/ledger"
	"github.com/walletapp/wallet/internal/models"
	"github.com/walletapp/wallet/internal/recurring"
	"github.com/walletapp/wallet/internal/repository"
)

// seedDemoData creates a demo user with accounts, categories, a couple of
// recurring schedules, and one cross-currency transfer. Idempotent on the
// demo email: if the user exists, seeding is skipped.
func seedDemoData(
	ctx context.Context,
	users *repository.UserRepository,
	accounts *repository.AccountRepository,
	categories *repository.CategoryRepository,
	recurringSvc *recurring.Service,
	ledgerSvc *ledger.Service,
) error {
	if existing, err := users.GetByEmail(ctx, "demo@wallet.com"); err == nil {
		log.Printf("Demo user already exists (user_id=%d), skipping seed", existing.UserID)
		return nil
	}

	user := &models.User{
		Email:           "demo@wallet.com",
		Username:        "demo",
		DefaultCurrency: models.CurrencyUSD,
	}
	if err := user.SetPassword("demo123"); err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}
	if err := users.Create(ctx, user); err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	checking := &models.Account{
		UserID:         user.UserID,
		Name:           "Main Checking",
		Type:           models.AccountTypeChecking,
		Currency:       models.CurrencyUSD,
		InitialBalance: decimal.NewFromFloat(5420.50),
	}
	savings := &models.Account{
		UserID:         user.UserID,
		Name:           "Euro Savings",
		Type:           models.AccountTypeSavings,
		Currency:       models.CurrencyEUR,
		InitialBalance: decimal.NewFromFloat(12840.75),
	}
	for _, a := range []*models.Account{checking, savings} {
		if err := accounts.Create(ctx, a); err != nil {
			return fmt.Errorf("creating account %q: %w", a.Name, err)
		}
	}

	salary := &models.Category{UserID: user.UserID, Name: "Salary", Type: models.CategoryTypeIncome}
	subscriptions := &models.Category{UserID: user.UserID, Name: "Subscriptions", Type: models.CategoryTypeExpense}
	for _, c := range []*models.Category{salary, subscriptions} {
		if err := categories.Create(ctx, c); err != nil {
			return fmt.Errorf("creating category %q: %w", c.Name, err)
		}
	}

	monthStart := time.Now().AddDate(0, -1, 0)
	schedules := []*models.RecurringTransaction{
		{
			UserID:      user.UserID,
			AccountID:   checking.AccountID,
			CategoryID:  &salary.CategoryID,
			Name:        "Monthly Salary",
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromFloat(4500),
			Currency:    models.CurrencyUSD,
			Description: "Monthly salary deposit",
			Frequency:   models.FrequencyMonthly,
			StartDate:   monthStart,
		},
		{
			UserID:      user.UserID,
			AccountID:   checking.AccountID,
			CategoryID:  &subscriptions.CategoryID,
			Name:        "Netflix",
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromFloat(15.99),
			Currency:    models.CurrencyUSD,
			Description: "Netflix subscription",
			Frequency:   models.FrequencyMonthly,
			StartDate:   monthStart,
		},
	}
	for _, rt := range schedules {
		if err := recurringSvc.Create(ctx, rt); err != nil {
			return fmt.Errorf("creating recurring transaction %q: %w", rt.Name, err)
		}
	}

	if _, err := ledgerSvc.CreateTransfer(ctx, ledger.TransferParams{
		UserID:        user.UserID,
		FromAccountID: checking.AccountID,
		ToAccountID:   savings.AccountID,
		Amount:        decimal.NewFromFloat(500),
	}); err != nil {
		return fmt.Errorf("creating demo transfer: %w", err)
	}

	log.Println("Created demo user: demo@wallet.com / demo123")
	return nil
}
