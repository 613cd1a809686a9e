package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountPatch_OnlySetFieldsChange(t *testing.T) {
	account := Account{
		Name:           "Main Checking",
		Type:           AccountTypeChecking,
		Currency:       CurrencyUSD,
		InitialBalance: decimal.NewFromInt(100),
	}

	name := "Joint Checking"
	AccountPatch{Name: &name}.Apply(&account)

	assert.Equal(t, "Joint Checking", account.Name)
	assert.Equal(t, AccountTypeChecking, account.Type)
	assert.True(t, account.InitialBalance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, CurrencyUSD, account.Currency)
}

func TestTransactionPatch_SetsCategory(t *testing.T) {
	txn := Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(20)}

	catID := 3
	amount := decimal.NewFromInt(25)
	TransactionPatch{CategoryID: &catID, Amount: &amount}.Apply(&txn)

	assert.Equal(t, &catID, txn.CategoryID)
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, TransactionTypeExpense, txn.Type)
}

func TestRecurringTransactionPatch_EmptyPatchIsNoop(t *testing.T) {
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rt := RecurringTransaction{
		Name:        "Rent",
		Amount:      decimal.NewFromInt(1200),
		Frequency:   FrequencyMonthly,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		NextDueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	before := rt

	RecurringTransactionPatch{}.Apply(&rt)
	assert.Equal(t, before, rt)
}

func TestRecurringTransactionPatch_Deactivate(t *testing.T) {
	rt := RecurringTransaction{IsActive: true}
	off := false
	RecurringTransactionPatch{IsActive: &off}.Apply(&rt)
	assert.False(t, rt.IsActive)
}

func TestRecurringTransactionIsDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	rt := RecurringTransaction{IsActive: true, NextDueDate: now.Add(-time.Hour)}
	assert.True(t, rt.IsDue(now))

	rt.NextDueDate = now
	assert.True(t, rt.IsDue(now), "due exactly at now")

	rt.NextDueDate = now.Add(time.Hour)
	assert.False(t, rt.IsDue(now))

	rt.NextDueDate = now.Add(-time.Hour)
	rt.IsActive = false
	assert.False(t, rt.IsDue(now), "inactive is never due")
}
