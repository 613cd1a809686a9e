package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Transaction is a single ledger entry. Amount is always positive; the
// currency matches the account's currency at creation time. Transfer-type
// transactions never carry a category. RecurringTransactionID links back to
// the schedule that generated the entry, when there is one.
type Transaction struct {
	TransactionID          int             `json:"transaction_id"`
	UserID                 int             `json:"user_id"`
	AccountID              int             `json:"account_id"`
	CategoryID             *int            `json:"category_id"`
	RecurringTransactionID *int            `json:"recurring_transaction_id"`
	Type                   TransactionType `json:"type"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               Currency        `json:"currency"`
	Description            string          `json:"description"`
	Date                   time.Time       `json:"date"`
}

// TransactionPatch carries a partial update. Only non-nil fields are applied.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *TransactionType
	Description *string
	AccountID   *int
	CategoryID  *int
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.CategoryID != nil {
		t.CategoryID = p.CategoryID
	}
}
