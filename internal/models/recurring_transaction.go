package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the recurrence interval of a RecurringTransaction.
type Frequency string

const (
	FrequencyDaily     Frequency = "DAILY"
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyYearly    Frequency = "YEARLY"
)

// RecurringTransaction is a schedule that materializes one Transaction each
// time it comes due. Invariants: NextDueDate >= StartDate; once IsActive is
// false the schedule is terminal and is never advanced again; while active
// with an EndDate set, NextDueDate never exceeds EndDate.
type RecurringTransaction struct {
	RecurringTransactionID int             `json:"recurring_transaction_id"`
	UserID                 int             `json:"user_id"`
	AccountID              int             `json:"account_id"`
	CategoryID             *int            `json:"category_id"`
	Name                   string          `json:"name"`
	Type                   TransactionType `json:"type"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               Currency        `json:"currency"`
	Description            string          `json:"description"`
	Frequency              Frequency       `json:"frequency"`
	StartDate              time.Time       `json:"start_date"`
	EndDate                *time.Time      `json:"end_date"`
	NextDueDate            time.Time       `json:"next_due_date"`
	IsActive               bool            `json:"is_active"`
	CreatedAt              time.Time       `json:"created_at"`
}

// IsDue reports whether the schedule should be processed at the given time.
func (rt *RecurringTransaction) IsDue(now time.Time) bool {
	return rt.IsActive && !rt.NextDueDate.After(now)
}

// RecurringTransactionPatch carries a partial update. Only non-nil fields
// are applied. Callers that change StartDate or Frequency must recompute
// NextDueDate afterwards; recurring.Service.Update does this.
type RecurringTransactionPatch struct {
	Name        *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	Description *string
	Frequency   *Frequency
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
	AccountID   *int
	CategoryID  *int
}

func (p RecurringTransactionPatch) Apply(rt *RecurringTransaction) {
	if p.Name != nil {
		rt.Name = *p.Name
	}
	if p.Amount != nil {
		rt.Amount = *p.Amount
	}
	if p.Type != nil {
		rt.Type = *p.Type
	}
	if p.Description != nil {
		rt.Description = *p.Description
	}
	if p.Frequency != nil {
		rt.Frequency = *p.Frequency
	}
	if p.StartDate != nil {
		rt.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		rt.EndDate = p.EndDate
	}
	if p.IsActive != nil {
		rt.IsActive = *p.IsActive
	}
	if p.AccountID != nil {
		rt.AccountID = *p.AccountID
	}
	if p.CategoryID != nil {
		rt.CategoryID = p.CategoryID
	}
}
