package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCash       AccountType = "CASH"
)

type Account struct {
	AccountID      int             `json:"account_id"`
	UserID         int             `json:"user_id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Currency       Currency        `json:"currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AccountPatch carries a partial update. Only non-nil fields are applied.
// Currency is deliberately absent: an account's currency is fixed at
// creation so existing transfer legs keep their meaning.
type AccountPatch struct {
	Name           *string
	Type           *AccountType
	InitialBalance *decimal.Decimal
}

func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.InitialBalance != nil {
		a.InitialBalance = *p.InitialBalance
	}
}
