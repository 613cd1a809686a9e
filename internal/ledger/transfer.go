// Package ledger moves money between two accounts as a matched pair of
// TRANSFER transactions: an expense leg on the source account and an income
// leg on the destination account, converted when the currencies differ.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet/internal/currency"
	"github.com/walletapp/wallet/internal/models"
)

// ErrInvalidAccount means an account id did not resolve for the requesting
// user.
var ErrInvalidAccount = errors.New("invalid account")

// Accounts resolves accounts scoped to their owner.
type Accounts interface {
	GetByID(ctx context.Context, accountID, userID int) (*models.Account, error)
}

// TransactionWriter persists both transfer legs as one atomic unit: either
// both rows are committed or neither is.
type TransactionWriter interface {
	CreatePair(ctx context.Context, expense, income *models.Transaction) error
}

type Service struct {
	accounts  Accounts
	txns      TransactionWriter
	converter *currency.Converter
}

func NewService(accounts Accounts, txns TransactionWriter, converter *currency.Converter) *Service {
	return &Service{accounts: accounts, txns: txns, converter: converter}
}

// TransferParams describes a transfer request. ConvertedAmount, when set,
// overrides the rate-table conversion with a caller-supplied destination
// amount. Callers must reject FromAccountID == ToAccountID before calling;
// the service does not enforce it.
type TransferParams struct {
	UserID          int
	FromAccountID   int
	ToAccountID     int
	Amount          decimal.Decimal
	Description     string
	ConvertedAmount *decimal.Decimal
}

// Transfer is the result of a committed transfer: both legs, the amount
// credited to the destination, and the effective exchange rate.
type Transfer struct {
	Expense         *models.Transaction
	Income          *models.Transaction
	ExchangeRate    decimal.Decimal
	ConvertedAmount decimal.Decimal
}

func (s *Service) CreateTransfer(ctx context.Context, p TransferParams) (*Transfer, error) {
	from, err := s.accounts.GetByID(ctx, p.FromAccountID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: source account %d", ErrInvalidAccount, p.FromAccountID)
	}
	to, err := s.accounts.GetByID(ctx, p.ToAccountID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: destination account %d", ErrInvalidAccount, p.ToAccountID)
	}

	converted, err := s.convertedAmount(p, from, to)
	if err != nil {
		return nil, err
	}

	expenseDesc := p.Description
	if expenseDesc == "" {
		expenseDesc = "Transfer to " + to.Name
	}
	incomeDesc := p.Description
	if incomeDesc == "" {
		incomeDesc = "Transfer from " + from.Name
	}

	expense := &models.Transaction{
		UserID:      p.UserID,
		AccountID:   from.AccountID,
		Type:        models.TransactionTypeTransfer,
		Amount:      p.Amount,
		Currency:    from.Currency,
		Description: expenseDesc,
	}
	income := &models.Transaction{
		UserID:      p.UserID,
		AccountID:   to.AccountID,
		Type:        models.TransactionTypeTransfer,
		Amount:      converted,
		Currency:    to.Currency,
		Description: incomeDesc,
	}

	if err := s.txns.CreatePair(ctx, expense, income); err != nil {
		return nil, fmt.Errorf("persisting transfer legs: %w", err)
	}

	// Rate is defined as 1.0 for zero-amount transfers so callers never
	// divide by zero; rejecting such transfers is the boundary's job.
	rate := decimal.NewFromInt(1)
	if p.Amount.IsPositive() {
		rate = converted.Div(p.Amount)
	}

	return &Transfer{
		Expense:         expense,
		Income:          income,
		ExchangeRate:    rate,
		ConvertedAmount: converted,
	}, nil
}

func (s *Service) convertedAmount(p TransferParams, from, to *models.Account) (decimal.Decimal, error) {
	if p.ConvertedAmount != nil {
		return *p.ConvertedAmount, nil
	}
	converted, err := s.converter.Convert(p.Amount, from.Currency, to.Currency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("converting %s to %s: %w", from.Currency, to.Currency, err)
	}
	return converted, nil
}
