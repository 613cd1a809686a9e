package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet/internal/currency"
	"github.com/walletapp/wallet/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeAccounts struct {
	accounts map[int]*models.Account
}

func (f *fakeAccounts) GetByID(_ context.Context, accountID, userID int) (*models.Account, error) {
	a, ok := f.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, errors.New("no rows in result set")
	}
	return a, nil
}

type fakeTxnWriter struct {
	pairs   [][2]*models.Transaction
	failErr error
}

func (f *fakeTxnWriter) CreatePair(_ context.Context, expense, income *models.Transaction) error {
	if f.failErr != nil {
		// Atomic by contract: on failure neither leg is retained.
		return f.failErr
	}
	f.pairs = append(f.pairs, [2]*models.Transaction{expense, income})
	return nil
}

func newTestService(writer *fakeTxnWriter) *Service {
	accounts := &fakeAccounts{accounts: map[int]*models.Account{
		1: {AccountID: 1, UserID: 7, Name: "Main Checking", Currency: models.CurrencyUSD},
		2: {AccountID: 2, UserID: 7, Name: "Euro Savings", Currency: models.CurrencyEUR},
		3: {AccountID: 3, UserID: 7, Name: "Cash", Currency: models.CurrencyUSD},
		9: {AccountID: 9, UserID: 8, Name: "Someone Else", Currency: models.CurrencyUSD},
	}}
	return NewService(accounts, writer, currency.NewConverter(models.CurrencyUSD, currency.DefaultRates()))
}

func TestCreateTransfer_SameCurrency(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   3,
		Amount:        dec("50"),
	})
	require.NoError(t, err)

	assert.True(t, got.ConvertedAmount.Equal(dec("50")))
	assert.True(t, got.ExchangeRate.Equal(dec("1")))
	assert.True(t, got.Expense.Amount.Equal(dec("50")))
	assert.True(t, got.Income.Amount.Equal(dec("50")))
	require.Len(t, writer.pairs, 1)
}

func TestCreateTransfer_CrossCurrency(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("100"),
	})
	require.NoError(t, err)

	assert.True(t, got.ConvertedAmount.Equal(dec("85")), "converted %s", got.ConvertedAmount)
	assert.True(t, got.ExchangeRate.Equal(dec("0.85")), "rate %s", got.ExchangeRate)

	assert.Equal(t, models.CurrencyUSD, got.Expense.Currency)
	assert.Equal(t, models.CurrencyEUR, got.Income.Currency)
	assert.True(t, got.Expense.Amount.Equal(dec("100")))
	assert.True(t, got.Income.Amount.Equal(dec("85")))
}

func TestCreateTransfer_LegShape(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("10"),
	})
	require.NoError(t, err)

	for _, leg := range []*models.Transaction{got.Expense, got.Income} {
		assert.Equal(t, models.TransactionTypeTransfer, leg.Type)
		assert.Nil(t, leg.CategoryID, "transfer legs never carry a category")
		assert.Equal(t, 7, leg.UserID)
	}
	assert.Equal(t, 1, got.Expense.AccountID)
	assert.Equal(t, 2, got.Income.AccountID)
}

func TestCreateTransfer_DefaultDescriptions(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Transfer to Euro Savings", got.Expense.Description)
	assert.Equal(t, "Transfer from Main Checking", got.Income.Description)
}

func TestCreateTransfer_ExplicitDescription(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("10"),
		Description:   "Rent split",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rent split", got.Expense.Description)
	assert.Equal(t, "Rent split", got.Income.Description)
}

func TestCreateTransfer_ExplicitConvertedAmount(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	override := dec("90")
	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:          7,
		FromAccountID:   1,
		ToAccountID:     2,
		Amount:          dec("100"),
		ConvertedAmount: &override,
	})
	require.NoError(t, err)

	assert.True(t, got.ConvertedAmount.Equal(dec("90")))
	assert.True(t, got.Income.Amount.Equal(dec("90")))
	assert.True(t, got.ExchangeRate.Equal(dec("0.9")), "rate %s", got.ExchangeRate)
}

func TestCreateTransfer_ZeroAmountRateIsOne(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	got, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("0"),
	})
	require.NoError(t, err)
	assert.True(t, got.ExchangeRate.Equal(dec("1")))
}

func TestCreateTransfer_UnknownAccount(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	_, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 404,
		ToAccountID:   2,
		Amount:        dec("10"),
	})
	assert.ErrorIs(t, err, ErrInvalidAccount)

	_, err = svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   404,
		Amount:        dec("10"),
	})
	assert.ErrorIs(t, err, ErrInvalidAccount)
	assert.Empty(t, writer.pairs, "nothing persisted on rejection")
}

func TestCreateTransfer_ForeignAccountRejected(t *testing.T) {
	writer := &fakeTxnWriter{}
	svc := newTestService(writer)

	// Account 9 exists but belongs to user 8.
	_, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 9,
		ToAccountID:   1,
		Amount:        dec("10"),
	})
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestCreateTransfer_PersistFailure(t *testing.T) {
	writer := &fakeTxnWriter{failErr: errors.New("connection reset")}
	svc := newTestService(writer)

	_, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("10"),
	})
	require.Error(t, err)
	assert.Empty(t, writer.pairs)
}

func TestCreateTransfer_UnconfiguredCurrency(t *testing.T) {
	writer := &fakeTxnWriter{}
	accounts := &fakeAccounts{accounts: map[int]*models.Account{
		1: {AccountID: 1, UserID: 7, Name: "Checking", Currency: models.CurrencyUSD},
		2: {AccountID: 2, UserID: 7, Name: "Yen", Currency: models.Currency("JPY")},
	}}
	svc := NewService(accounts, writer, currency.NewConverter(models.CurrencyUSD, currency.DefaultRates()))

	_, err := svc.CreateTransfer(context.Background(), TransferParams{
		UserID:        7,
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        dec("10"),
	})
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	assert.Empty(t, writer.pairs)
}
