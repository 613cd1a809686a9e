package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/models"
)

type TransactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// querier covers both the pool and an open pgx transaction, so inserts can
// run standalone or inside a surrounding transaction scope.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertTransaction(ctx context.Context, q querier, txn *models.Transaction) error {
	return q.QueryRow(ctx,
		`INSERT INTO transactions (user_id, account_id, category_id, recurring_transaction_id,
		 type, amount, currency, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING transaction_id, date`,
		txn.UserID, txn.AccountID, txn.CategoryID, txn.RecurringTransactionID,
		txn.Type, txn.Amount, txn.Currency, txn.Description,
	).Scan(&txn.TransactionID, &txn.Date)
}

func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return insertTransaction(ctx, r.db.Pool, txn)
}

// CreatePair inserts both legs of a transfer in a single database
// transaction. Either both rows commit or neither does; a half-applied
// transfer is a consistency violation, not a recoverable state.
func (r *TransactionRepository) CreatePair(ctx context.Context, expense, income *models.Transaction) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertTransaction(ctx, tx, expense); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, income); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID, userID int) (*models.Transaction, error) {
	txn := &models.Transaction{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT transaction_id, user_id, account_id, category_id, recurring_transaction_id,
		 type, amount, currency, description, date
		 FROM transactions WHERE transaction_id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(&txn.TransactionID, &txn.UserID, &txn.AccountID, &txn.CategoryID, &txn.RecurringTransactionID,
		&txn.Type, &txn.Amount, &txn.Currency, &txn.Description, &txn.Date)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *TransactionRepository) GetByUserID(ctx context.Context, userID, limit, offset int) ([]*models.Transaction, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT transaction_id, user_id, account_id, category_id, recurring_transaction_id,
		 type, amount, currency, description, date
		 FROM transactions WHERE user_id = $1
		 ORDER BY date DESC, transaction_id DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID, userID int) ([]*models.Transaction, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT transaction_id, user_id, account_id, category_id, recurring_transaction_id,
		 type, amount, currency, description, date
		 FROM transactions WHERE account_id = $1 AND user_id = $2
		 ORDER BY date DESC, transaction_id DESC`,
		accountID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *TransactionRepository) Update(ctx context.Context, txn *models.Transaction) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE transactions SET account_id = $1, category_id = $2, type = $3,
		 amount = $4, currency = $5, description = $6
		 WHERE transaction_id = $7 AND user_id = $8`,
		txn.AccountID, txn.CategoryID, txn.Type, txn.Amount, txn.Currency, txn.Description,
		txn.TransactionID, txn.UserID,
	)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID, userID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	return err
}

func scanTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	for rows.Next() {
		txn := &models.Transaction{}
		if err := rows.Scan(&txn.TransactionID, &txn.UserID, &txn.AccountID, &txn.CategoryID,
			&txn.RecurringTransactionID, &txn.Type, &txn.Amount, &txn.Currency,
			&txn.Description, &txn.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
