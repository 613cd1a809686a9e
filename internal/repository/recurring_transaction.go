package repository

import (
	"context"
	"errors"
	"time"

	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/models"
)

// ErrAlreadyProcessed means another run advanced the schedule between this
// run's read and its write. The losing run's transaction insert is rolled
// back, so the occurrence is emitted exactly once.
var ErrAlreadyProcessed = errors.New("recurring transaction already processed by a concurrent run")

type RecurringTransactionRepository struct {
	db *database.DB
}

func NewRecurringTransactionRepository(db *database.DB) *RecurringTransactionRepository {
	return &RecurringTransactionRepository{db: db}
}

const recurringColumns = `recurring_transaction_id, user_id, account_id, category_id, name, type,
	 amount, currency, description, frequency, start_date, end_date, next_due_date, is_active, created_at`

func (r *RecurringTransactionRepository) Create(ctx context.Context, rt *models.RecurringTransaction) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO recurring_transactions (user_id, account_id, category_id, name, type,
		 amount, currency, description, frequency, start_date, end_date, next_due_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING recurring_transaction_id, created_at`,
		rt.UserID, rt.AccountID, rt.CategoryID, rt.Name, rt.Type,
		rt.Amount, rt.Currency, rt.Description, rt.Frequency, rt.StartDate, rt.EndDate,
		rt.NextDueDate, rt.IsActive,
	).Scan(&rt.RecurringTransactionID, &rt.CreatedAt)
}

func (r *RecurringTransactionRepository) GetByID(ctx context.Context, recurringTransactionID, userID int) (*models.RecurringTransaction, error) {
	rt := &models.RecurringTransaction{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT `+recurringColumns+`
		 FROM recurring_transactions WHERE recurring_transaction_id = $1 AND user_id = $2`,
		recurringTransactionID, userID,
	).Scan(&rt.RecurringTransactionID, &rt.UserID, &rt.AccountID, &rt.CategoryID, &rt.Name, &rt.Type,
		&rt.Amount, &rt.Currency, &rt.Description, &rt.Frequency, &rt.StartDate, &rt.EndDate,
		&rt.NextDueDate, &rt.IsActive, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *RecurringTransactionRepository) GetByUserID(ctx context.Context, userID int, activeOnly bool) ([]*models.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + `
		 FROM recurring_transactions WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY next_due_date ASC, recurring_transaction_id ASC`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.RecurringTransaction
	for rows.Next() {
		rt := &models.RecurringTransaction{}
		if err := rows.Scan(&rt.RecurringTransactionID, &rt.UserID, &rt.AccountID, &rt.CategoryID,
			&rt.Name, &rt.Type, &rt.Amount, &rt.Currency, &rt.Description, &rt.Frequency,
			&rt.StartDate, &rt.EndDate, &rt.NextDueDate, &rt.IsActive, &rt.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, rt)
	}
	return schedules, rows.Err()
}

func (r *RecurringTransactionRepository) Update(ctx context.Context, rt *models.RecurringTransaction) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE recurring_transactions SET account_id = $1, category_id = $2, name = $3, type = $4,
		 amount = $5, currency = $6, description = $7, frequency = $8, start_date = $9, end_date = $10,
		 next_due_date = $11, is_active = $12
		 WHERE recurring_transaction_id = $13 AND user_id = $14`,
		rt.AccountID, rt.CategoryID, rt.Name, rt.Type,
		rt.Amount, rt.Currency, rt.Description, rt.Frequency, rt.StartDate, rt.EndDate,
		rt.NextDueDate, rt.IsActive, rt.RecurringTransactionID, rt.UserID,
	)
	return err
}

func (r *RecurringTransactionRepository) Delete(ctx context.Context, recurringTransactionID, userID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM recurring_transactions WHERE recurring_transaction_id = $1 AND user_id = $2`,
		recurringTransactionID, userID,
	)
	return err
}

// ListDue returns every active schedule due at or before the given time,
// across all users, oldest due date first.
func (r *RecurringTransactionRepository) ListDue(ctx context.Context, now time.Time) ([]*models.RecurringTransaction, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+recurringColumns+`
		 FROM recurring_transactions WHERE is_active = true AND next_due_date <= $1
		 ORDER BY next_due_date ASC, recurring_transaction_id ASC`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []*models.RecurringTransaction
	for rows.Next() {
		rt := &models.RecurringTransaction{}
		if err := rows.Scan(&rt.RecurringTransactionID, &rt.UserID, &rt.AccountID, &rt.CategoryID,
			&rt.Name, &rt.Type, &rt.Amount, &rt.Currency, &rt.Description, &rt.Frequency,
			&rt.StartDate, &rt.EndDate, &rt.NextDueDate, &rt.IsActive, &rt.CreatedAt); err != nil {
			return nil, err
		}
		due = append(due, rt)
	}
	return due, rows.Err()
}

// Materialize inserts the generated transaction and writes the schedule's
// advanced state in one database transaction. The UPDATE is predicated on
// the due date the caller read (prevDue) still being current, so two runs
// racing on the same schedule cannot both emit a transaction: the second
// UPDATE matches zero rows, the insert rolls back, and ErrAlreadyProcessed
// is returned.
func (r *RecurringTransactionRepository) Materialize(ctx context.Context, rt *models.RecurringTransaction, prevDue time.Time, txn *models.Transaction) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE recurring_transactions SET next_due_date = $1, is_active = $2
		 WHERE recurring_transaction_id = $3 AND next_due_date = $4 AND is_active = true`,
		rt.NextDueDate, rt.IsActive, rt.RecurringTransactionID, prevDue,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}

	return tx.Commit(ctx)
}
