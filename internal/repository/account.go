package repository

import (
	"context"

	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/models"
)

type AccountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO accounts (user_id, name, type, currency, initial_balance)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING account_id, created_at`,
		account.UserID, account.Name, account.Type, account.Currency, account.InitialBalance,
	).Scan(&account.AccountID, &account.CreatedAt)
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID, userID int) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT account_id, user_id, name, type, currency, initial_balance, created_at
		 FROM accounts WHERE account_id = $1 AND user_id = $2`,
		accountID, userID,
	).Scan(&account.AccountID, &account.UserID, &account.Name, &account.Type,
		&account.Currency, &account.InitialBalance, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID int) ([]*models.Account, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT account_id, user_id, name, type, currency, initial_balance, created_at
		 FROM accounts WHERE user_id = $1 ORDER BY account_id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account := &models.Account{}
		if err := rows.Scan(&account.AccountID, &account.UserID, &account.Name, &account.Type,
			&account.Currency, &account.InitialBalance, &account.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE accounts SET name = $1, type = $2, initial_balance = $3
		 WHERE account_id = $4 AND user_id = $5`,
		account.Name, account.Type, account.InitialBalance, account.AccountID, account.UserID,
	)
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, accountID, userID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM accounts WHERE account_id = $1 AND user_id = $2`,
		accountID, userID,
	)
	return err
}
