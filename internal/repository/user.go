package repository

import (
	"context"

	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO users (email, username, hashed_password, default_currency)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id`,
		user.Email, user.Username, user.HashedPassword, user.DefaultCurrency,
	).Scan(&user.UserID)
}

func (r *UserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT user_id, email, username, hashed_password, default_currency
		 FROM users WHERE user_id = $1`,
		userID,
	).Scan(&user.UserID, &user.Email, &user.Username, &user.HashedPassword, &user.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT user_id, email, username, hashed_password, default_currency
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.UserID, &user.Email, &user.Username, &user.HashedPassword, &user.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	return user, nil
}
