package repository

import (
	"context"

	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/models"
)

type CategoryRepository struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, type) VALUES ($1, $2, $3)
		 RETURNING category_id`,
		category.UserID, category.Name, category.Type,
	).Scan(&category.CategoryID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID, userID int) (*models.Category, error) {
	category := &models.Category{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT category_id, user_id, name, type
		 FROM categories WHERE category_id = $1 AND user_id = $2`,
		categoryID, userID,
	).Scan(&category.CategoryID, &category.UserID, &category.Name, &category.Type)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) GetByUserID(ctx context.Context, userID int) ([]*models.Category, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT category_id, user_id, name, type
		 FROM categories WHERE user_id = $1 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.CategoryID, &category.UserID, &category.Name, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE categories SET name = $1, type = $2 WHERE category_id = $3 AND user_id = $4`,
		category.Name, category.Type, category.CategoryID, category.UserID,
	)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID, userID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM categories WHERE category_id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	return err
}
