package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// CreateMany inserts a batch of categories for one user atomically
func (r *CategoryRepository) CreateMany(userID int32, names []string) ([]*domain.Category, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	categories := make([]*domain.Category, 0, len(names))
	for _, name := range names {
		category := &domain.Category{UserID: userID, Name: name}
		err := tx.QueryRow(ctx,
			`INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id`,
			userID, name,
		).Scan(&category.ID)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByUser retrieves all categories owned by a user
func (r *CategoryRepository) GetByUser(userID int32) ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, name FROM categories WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

// GetByID retrieves a category by its ID, scoped to its owner
func (r *CategoryRepository) GetByID(userID int32, id int32) (*domain.Category, error) {
	var category domain.Category
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, user_id, name FROM categories WHERE user_id = $1 AND id = $2`,
		userID, id,
	).Scan(&category.ID, &category.UserID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
