package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	err = r.pool.QueryRow(context.Background(),
		`INSERT INTO budgets (category_id, amount, month, year)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		budget.CategoryID, amount, budget.Month, budget.Year,
	).Scan(&budget.ID)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrBudgetExists
		}
		return nil, err
	}
	return budget, nil
}

// GetByUser retrieves all budgets whose category is owned by the user
func (r *BudgetRepository) GetByUser(userID int32) ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT b.id, b.category_id, b.amount, b.month, b.year
		 FROM budgets b
		 JOIN categories c ON c.id = b.category_id
		 WHERE c.user_id = $1
		 ORDER BY b.year, b.month, b.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		var (
			budget domain.Budget
			amount pgtype.Numeric
		)
		if err := rows.Scan(&budget.ID, &budget.CategoryID, &amount, &budget.Month, &budget.Year); err != nil {
			return nil, err
		}
		budget.Amount = pgNumericToDecimal(amount)
		budgets = append(budgets, &budget)
	}
	return budgets, rows.Err()
}
