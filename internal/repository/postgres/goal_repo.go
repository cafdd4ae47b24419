package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// Create creates a new savings goal
func (r *GoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	target, err := decimalToPgNumeric(goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount: %w", err)
	}
	current, err := decimalToPgNumeric(goal.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid current amount: %w", err)
	}

	err = r.pool.QueryRow(context.Background(),
		`INSERT INTO goals (user_id, name, target_amount, current_amount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		goal.UserID, goal.Name, target, current,
	).Scan(&goal.ID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// GetByUser retrieves all goals owned by a user
func (r *GoalRepository) GetByUser(userID int32) ([]*domain.Goal, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, name, target_amount, current_amount
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var (
			goal    domain.Goal
			target  pgtype.Numeric
			current pgtype.Numeric
		)
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &target, &current); err != nil {
			return nil, err
		}
		goal.TargetAmount = pgNumericToDecimal(target)
		goal.CurrentAmount = pgNumericToDecimal(current)
		goals = append(goals, &goal)
	}
	return goals, rows.Err()
}
