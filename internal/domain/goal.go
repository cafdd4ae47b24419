package domain

import "github.com/shopspring/decimal"

// Goal is a savings target owned by a user
type Goal struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	Create(goal *Goal) (*Goal, error)
	GetByUser(userID int32) ([]*Goal, error)
}
