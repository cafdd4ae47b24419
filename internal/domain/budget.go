package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrBudgetExists  = errors.New("budget already exists for this category and period")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrInvalidPeriod = errors.New("year is required")
)

// Budget caps spending for one category in one month. A category can hold at
// most one budget per (month, year) period.
type Budget struct {
	ID         int32           `json:"id"`
	CategoryID int32           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int32           `json:"month"`
	Year       int32           `json:"year"`
}

// BudgetRepository defines the interface for budget persistence operations
type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByUser(userID int32) ([]*Budget, error)
}
