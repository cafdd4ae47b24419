package service

import (
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget-related business logic
type BudgetService struct {
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudgetInput holds the input for creating a budget
type CreateBudgetInput struct {
	CategoryID int32
	Amount     decimal.Decimal
	Month      int32
	Year       int32
}

// CreateBudget creates a budget for one category and period. The category
// must belong to the caller; a second budget for the same (category, month,
// year) is rejected.
func (s *BudgetService) CreateBudget(userID int32, input CreateBudgetInput) (*domain.Budget, error) {
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domain.ErrInvalidMonth
	}
	if input.Year <= 0 {
		return nil, domain.ErrInvalidPeriod
	}

	category, err := s.categoryRepo.GetByID(userID, input.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	budget := &domain.Budget{
		CategoryID: category.ID,
		Amount:     input.Amount,
		Month:      input.Month,
		Year:       input.Year,
	}
	return s.budgetRepo.Create(budget)
}

// GetBudgets returns all budgets whose category is owned by the user
func (s *BudgetService) GetBudgets(userID int32) ([]*domain.Budget, error) {
	return s.budgetRepo.GetByUser(userID)
}
