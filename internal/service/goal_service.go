package service

import (
	"strings"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalService handles savings-goal business logic
type GoalService struct {
	goalRepo domain.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// CreateGoalInput holds the input for creating a goal
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

// CreateGoal creates a new savings goal with validation
func (s *GoalService) CreateGoal(userID int32, input CreateGoalInput) (*domain.Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.TargetAmount.IsNegative() || input.CurrentAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	goal := &domain.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
	}
	return s.goalRepo.Create(goal)
}

// GetGoals returns all goals owned by the user
func (s *GoalService) GetGoals(userID int32) ([]*domain.Goal, error) {
	return s.goalRepo.GetByUser(userID)
}
