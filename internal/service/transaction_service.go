package service

import (
	"strings"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  int32
	Date        *time.Time
}

// CreateTransaction creates a new transaction with validation. The category
// must belong to the caller; a category owned by another user is
// indistinguishable from a missing one.
func (s *TransactionService) CreateTransaction(userID int32, input CreateTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrNameRequired
	}
	if len(description) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}

	category, err := s.categoryRepo.GetByID(userID, input.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := &domain.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Description: description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        date,
	}

	created, err := s.transactionRepo.Create(transaction)
	if err != nil {
		return nil, err
	}
	created.Category = category
	return created, nil
}

// GetTransactions returns the user's transactions newest first. Skip below
// zero is treated as zero; limit defaults to DefaultListLimit and is capped
// at MaxListLimit.
func (s *TransactionService) GetTransactions(userID int32, skip, limit int32) ([]*domain.Transaction, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	return s.transactionRepo.ListByUser(userID, skip, limit)
}
