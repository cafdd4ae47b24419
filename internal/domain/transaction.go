package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidTransactionType = errors.New("transaction type must be 'income' or 'expense'")

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry owned by a user
type Transaction struct {
	ID          int32           `json:"id"`
	UserID      int32           `json:"user_id"`
	CategoryID  int32           `json:"category_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`

	// Category is the owning category, populated on reads for nested responses
	Category *Category `json:"category,omitempty"`
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// CategoryExpense is an aggregated expense total for one category
type CategoryExpense struct {
	CategoryName string
	Total        decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations
type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	ListByUser(userID int32, skip, limit int32) ([]*Transaction, error)
	SumByType(userID int32, transactionType TransactionType) (decimal.Decimal, error)
	SumExpensesByCategory(userID int32) ([]*CategoryExpense, error)
}
