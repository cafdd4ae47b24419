package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	err = r.pool.QueryRow(context.Background(),
		`INSERT INTO transactions (user_id, category_id, description, amount, type, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, date`,
		transaction.UserID, transaction.CategoryID, transaction.Description,
		amount, string(transaction.Type), transaction.Date,
	).Scan(&transaction.ID, &transaction.Date)
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// ListByUser retrieves a user's transactions newest first, with skip/limit
// pagination. The id tiebreaker keeps the order stable across pages when
// several rows share a timestamp.
func (r *TransactionRepository) ListByUser(userID int32, skip, limit int32) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT t.id, t.user_id, t.category_id, t.description, t.amount, t.type, t.date, c.name
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.user_id = $1
		 ORDER BY t.date DESC, t.id DESC
		 OFFSET $2 LIMIT $3`,
		userID, skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var (
			transaction  domain.Transaction
			amount       pgtype.Numeric
			categoryName string
		)
		err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID,
			&transaction.Description, &amount, &transaction.Type, &transaction.Date, &categoryName)
		if err != nil {
			return nil, err
		}
		transaction.Amount = pgNumericToDecimal(amount)
		transaction.Category = &domain.Category{
			ID:     transaction.CategoryID,
			UserID: transaction.UserID,
			Name:   categoryName,
		}
		transactions = append(transactions, &transaction)
	}
	return transactions, rows.Err()
}

// SumByType sums all of a user's transactions of one type
func (r *TransactionRepository) SumByType(userID int32, transactionType domain.TransactionType) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = $1 AND type = $2`,
		userID, string(transactionType),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// SumExpensesByCategory returns per-category expense totals for a user.
// Categories whose expense total is zero are not returned.
func (r *TransactionRepository) SumExpensesByCategory(userID int32) ([]*domain.CategoryExpense, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT c.name, SUM(t.amount) AS total
		 FROM categories c
		 JOIN transactions t ON t.category_id = c.id
		 WHERE c.user_id = $1 AND t.type = $2
		 GROUP BY c.id, c.name
		 HAVING SUM(t.amount) > 0
		 ORDER BY total DESC`,
		userID, string(domain.TransactionTypeExpense),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.CategoryExpense
	for rows.Next() {
		var (
			entry domain.CategoryExpense
			total pgtype.Numeric
		)
		if err := rows.Scan(&entry.CategoryName, &total); err != nil {
			return nil, err
		}
		entry.Total = pgNumericToDecimal(total)
		totals = append(totals, &entry)
	}
	return totals, rows.Err()
}
