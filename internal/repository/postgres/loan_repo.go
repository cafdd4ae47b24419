package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanRepository implements domain.LoanRepository using PostgreSQL
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

// Create creates a new loan
func (r *LoanRepository) Create(loan *domain.Loan) (*domain.Loan, error) {
	amount, err := decimalToPgNumeric(loan.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	paid, err := decimalToPgNumeric(loan.Paid)
	if err != nil {
		return nil, fmt.Errorf("invalid paid: %w", err)
	}

	dateTaken := pgtype.Date{Time: loan.DateTaken, Valid: true}

	err = r.pool.QueryRow(context.Background(),
		`INSERT INTO loans (user_id, name, amount, paid, type, date_taken, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		loan.UserID, loan.Name, amount, paid, string(loan.Type), dateTaken, loan.Source,
	).Scan(&loan.ID)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// GetByUser retrieves all loans owned by a user
func (r *LoanRepository) GetByUser(userID int32) ([]*domain.Loan, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, name, amount, paid, type, date_taken, source
		 FROM loans
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*domain.Loan
	for rows.Next() {
		var (
			loan      domain.Loan
			amount    pgtype.Numeric
			paid      pgtype.Numeric
			dateTaken pgtype.Date
		)
		err := rows.Scan(&loan.ID, &loan.UserID, &loan.Name, &amount, &paid,
			&loan.Type, &dateTaken, &loan.Source)
		if err != nil {
			return nil, err
		}
		loan.Amount = pgNumericToDecimal(amount)
		loan.Paid = pgNumericToDecimal(paid)
		loan.DateTaken = dateTaken.Time
		loans = append(loans, &loan)
	}
	return loans, rows.Err()
}

// SumOutstandingByType sums (amount - paid) over a user's loans of one type
func (r *LoanRepository) SumOutstandingByType(userID int32, loanType domain.LoanType) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount - paid), 0)
		 FROM loans
		 WHERE user_id = $1 AND type = $2`,
		userID, string(loanType),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}
