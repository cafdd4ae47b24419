package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLoanType = errors.New("loan type must be 'borrowed' or 'lent'")
)

type LoanType string

const (
	LoanTypeBorrowed LoanType = "borrowed"
	LoanTypeLent     LoanType = "lent"
)

// Loan tracks money borrowed from or lent to a counterparty
type Loan struct {
	ID        int32           `json:"id"`
	UserID    int32           `json:"user_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      decimal.Decimal `json:"paid"`
	Type      LoanType        `json:"type"`
	DateTaken time.Time       `json:"date_taken"`
	Source    string          `json:"source"`
}

// Remaining returns the outstanding balance. It is derived on every read and
// never persisted. Nothing stops paid from exceeding amount, so the result
// can go negative if a caller overpays.
func (l *Loan) Remaining() decimal.Decimal {
	return l.Amount.Sub(l.Paid)
}

// LoanRepository defines the interface for loan persistence operations
type LoanRepository interface {
	Create(loan *Loan) (*Loan, error)
	GetByUser(userID int32) ([]*Loan, error)
	SumOutstandingByType(userID int32, loanType LoanType) (decimal.Decimal, error)
}
