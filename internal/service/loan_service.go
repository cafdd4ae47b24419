package service

import (
	"strings"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanService handles loan-related business logic
type LoanService struct {
	loanRepo domain.LoanRepository
}

// NewLoanService creates a new LoanService
func NewLoanService(loanRepo domain.LoanRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo}
}

// CreateLoanInput holds the input for creating a loan
type CreateLoanInput struct {
	Name      string
	Amount    decimal.Decimal
	Paid      decimal.Decimal
	Type      domain.LoanType
	DateTaken time.Time
	Source    string
}

// CreateLoan creates a new loan with validation. Paid may exceed the loan
// amount; remaining then goes negative on reads.
func (s *LoanService) CreateLoan(userID int32, input CreateLoanInput) (*domain.Loan, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.Amount.IsNegative() || input.Paid.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if input.Type != domain.LoanTypeBorrowed && input.Type != domain.LoanTypeLent {
		return nil, domain.ErrInvalidLoanType
	}

	if input.DateTaken.IsZero() {
		input.DateTaken = time.Now().UTC()
	}

	loan := &domain.Loan{
		UserID:    userID,
		Name:      name,
		Amount:    input.Amount,
		Paid:      input.Paid,
		Type:      input.Type,
		DateTaken: input.DateTaken,
		Source:    strings.TrimSpace(input.Source),
	}
	return s.loanRepo.Create(loan)
}

// GetLoans returns all loans owned by the user
func (s *LoanService) GetLoans(userID int32) ([]*domain.Loan, error) {
	return s.loanRepo.GetByUser(userID)
}
