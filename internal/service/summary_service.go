package service

import "github.com/ledgerly/ledgerly-backend/internal/domain"

// SummaryService computes derived figures from the ledger on demand. Nothing
// here is cached or persisted; every call re-reads the store.
type SummaryService struct {
	transactionRepo domain.TransactionRepository
	loanRepo        domain.LoanRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(transactionRepo domain.TransactionRepository, loanRepo domain.LoanRepository) *SummaryService {
	return &SummaryService{
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
	}
}

// GetSummary returns the user's all-time totals: income, expense, balance,
// outstanding debt on borrowed loans and outstanding credit on lent loans.
func (s *SummaryService) GetSummary(userID int32) (*domain.Summary, error) {
	totalIncome, err := s.transactionRepo.SumByType(userID, domain.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}

	totalExpense, err := s.transactionRepo.SumByType(userID, domain.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	totalDebt, err := s.loanRepo.SumOutstandingByType(userID, domain.LoanTypeBorrowed)
	if err != nil {
		return nil, err
	}

	totalLent, err := s.loanRepo.SumOutstandingByType(userID, domain.LoanTypeLent)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		TotalIncome:          totalIncome,
		TotalExpense:         totalExpense,
		Balance:              totalIncome.Sub(totalExpense),
		TotalDebt:            totalDebt,
		TotalLentOutstanding: totalLent,
	}, nil
}

// GetExpenseByCategory returns per-category expense totals for the user.
// Categories whose total is zero are omitted entirely.
func (s *SummaryService) GetExpenseByCategory(userID int32) ([]*domain.CategoryExpense, error) {
	return s.transactionRepo.SumExpensesByCategory(userID)
}
