package testutil

import (
	"sort"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[int32]*domain.User
	NextID   int32
	CreateFn func(user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[string]*domain.User),
		ByID:   make(map[int32]*domain.User),
		NextID: 1,
	}
}

// Create creates a new user
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	if _, ok := m.Users[user.Username]; ok {
		return nil, domain.ErrUsernameTaken
	}
	user.ID = m.NextID
	m.NextID++
	user.CreatedAt = time.Now().UTC()
	m.Users[user.Username] = user
	m.ByID[user.ID] = user
	return user, nil
}

// GetByUsername retrieves a user by username
func (m *MockUserRepository) GetByUsername(username string) (*domain.User, error) {
	if user, ok := m.Users[username]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id int32) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	if user.ID == 0 {
		user.ID = m.NextID
		m.NextID++
	} else if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
	m.Users[user.Username] = user
	m.ByID[user.ID] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

// CreateMany creates one category per name for the user
func (m *MockCategoryRepository) CreateMany(userID int32, names []string) ([]*domain.Category, error) {
	created := make([]*domain.Category, 0, len(names))
	for _, name := range names {
		category := &domain.Category{ID: m.NextID, UserID: userID, Name: name}
		m.NextID++
		m.Categories[category.ID] = category
		created = append(created, category)
	}
	return created, nil
}

// GetByUser retrieves the user's categories ordered by ID
func (m *MockCategoryRepository) GetByUser(userID int32) ([]*domain.Category, error) {
	var result []*domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID retrieves a category owned by the user
func (m *MockCategoryRepository) GetByID(userID int32, id int32) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok || category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == 0 {
		category.ID = m.NextID
		m.NextID++
	} else if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
	m.Categories[category.ID] = category
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	// CategoryNames maps category IDs to names for the expense breakdown
	CategoryNames map[int32]string
	NextID        int32
	CreateFn      func(transaction *domain.Transaction) (*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		CategoryNames: make(map[int32]string),
		NextID:        1,
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	transaction.ID = m.NextID
	m.NextID++
	m.Transactions = append(m.Transactions, transaction)
	return transaction, nil
}

// ListByUser retrieves the user's transactions newest first with an ID
// tiebreaker, honoring skip and limit the way the SQL query does.
func (m *MockTransactionRepository) ListByUser(userID int32, skip, limit int32) ([]*domain.Transaction, error) {
	var result []*domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			result = append(result, transaction)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	if int(skip) >= len(result) {
		return []*domain.Transaction{}, nil
	}
	result = result[skip:]
	if int(limit) < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// SumByType sums the user's transaction amounts of one type
func (m *MockTransactionRepository) SumByType(userID int32, transactionType domain.TransactionType) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Type == transactionType {
			total = total.Add(transaction.Amount)
		}
	}
	return total, nil
}

// SumExpensesByCategory groups the user's expenses by category, largest first
func (m *MockTransactionRepository) SumExpensesByCategory(userID int32) ([]*domain.CategoryExpense, error) {
	totals := make(map[int32]decimal.Decimal)
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Type == domain.TransactionTypeExpense {
			totals[transaction.CategoryID] = totals[transaction.CategoryID].Add(transaction.Amount)
		}
	}
	var result []*domain.CategoryExpense
	for categoryID, total := range totals {
		if total.IsZero() {
			continue
		}
		result = append(result, &domain.CategoryExpense{
			CategoryName: m.CategoryNames[categoryID],
			Total:        total,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Total.GreaterThan(result[j].Total) })
	return result, nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == 0 {
		transaction.ID = m.NextID
		m.NextID++
	} else if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
	m.Transactions = append(m.Transactions, transaction)
}

// MockLoanRepository is a mock implementation of domain.LoanRepository
type MockLoanRepository struct {
	Loans    []*domain.Loan
	NextID   int32
	CreateFn func(loan *domain.Loan) (*domain.Loan, error)
}

// NewMockLoanRepository creates a new MockLoanRepository
func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{NextID: 1}
}

// Create creates a new loan
func (m *MockLoanRepository) Create(loan *domain.Loan) (*domain.Loan, error) {
	if m.CreateFn != nil {
		return m.CreateFn(loan)
	}
	loan.ID = m.NextID
	m.NextID++
	m.Loans = append(m.Loans, loan)
	return loan, nil
}

// GetByUser retrieves the user's loans ordered by ID
func (m *MockLoanRepository) GetByUser(userID int32) ([]*domain.Loan, error) {
	var result []*domain.Loan
	for _, loan := range m.Loans {
		if loan.UserID == userID {
			result = append(result, loan)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SumOutstandingByType sums amount minus paid across the user's loans of one type
func (m *MockLoanRepository) SumOutstandingByType(userID int32, loanType domain.LoanType) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, loan := range m.Loans {
		if loan.UserID == userID && loan.Type == loanType {
			total = total.Add(loan.Remaining())
		}
	}
	return total, nil
}

// AddLoan adds a loan to the mock repository (helper for tests)
func (m *MockLoanRepository) AddLoan(loan *domain.Loan) {
	if loan.ID == 0 {
		loan.ID = m.NextID
		m.NextID++
	} else if loan.ID >= m.NextID {
		m.NextID = loan.ID + 1
	}
	m.Loans = append(m.Loans, loan)
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals  []*domain.Goal
	NextID int32
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{NextID: 1}
}

// Create creates a new goal
func (m *MockGoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = m.NextID
	m.NextID++
	m.Goals = append(m.Goals, goal)
	return goal, nil
}

// GetByUser retrieves the user's goals ordered by ID
func (m *MockGoalRepository) GetByUser(userID int32) ([]*domain.Goal, error) {
	var result []*domain.Goal
	for _, goal := range m.Goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets []*domain.Budget
	// CategoryOwner maps category IDs to owning user IDs so GetByUser can
	// scope results the way the SQL join does
	CategoryOwner map[int32]int32
	NextID        int32
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		CategoryOwner: make(map[int32]int32),
		NextID:        1,
	}
}

// Create creates a new budget, enforcing one budget per category and month
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	for _, existing := range m.Budgets {
		if existing.CategoryID == budget.CategoryID && existing.Month == budget.Month && existing.Year == budget.Year {
			return nil, domain.ErrBudgetExists
		}
	}
	budget.ID = m.NextID
	m.NextID++
	m.Budgets = append(m.Budgets, budget)
	return budget, nil
}

// GetByUser retrieves budgets whose categories belong to the user
func (m *MockBudgetRepository) GetByUser(userID int32) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, budget := range m.Budgets {
		if m.CategoryOwner[budget.CategoryID] == userID {
			result = append(result, budget)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
