package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newTestDashboardHandler() (*DashboardHandler, *testutil.MockTransactionRepository, *testutil.MockLoanRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	loanRepo := testutil.NewMockLoanRepository()
	summaryService := service.NewSummaryService(transactionRepo, loanRepo)
	return NewDashboardHandler(summaryService), transactionRepo, loanRepo
}

func TestGetSummary_Success(t *testing.T) {
	e := echo.New()
	handler, transactionRepo, loanRepo := newTestDashboardHandler()

	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      1,
		CategoryID:  1,
		Description: "Salary",
		Amount:      decimal.NewFromInt(1000),
		Type:        domain.TransactionTypeIncome,
		Date:        time.Now().UTC(),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      1,
		CategoryID:  2,
		Description: "Lunch",
		Amount:      decimal.NewFromInt(20),
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	loanRepo.AddLoan(&domain.Loan{
		UserID: 1,
		Name:   "Car",
		Amount: decimal.NewFromInt(5000),
		Paid:   decimal.NewFromInt(1000),
		Type:   domain.LoanTypeBorrowed,
	})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.TotalIncome != 1000 {
		t.Errorf("Expected total income 1000, got %v", response.TotalIncome)
	}
	if response.TotalExpense != 20 {
		t.Errorf("Expected total expense 20, got %v", response.TotalExpense)
	}
	if response.Balance != 980 {
		t.Errorf("Expected balance 980, got %v", response.Balance)
	}
	if response.TotalDebt != 4000 {
		t.Errorf("Expected total debt 4000, got %v", response.TotalDebt)
	}
	if response.TotalLentOutstanding != 0 {
		t.Errorf("Expected lent outstanding 0, got %v", response.TotalLentOutstanding)
	}
}

func TestGetSummary_FreshUser(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestDashboardHandler()

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.TotalIncome != 0 || response.TotalExpense != 0 || response.Balance != 0 {
		t.Error("Expected all totals to be zero for a fresh user")
	}
}

func TestGetSummary_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestDashboardHandler()

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetExpenseByCategory_Success(t *testing.T) {
	e := echo.New()
	handler, transactionRepo, _ := newTestDashboardHandler()

	transactionRepo.CategoryNames[1] = "Food"
	transactionRepo.CategoryNames[2] = "Transport"

	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      1,
		CategoryID:  1,
		Description: "Groceries",
		Amount:      decimal.NewFromInt(80),
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      1,
		CategoryID:  2,
		Description: "Fuel",
		Amount:      decimal.NewFromInt(120),
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})

	req := httptest.NewRequest(http.MethodGet, "/charts/expense-by-category", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetExpenseByCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []CategoryExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(response))
	}
	if response[0].Category != "Transport" || response[0].Total != 120 {
		t.Errorf("Expected Transport/120 first, got %s/%v", response[0].Category, response[0].Total)
	}
}
