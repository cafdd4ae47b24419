package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newTestTransactionHandler() (*TransactionHandler, *testutil.MockTransactionRepository, *testutil.MockCategoryRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo)
	return NewTransactionHandler(transactionService), transactionRepo, categoryRepo
}

func TestCreateTransaction_Created(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newTestTransactionHandler()
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: 1, Name: "Food"})

	body := `{"description": "Groceries", "amount": 42.5, "type": "expense", "category_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Description != "Groceries" {
		t.Errorf("Expected description 'Groceries', got %s", response.Description)
	}
	if response.Amount != 42.5 {
		t.Errorf("Expected amount 42.5, got %v", response.Amount)
	}
	if response.Category.Name != "Food" {
		t.Errorf("Expected category 'Food', got %s", response.Category.Name)
	}
	if response.Date == "" {
		t.Error("Expected a date to be set")
	}
}

// Amounts sent as JSON strings are accepted too
func TestCreateTransaction_StringAmount(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newTestTransactionHandler()
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: 1, Name: "Food"})

	body := `{"description": "Groceries", "amount": "19.99", "type": "expense", "category_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTransaction_UnownedCategory(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newTestTransactionHandler()
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: 2, Name: "Food"})

	body := `{"description": "Groceries", "amount": 10, "type": "expense", "category_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newTestTransactionHandler()
	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: 1, Name: "Food"})

	body := `{"description": "Groceries", "amount": 10, "type": "transfer", "category_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateTransaction_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestTransactionHandler()

	body := `{"description": "Groceries", "amount": 10, "type": "expense", "category_id": 1}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetTransactions_SkipAndLimitParams(t *testing.T) {
	e := echo.New()
	handler, transactionRepo, _ := newTestTransactionHandler()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 150; i++ {
		transactionRepo.AddTransaction(&domain.Transaction{
			UserID:      1,
			CategoryID:  1,
			Description: "tx",
			Amount:      decimal.NewFromInt(1),
			Type:        domain.TransactionTypeExpense,
			Date:        base.Add(time.Duration(i) * time.Hour),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/transactions?skip=100&limit=50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 50 {
		t.Errorf("Expected 50 transactions, got %d", len(response))
	}
}

func TestGetTransactions_DefaultLimit(t *testing.T) {
	e := echo.New()
	handler, transactionRepo, _ := newTestTransactionHandler()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 150; i++ {
		transactionRepo.AddTransaction(&domain.Transaction{
			UserID:      1,
			CategoryID:  1,
			Description: "tx",
			Amount:      decimal.NewFromInt(1),
			Type:        domain.TransactionTypeExpense,
			Date:        base.Add(time.Duration(i) * time.Hour),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != domain.DefaultListLimit {
		t.Errorf("Expected %d transactions, got %d", domain.DefaultListLimit, len(response))
	}
}

func TestGetTransactions_BadSkipParam(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestTransactionHandler()

	req := httptest.NewRequest(http.MethodGet, "/transactions?skip=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 1, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
