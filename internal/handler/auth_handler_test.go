package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

// setupAuthContext populates the request context the way the auth middleware
// would after a successful token validation
func setupAuthContext(c echo.Context, userID int32, username string) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UsernameKey, username)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, uuid.New())
	c.SetRequest(c.Request().WithContext(ctx))
}

func newTestAuthHandler() (*AuthHandler, *service.AuthService) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := service.NewAuthService(userRepo, categoryRepo, service.NewTokenService("test-signing-key"), bcrypt.MinCost)
	return NewAuthHandler(authService), authService
}

func TestRegister_Created(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	body := `{"username": "alice", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Username != "alice" {
		t.Errorf("Expected username 'alice', got %s", response.Username)
	}
	if response.ID == 0 {
		t.Error("Expected a non-zero user ID")
	}
	if strings.Contains(rec.Body.String(), "s3cret") {
		t.Error("Expected the password to never appear in the response")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	for i, expected := range []int{http.StatusCreated, http.StatusBadRequest} {
		body := `{"username": "alice", "password": "s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Register(c); err != nil {
			t.Fatalf("Expected no error on attempt %d, got %v", i, err)
		}
		if rec.Code != expected {
			t.Errorf("Expected status %d on attempt %d, got %d", expected, i, rec.Code)
		}
	}
}

func TestRegister_MissingPassword(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	body := `{"username": "alice"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestToken_Success(t *testing.T) {
	e := echo.New()
	handler, authService := newTestAuthHandler()

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "s3cret")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.AccessToken == "" {
		t.Error("Expected a non-empty access token")
	}
	if response.TokenType != "bearer" {
		t.Errorf("Expected token type 'bearer', got %s", response.TokenType)
	}
}

func TestToken_WrongPassword(t *testing.T) {
	e := echo.New()
	handler, authService := newTestAuthHandler()

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Error("Expected a WWW-Authenticate: Bearer challenge")
	}
}

func TestMe_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, 7, "alice")

	if err := handler.Me(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != 7 || response.Username != "alice" {
		t.Errorf("Expected user 7/alice, got %d/%s", response.ID, response.Username)
	}
}

func TestMe_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Me(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
