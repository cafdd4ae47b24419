package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(userRepo *testutil.MockUserRepository, categoryRepo *testutil.MockCategoryRepository) *AuthService {
	// MinCost keeps the bcrypt work factor cheap in tests
	return NewAuthService(userRepo, categoryRepo, NewTokenService("test-signing-key"), bcrypt.MinCost)
}

func TestRegister_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	user, err := authService.Register("alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("Expected username 'alice', got %s", user.Username)
	}
	if user.PasswordHash == "s3cret" {
		t.Error("Expected password to be hashed, got plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("Expected stored hash to verify against the password, got %v", err)
	}
}

func TestRegister_SeedsDefaultCategories(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	user, err := authService.Register("alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	categories, err := categoryRepo.GetByUser(user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(categories) != len(domain.DefaultCategoryNames) {
		t.Fatalf("Expected %d default categories, got %d", len(domain.DefaultCategoryNames), len(categories))
	}
	for i, name := range domain.DefaultCategoryNames {
		if categories[i].Name != name {
			t.Errorf("Expected category %d to be %q, got %q", i, name, categories[i].Name)
		}
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := authService.Register("alice", "another")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_EmptyUsername(t *testing.T) {
	authService := newTestAuthService(testutil.NewMockUserRepository(), testutil.NewMockCategoryRepository())

	_, err := authService.Register("   ", "s3cret")
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestRegister_UsernameTooLong(t *testing.T) {
	authService := newTestAuthService(testutil.NewMockUserRepository(), testutil.NewMockCategoryRepository())

	_, err := authService.Register(strings.Repeat("a", domain.MaxUsernameLength+1), "s3cret")
	if !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	authService := newTestAuthService(testutil.NewMockUserRepository(), testutil.NewMockCategoryRepository())

	_, err := authService.Register("alice", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	token, err := authService.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected a non-empty token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := authService.Login("alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

// An unknown username and a wrong password must be indistinguishable.
func TestLogin_UnknownUserSameError(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	authService := newTestAuthService(userRepo, categoryRepo)

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, unknownErr := authService.Login("nobody", "s3cret")
	_, wrongErr := authService.Login("alice", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("Expected identical errors, got %q and %q", unknownErr, wrongErr)
	}
}

func TestLogin_TokenRoundTrips(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	tokens := NewTokenService("test-signing-key")
	authService := NewAuthService(userRepo, categoryRepo, tokens, bcrypt.MinCost)

	if _, err := authService.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	token, err := authService.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	username, _, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if username != "alice" {
		t.Errorf("Expected subject 'alice', got %s", username)
	}
}
