package service

import (
	"strings"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
	tokens       *TokenService
	bcryptCost   int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, categoryRepo domain.CategoryRepository, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
	}
}

// Register creates a new user with a bcrypt password hash and seeds the
// default categories. The plaintext password is never stored.
func (s *AuthService) Register(username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrNameRequired
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrNameTooLong
	}
	if password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.CreateMany(user.ID, domain.DefaultCategoryNames); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

// GetUserByUsername resolves a token subject to an existing user
func (s *AuthService) GetUserByUsername(username string) (*domain.User, error) {
	return s.userRepo.GetByUsername(username)
}
