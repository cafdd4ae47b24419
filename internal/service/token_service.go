package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// TokenService issues and validates signed identity assertions. The signing
// key is injected once at startup; rotating it invalidates every outstanding
// token. Tokens carry no expiry claim and stay valid as long as the key does.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given HS256 signing key
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token bound to the given username
func (s *TokenService) Issue(username string) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:  username,
		Id:       uuid.NewString(),
		IssuedAt: time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the token signature and returns the bound username and
// token ID. A bad signature, a malformed token, and a missing subject all
// collapse into domain.ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (string, uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", uuid.Nil, domain.ErrInvalidToken
	}

	tokenID, err := uuid.Parse(claims.Id)
	if err != nil {
		return "", uuid.Nil, domain.ErrInvalidToken
	}

	return claims.Subject, tokenID, nil
}
