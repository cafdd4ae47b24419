package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// TokenValidator verifies a bearer token and returns its subject and token ID
type TokenValidator interface {
	Validate(token string) (username string, tokenID uuid.UUID, err error)
}

// UserProvider resolves a token subject to an existing user
type UserProvider interface {
	GetUserByUsername(username string) (*domain.User, error)
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key for the authenticated user's username
	UsernameKey contextKey = "username"
	// TokenIDKey is the context key for the token's unique ID
	TokenIDKey contextKey = "token_id"
)

// AuthMiddleware provides bearer-token validation middleware
type AuthMiddleware struct {
	tokens TokenValidator
	users  UserProvider
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, users UserProvider) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate returns an Echo middleware that validates bearer tokens.
// Every failure path is the same 401 with a Bearer challenge: a missing
// header, a bad signature, and a subject that no longer resolves to a user
// are indistinguishable to the client.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthorized(c, "invalid authorization header format")
			}

			username, tokenID, err := m.tokens.Validate(parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return unauthorized(c, "invalid token")
			}

			user, err := m.users.GetUserByUsername(username)
			if err != nil {
				log.Debug().Err(err).Str("username", username).Msg("Token subject lookup failed")
				return unauthorized(c, "invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UsernameKey, user.Username)
			ctx = context.WithValue(ctx, TokenIDKey, tokenID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, detail)
}

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c echo.Context) int32 {
	if id, ok := c.Request().Context().Value(UserIDKey).(int32); ok {
		return id
	}
	return 0
}

// GetUsername extracts the authenticated user's username from the context
func GetUsername(c echo.Context) string {
	if username, ok := c.Request().Context().Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}

// GetTokenID extracts the token's unique ID from the context
func GetTokenID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(TokenIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
