// Package service defines interfaces for core, stateless domain logic
// and for the external collaborators the pipeline consumes. These keep
// providers and algorithms out of the use case layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateResetToken creates a short-lived single-purpose token for
	// completing a password reset. It carries no roles and is not
	// accepted as an API credential.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
