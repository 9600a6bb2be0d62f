package auth

import (
	"testing"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"customer", "admin"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Access token validates against the access secret and carries roles.
	token, err := svc.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
	assert.Len(t, claims["roles"], 2)

	// Refresh token validates against the refresh secret and has no roles.
	token, err = svc.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "roles")
}

func TestJWTService_ResetTokenIsResetTyped(t *testing.T) {
	cfg := testTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	resetToken, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, resetToken)

	// The reset token shares the access secret but is typed "reset"
	// and carries no roles, so it cannot double as an API credential.
	token, err := svc.ValidateToken(resetToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "reset", claims["type"])
	assert.NotContains(t, claims, "roles")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	cfg := testTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "some_other_secret")
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	cfg := testTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
