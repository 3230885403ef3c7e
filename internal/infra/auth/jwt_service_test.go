package auth

import (
	"testing"
	"time"

	"jobmatch/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	return cfg
}

// signTestToken mimics the auth service's token format.
func signTestToken(t *testing.T, secret string, mutate func(claims jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"type": "access",
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"employer"}

	tokenString := signTestToken(t, testAccessSecret, func(claims jwt.MapClaims) {
		claims["sub"] = userID.String()
		claims["roles"] = roles
	})

	claims, err := jwtService.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecretIsRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, "some_other_secret_entirely", nil)

	claims, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredTokenIsRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, func(claims jwt.MapClaims) {
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
	})

	claims, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshTokenTypeIsRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, func(claims jwt.MapClaims) {
		claims["type"] = "refresh"
	})

	claims, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_NonUUIDSubjectIsRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, func(claims jwt.MapClaims) {
		claims["sub"] = "not-a-uuid"
	})

	claims, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
