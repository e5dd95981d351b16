package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func signClaims(t *testing.T, claims *JWTClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Successfully generate access token", func(t *testing.T) {
		token, err := GenerateAccessToken("m1", "user@example.com", "member", testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken("m1", "user@example.com", "member", "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Fail with empty user id", func(t *testing.T) {
		_, err := GenerateAccessToken("", "user@example.com", "member", testSecret)
		assert.Equal(t, ErrEmptySubject, err)
	})

	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateAccessToken("a1", "test@example.com", "admin", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "a1", claims.UserID)
		assert.Equal(t, "a1", claims.Subject)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "access", claims.TokenType)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.Contains(t, claims.Audience, jwtAudience)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Fail with empty secret", func(t *testing.T) {
		token, _ := GenerateAccessToken("m1", "", "member", testSecret)

		claims, err := ValidateToken(token, "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with wrong secret", func(t *testing.T) {
		token, _ := GenerateAccessToken("m1", "", "member", testSecret)

		claims, err := ValidateToken(token, "wrong-secret")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with invalid token format", func(t *testing.T) {
		claims, err := ValidateToken("invalid.token.format", testSecret)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired token", func(t *testing.T) {
		pastTime := time.Now().Add(-1 * time.Hour)
		tokenString := signClaims(t, &JWTClaims{
			UserID:    "m1",
			Role:      "member",
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(pastTime),
				IssuedAt:  jwt.NewNumericDate(pastTime.Add(-15 * time.Minute)),
			},
		}, testSecret)

		claims, err := ValidateToken(tokenString, testSecret)

		assert.Equal(t, ErrTokenExpired, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with refresh token", func(t *testing.T) {
		tokenString := signClaims(t, &JWTClaims{
			UserID:    "m1",
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)

		claims, err := ValidateToken(tokenString, testSecret)

		assert.Equal(t, ErrInvalidTokenType, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with foreign issuer", func(t *testing.T) {
		tokenString := signClaims(t, &JWTClaims{
			UserID:    "m1",
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)

		_, err := ValidateToken(tokenString, testSecret)
		assert.Error(t, err)
	})
}

func TestTokenExpiration(t *testing.T) {
	t.Run("Access token expires after 15 minutes", func(t *testing.T) {
		token, err := GenerateAccessToken("m1", "user@example.com", "member", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		expectedExpiry := time.Now().Add(AccessTokenTTL)
		diff := claims.ExpiresAt.Time.Sub(expectedExpiry).Abs()
		assert.Less(t, diff, 2*time.Second)
	})

	t.Run("Custom TTL", func(t *testing.T) {
		token, err := GenerateAccessTokenWithTTL("m1", "", "member", testSecret, 24*time.Hour)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		diff := claims.ExpiresAt.Time.Sub(time.Now().Add(24 * time.Hour)).Abs()
		assert.Less(t, diff, 2*time.Second)
	})
}
