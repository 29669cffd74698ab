package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/elve-agency/backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Username:    "admin",
			Password:    "adminpassword",
			JWTSecret:   "test-secret",
			StaticToken: "static-token",
			TokenTTL:    24 * time.Hour,
		},
	}
}

func TestCheckCredentials(t *testing.T) {
	a := New(testConfig())
	require.True(t, a.CheckCredentials("admin", "adminpassword"))
	require.False(t, a.CheckCredentials("admin", "wrong"))
	require.False(t, a.CheckCredentials("other", "adminpassword"))
}

func TestIssueAndAuthenticate(t *testing.T) {
	a := New(testConfig())
	tok, err := a.IssueToken("admin")
	require.NoError(t, err)
	require.NoError(t, a.Authenticate(tok))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	a := New(cfg)

	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Admin.JWTSecret))
	require.NoError(t, err)

	require.ErrorIs(t, a.Authenticate(expired), ErrUnauthorized)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	a := New(testConfig())
	claims := jwt.MapClaims{"sub": "admin", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	require.ErrorIs(t, a.Authenticate(forged), ErrUnauthorized)
}

func TestAuthenticate_StaticTokenFallback(t *testing.T) {
	a := New(testConfig())
	require.NoError(t, a.Authenticate("static-token"))
	require.ErrorIs(t, a.Authenticate("not-the-token"), ErrUnauthorized)
}
