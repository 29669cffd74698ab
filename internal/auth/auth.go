package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/elve-agency/backend/internal/config"
)

var ErrUnauthorized = errors.New("unauthorized")

// Authenticator validates admin credentials. It is stateless: each call
// verifies the presented credential from scratch, with no session store.
type Authenticator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Authenticator {
	return &Authenticator{cfg: cfg}
}

// CheckCredentials compares a username/password pair against the configured
// admin account.
func (a *Authenticator) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Admin.Password)) == 1
	return userOK && passOK
}

// IssueToken creates a signed HS256 token with the username as subject and
// the configured expiry.
func (a *Authenticator) IssueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(a.cfg.Admin.TokenTTL).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(a.cfg.Admin.JWTSecret))
}

// Authenticate accepts either credential form: a signed token is tried
// first, and any verification failure (bad signature, malformed structure,
// past expiry) falls through to a constant comparison against the static
// shared secret.
func (a *Authenticator) Authenticate(credential string) error {
	tok, err := jwt.Parse(credential, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.cfg.Admin.JWTSecret), nil
	})
	if err == nil && tok.Valid {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(a.cfg.Admin.StaticToken)) == 1 {
		return nil
	}
	return ErrUnauthorized
}
