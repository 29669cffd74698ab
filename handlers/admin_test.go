package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestLogin_IssuesWorkingToken(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"adminpassword"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	w = doRequest(g, http.MethodGet, "/api/admin/verify", "", token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_WrongCredentials(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, decodeBody(t, w), "error")

	w = doRequest(g, http.MethodPost, "/api/admin/login", `{"username":"admin"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify_ExpiredTokenRejected(t *testing.T) {
	g, _ := newTestAPI(t)

	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := doRequest(g, http.MethodGet, "/api/admin/verify", "", expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify_StaticToken(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodGet, "/api/admin/verify", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodGet, "/api/admin/verify", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
