package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/elve-agency/backend/internal/auth"
	"github.com/elve-agency/backend/internal/config"
	"github.com/elve-agency/backend/internal/content"
)

const adminToken = "static-token"

func newTestAPI(t *testing.T) (*gin.Engine, *content.MemoryStore) {
	t.Helper()
	return newTestAPIWithSeedDir(t, t.TempDir())
}

func newTestAPIWithSeedDir(t *testing.T, seedDir string) (*gin.Engine, *content.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Admin: config.AdminConfig{
			Username:    "admin",
			Password:    "adminpassword",
			JWTSecret:   "test-secret",
			StaticToken: adminToken,
			TokenTTL:    24 * time.Hour,
		},
		Seed: config.SeedConfig{Dir: seedDir},
	}
	store := content.NewMemoryStore()
	g := gin.New()
	NewAPI(cfg, store, auth.New(cfg)).Register(g)
	return g, store
}

func doRequest(g *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
