package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "elve_agency_test")
	os.Setenv("ADMIN_USERNAME", "admin")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Admin.Username == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Admin.TokenTTL.Hours() != 24 {
		t.Fatalf("expected default 24h token TTL, got %v", cfg.Admin.TokenTTL)
	}
}
