package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Admin   AdminConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// AdminConfig carries the admin credentials and both accepted bearer
// credential forms: the JWT signing secret and the static shared token.
type AdminConfig struct {
	Username    string
	Password    string
	JWTSecret   string
	StaticToken string
	TokenTTL    time.Duration
}

type SeedConfig struct {
	Dir string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "elve_agency")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "adminpassword")
	viper.SetDefault("ADMIN_TOKEN", "default_admin_token")
	viper.SetDefault("ADMIN_TOKEN_TTL", 24)
	viper.SetDefault("SEED_DATA_DIR", "data")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      getEnvOrPanic("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Admin: AdminConfig{
			Username:    viper.GetString("ADMIN_USERNAME"),
			Password:    viper.GetString("ADMIN_PASSWORD"),
			JWTSecret:   os.Getenv("JWT_SECRET"),
			StaticToken: viper.GetString("ADMIN_TOKEN"),
			TokenTTL:    time.Duration(viper.GetInt("ADMIN_TOKEN_TTL")) * time.Hour,
		},
		Seed: SeedConfig{
			Dir: viper.GetString("SEED_DATA_DIR"),
		},
	}

	// Basic validation
	if cfg.Admin.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; set a secure value in production")
		cfg.Admin.JWTSecret = "secret_key"
	}

	return cfg, nil
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
