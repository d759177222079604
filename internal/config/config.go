package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Zinc        ZincConfig
	API         APIConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
}

// ZincConfig holds the credentials and endpoints for the Zinc retailer API.
// WebhookBaseURL is the base the three webhook suffixes are appended to.
type ZincConfig struct {
	APIKey         string
	BaseURL        string
	WebhookBaseURL string
	TimeoutSeconds int
}

type APIConfig struct {
	AdminKeyHash  string
	EncryptionKey string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ZINC_API_URL", "https://api.zinc.io/v1")
	viper.SetDefault("ZINC_TIMEOUT_SECONDS", 30)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:          getEnvOrViper("DB_HOST", "localhost"),
			Port:          getEnvOrViper("DB_PORT", "5432"),
			User:          getEnvOrViper("DB_USER", "postgres"),
			Password:      getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:        getEnvOrViper("DB_NAME", "taxapi"),
			SSLMode:       getEnvOrViper("DB_SSLMODE", "disable"),
			MigrationsDir: getEnvOrViper("DB_MIGRATIONS_DIR", "migrations"),
		},
		Zinc: ZincConfig{
			APIKey:         getEnvOrViper("ZINC_API_KEY", ""),
			BaseURL:        getEnvOrViper("ZINC_API_URL", "https://api.zinc.io/v1"),
			WebhookBaseURL: getEnvOrViper("MAILER_WEBHOOK", ""),
			TimeoutSeconds: viper.GetInt("ZINC_TIMEOUT_SECONDS"),
		},
		API: APIConfig{
			AdminKeyHash:  getEnvOrViper("ADMIN_API_KEY_HASH", ""),
			EncryptionKey: getEnvOrViper("API_ENCRYPTER", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Zinc.APIKey == "" {
		return nil, fmt.Errorf("ZINC_API_KEY is required")
	}
	if cfg.Zinc.WebhookBaseURL == "" {
		return nil, fmt.Errorf("MAILER_WEBHOOK is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
