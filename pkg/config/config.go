package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	AppVersion   string

	// CORSOrigins is a comma-separated origin list; "*" allows all origins.
	CORSOrigins string

	// RateLimit uses the ulule/limiter format, e.g. "300-M" or "10-S".
	RateLimit string

	// Resend email provider. Email endpoints report a configuration error
	// when the API key is empty.
	ResendAPIKey string
	SenderEmail  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("SENDER_EMAIL", "onboarding@resend.dev")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("PGSQL_URL"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		AppVersion:   viper.GetString("APP_VERSION"),
		CORSOrigins:  viper.GetString("CORS_ORIGINS"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
		ResendAPIKey: viper.GetString("RESEND_API_KEY"),
		SenderEmail:  viper.GetString("SENDER_EMAIL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set. Email endpoints will report the service as not configured.")
	}

	return cfg, nil
}
