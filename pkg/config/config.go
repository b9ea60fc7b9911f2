package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel           = "warn"
	defaultLogFormat          = "text"
	defaultFirstAccountNumber = 1001
	defaultMaxInputAttempts   = 0
	defaultBankName           = "Banking Application"
)

// Config holds application configuration.
type Config struct {
	LogLevel           slog.Level
	LogFormat          string
	FirstAccountNumber int64
	// MaxInputAttempts caps re-prompts on unparseable input; 0 means unbounded.
	MaxInputAttempts int
	BankName         string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)
	v.SetDefault("FIRST_ACCOUNT_NUMBER", defaultFirstAccountNumber)
	v.SetDefault("MAX_INPUT_ATTEMPTS", defaultMaxInputAttempts)
	v.SetDefault("BANK_NAME", defaultBankName)
	v.AutomaticEnv()

	cfg := &Config{}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelWarn
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, defaultLogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to %s.\n", cfg.LogFormat, defaultLogFormat)
		cfg.LogFormat = defaultLogFormat
	}

	cfg.FirstAccountNumber = v.GetInt64("FIRST_ACCOUNT_NUMBER")
	if cfg.FirstAccountNumber <= 0 {
		log.Printf("Warning: Invalid value for FIRST_ACCOUNT_NUMBER ('%s'). Defaulting to %d.\n", v.GetString("FIRST_ACCOUNT_NUMBER"), defaultFirstAccountNumber)
		cfg.FirstAccountNumber = defaultFirstAccountNumber
	}

	cfg.MaxInputAttempts = v.GetInt("MAX_INPUT_ATTEMPTS")
	if cfg.MaxInputAttempts < 0 {
		log.Printf("Warning: Invalid value for MAX_INPUT_ATTEMPTS ('%s'). Defaulting to unbounded.\n", v.GetString("MAX_INPUT_ATTEMPTS"))
		cfg.MaxInputAttempts = defaultMaxInputAttempts
	}

	cfg.BankName = strings.TrimSpace(v.GetString("BANK_NAME"))
	if cfg.BankName == "" {
		cfg.BankName = defaultBankName
	}

	return cfg, nil
}
