package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const defaultBankServiceURL = "http://localhost:8080"
const defaultRequestTimeout = 5 * time.Second
const defaultRemoteRateLimit = 10
const defaultRemoteRateBurst = 5
const defaultLogLevel = "info"
const defaultEnvironment = "development"
const defaultHTTPAddr = ":8090"

type Config struct {
	BankServiceURL  string        `mapstructure:"BANK_SERVICE_URL" validate:"required,url"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gt=0"`
	RemoteRateLimit int           `mapstructure:"REMOTE_RATE_LIMIT" validate:"min=1"`
	RemoteRateBurst int           `mapstructure:"REMOTE_RATE_BURST" validate:"min=1"`
	LogLevel        string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Environment     string        `mapstructure:"APP_ENV" validate:"oneof=development test production"`
	SeedDemoData    bool          `mapstructure:"SEED_DEMO_DATA"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required"`
}

// Load reads configuration from the environment, falling back to defaults.
// An optional config.yaml in the working directory is merged underneath.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()

	v.SetDefault("BANK_SERVICE_URL", defaultBankServiceURL)
	v.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("REMOTE_RATE_LIMIT", defaultRemoteRateLimit)
	v.SetDefault("REMOTE_RATE_BURST", defaultRemoteRateBurst)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("APP_ENV", defaultEnvironment)
	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	baseURL, err := normalizeBaseURL(cfg.BankServiceURL)
	if err != nil {
		return Config{}, err
	}
	cfg.BankServiceURL = baseURL

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, formatValidationErrors(err)
	}

	return cfg, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("BANK_SERVICE_URL is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("BANK_SERVICE_URL is invalid: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("BANK_SERVICE_URL must use http or https")
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("BANK_SERVICE_URL must include a host")
	}

	return trimmed, nil
}

func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
