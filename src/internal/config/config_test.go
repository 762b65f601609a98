package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BankServiceURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.RemoteRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, ":8090", cfg.HTTPAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BANK_SERVICE_URL", " https://bank.example.com/api/ ")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://bank.example.com/api", cfg.BankServiceURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"scheme":      {"BANK_SERVICE_URL", "ftp://bank.example.com"},
		"host":        {"BANK_SERVICE_URL", "http://"},
		"log level":   {"LOG_LEVEL", "verbose"},
		"environment": {"APP_ENV", "staging"},
		"rate":        {"REMOTE_RATE_LIMIT", "0"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(kv[0], kv[1])

			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}
