package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, config.StrategyRandom, cfg.Shortcode.Strategy)
	assert.Equal(t, 7, cfg.Shortcode.Length)
	assert.Equal(t, 6, cfg.Shortcode.MinLength)
	assert.Equal(t, 8, cfg.Shortcode.MaxLength)
	assert.Equal(t, 5, cfg.Shortcode.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Metrics.InfraInterval)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_DSN", "/tmp/links.db")
	t.Setenv("SHORTCODE_STRATEGY", "sqids")
	t.Setenv("SHORTCODE_LENGTH", "8")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/links.db", cfg.SQLite.DSN)
	assert.Equal(t, config.StrategySqids, cfg.Shortcode.Strategy)
	assert.Equal(t, 8, cfg.Shortcode.Length)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("REDIS_KEY_PREFIX=fromfile:\nBASE_URL=http://from.file\n"), 0o600))
	t.Setenv("BASE_URL", "http://from.env")
	// godotenv writes into the process environment; register cleanup through t.Setenv.
	t.Setenv("REDIS_KEY_PREFIX", "")
	require.NoError(t, os.Unsetenv("REDIS_KEY_PREFIX"))

	cfg, err := config.Load(dotenv)
	require.NoError(t, err)

	assert.Equal(t, "http://from.env", cfg.App.BaseURL)
	assert.Equal(t, "fromfile:", cfg.Redis.KeyPrefix)
}

func TestLoad_InvalidShortcodeBounds(t *testing.T) {
	t.Setenv("SHORTCODE_LENGTH", "9")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHORTCODE_LENGTH 9 is outside [6, 8]")
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Store: config.StoreConfig{Driver: config.StoreDriverMemory},
			Shortcode: config.ShortcodeConfig{
				Strategy:    config.StrategyRandom,
				Length:      6,
				MinLength:   6,
				MaxLength:   8,
				MaxAttempts: 3,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "unknown driver",
			mutate:  func(c *config.Config) { c.Store.Driver = "mongo" },
			wantErr: `unknown STORE_DRIVER "mongo"`,
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *config.Config) { c.Shortcode.Strategy = "uuid" },
			wantErr: `unknown SHORTCODE_STRATEGY "uuid"`,
		},
		{
			name:    "max below min",
			mutate:  func(c *config.Config) { c.Shortcode.MaxLength = 5 },
			wantErr: "SHORTCODE_MAX_LENGTH 5 is below SHORTCODE_MIN_LENGTH 6",
		},
		{
			name:    "zero attempts",
			mutate:  func(c *config.Config) { c.Shortcode.MaxAttempts = 0 },
			wantErr: "SHORTCODE_MAX_ATTEMPTS must be positive",
		},
		{
			name:    "tls without cert",
			mutate:  func(c *config.Config) { c.TLS.Enabled = true },
			wantErr: "TLS_CERT_FILE and TLS_KEY_FILE are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	c := config.DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "links", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=links sslmode=require", c.DSN())
}
