package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"

	StrategyRandom = "random"
	StrategySqids  = "sqids"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Store      StoreConfig
	Database   DatabaseConfig
	SQLite     SQLiteConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Shortcode  ShortcodeConfig
	Validation ValidationConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
	App        AppConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host             string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port             int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections   int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout      time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout  time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlink"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"25"`
	MinConns int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type SQLiteConfig struct {
	// DSN is a local file path for modernc.org/sqlite or a libsql:// URL
	// for a remote libSQL server.
	DSN string `env:"SQLITE_DSN" envDefault:"shortlink.db"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"shortlink:"`
}

type CacheConfig struct {
	Enabled     bool `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int  `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
}

type ShortcodeConfig struct {
	Strategy    string `env:"SHORTCODE_STRATEGY" envDefault:"random"`
	Length      int    `env:"SHORTCODE_LENGTH" envDefault:"7"`
	MinLength   int    `env:"SHORTCODE_MIN_LENGTH" envDefault:"6"`
	MaxLength   int    `env:"SHORTCODE_MAX_LENGTH" envDefault:"8"`
	MaxAttempts int    `env:"SHORTCODE_MAX_ATTEMPTS" envDefault:"5"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type MetricsConfig struct {
	Enabled       bool          `env:"METRICS_ENABLED" envDefault:"true"`
	Path          string        `env:"METRICS_PATH" envDefault:"/metrics"`
	InfraInterval time.Duration `env:"METRICS_INFRA_INTERVAL" envDefault:"10s"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	sc := c.Shortcode
	if sc.MinLength < 1 {
		errs = append(errs, fmt.Errorf("SHORTCODE_MIN_LENGTH must be positive, got %d", sc.MinLength))
	}
	if sc.MaxLength < sc.MinLength {
		errs = append(errs, fmt.Errorf("SHORTCODE_MAX_LENGTH %d is below SHORTCODE_MIN_LENGTH %d", sc.MaxLength, sc.MinLength))
	}
	if sc.Length < sc.MinLength || sc.Length > sc.MaxLength {
		errs = append(errs, fmt.Errorf("SHORTCODE_LENGTH %d is outside [%d, %d]", sc.Length, sc.MinLength, sc.MaxLength))
	}
	if sc.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("SHORTCODE_MAX_ATTEMPTS must be positive, got %d", sc.MaxAttempts))
	}
	switch sc.Strategy {
	case StrategyRandom, StrategySqids:
	default:
		errs = append(errs, fmt.Errorf("unknown SHORTCODE_STRATEGY %q", sc.Strategy))
	}

	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverRedis, StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}

	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED"))
	}

	return errors.Join(errs...)
}
