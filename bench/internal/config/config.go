package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	TypeCreate   = "create"
	TypeRedirect = "redirect"
	TypeMixed    = "mixed"
	TypeHot      = "hot"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SeedCount          int           `env:"SEED_COUNT" envDefault:"10000"`
	SeedWorkers        int           `env:"SEED_WORKERS" envDefault:"0"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Rate               int           `env:"RATE" envDefault:"1000"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"CREATE_RATIO" envDefault:"0.1"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// NeedsSeed reports whether the attack type targets existing links.
func (c *Config) NeedsSeed() bool {
	return c.BenchType != TypeCreate
}

func Load() (*Config, error) {
	_ = godotenv.Load("bench.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	switch cfg.BenchType {
	case TypeCreate, TypeRedirect, TypeMixed, TypeHot:
	default:
		return nil, fmt.Errorf("unknown BENCH_TYPE %q", cfg.BenchType)
	}
	if cfg.BenchType == TypeHot && cfg.SeedCount < 1 {
		cfg.SeedCount = 1
	}
	return &cfg, nil
}
