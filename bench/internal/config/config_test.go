package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/bench/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, config.TypeMixed, cfg.BenchType)
	assert.Equal(t, 30*time.Second, cfg.Duration)
	assert.True(t, cfg.NeedsSeed())
}

func TestLoad_Create(t *testing.T) {
	t.Setenv("BENCH_TYPE", "create")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.NeedsSeed())
}

func TestLoad_HotSeedsAtLeastOne(t *testing.T) {
	t.Setenv("BENCH_TYPE", "hot")
	t.Setenv("SEED_COUNT", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.SeedCount)
}

func TestLoad_UnknownType(t *testing.T) {
	t.Setenv("BENCH_TYPE", "soak")

	_, err := config.Load()
	assert.ErrorContains(t, err, "soak")
}
