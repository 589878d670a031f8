package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortlink/bench/internal/attack"
	"shortlink/bench/internal/config"
	"shortlink/bench/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.SeedTimeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
			MaxIdleConnsPerHost: 64,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	var codes []string
	if cfg.NeedsSeed() {
		codes, err = seed.Run(ctx, client, cfg.BaseURL, cfg.SeedCount, cfg.SeedWorkers)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(ctx, &attack.Config{
		BaseURL:     cfg.BaseURL,
		Codes:       codes,
		Rate:        cfg.Rate,
		Duration:    cfg.Duration,
		CreateRatio: cfg.CreateRatio,
		Type:        cfg.BenchType,
		Connections: cfg.Connections,
		MaxWorkers:  cfg.MaxWorkers,
		Client:      client,
		Out:         os.Stdout,
	})
}
