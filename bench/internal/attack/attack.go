package attack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"shortlink/bench/internal/config"
)

type Config struct {
	BaseURL     string
	Codes       []string
	Rate        int
	Duration    time.Duration
	CreateRatio float64
	Type        string
	Connections int
	MaxWorkers  uint64
	Client      *http.Client
	Out         io.Writer
}

var ErrClickMismatch = errors.New("click count does not match redirects served")

func Run(ctx context.Context, cfg *Config) error {
	targeter, err := newTargeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Fprintf(cfg.Out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	var redirects int64

	results := attacker.Attack(targeter, rate, cfg.Duration, cfg.Type)
loop:
	for {
		select {
		case <-ctx.Done():
			attacker.Stop()
			break loop
		case res, ok := <-results:
			if !ok {
				break loop
			}
			metrics.Add(res)
			if res.Code == http.StatusFound {
				redirects++
			}
		}
	}
	metrics.Close()

	if err := vegeta.NewTextReporter(&metrics).Report(cfg.Out); err != nil {
		return err
	}

	if cfg.Type == config.TypeHot {
		return verifyHot(ctx, cfg, redirects)
	}
	return nil
}

func newTargeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case config.TypeCreate:
		return CreateTargeter(cfg.BaseURL), nil
	case config.TypeRedirect:
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("redirect attack requires seeded codes")
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes), nil
	case config.TypeMixed:
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("mixed attack requires seeded codes")
		}
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio), nil
	case config.TypeHot:
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("hot attack requires a seeded code")
		}
		return HotTargeter(cfg.BaseURL, cfg.Codes[0]), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

// verifyHot checks that the hot link's counter saw exactly the redirects
// the attack received. Seeded links start at zero clicks.
func verifyHot(ctx context.Context, cfg *Config, redirects int64) error {
	clicks, err := FetchClicks(ctx, cfg.Client, cfg.BaseURL, cfg.Codes[0])
	if err != nil {
		return fmt.Errorf("failed to verify hot link: %w", err)
	}

	fmt.Fprintf(cfg.Out, "Hot link %s: redirects=%d clicks=%d\n", cfg.Codes[0], redirects, clicks)
	if clicks != redirects {
		return fmt.Errorf("%w: redirects=%d clicks=%d", ErrClickMismatch, redirects, clicks)
	}
	return nil
}

func FetchClicks(ctx context.Context, client *http.Client, baseURL, code string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/links/"+code, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var link struct {
		Clicks int64 `json:"clicks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return 0, err
	}
	return link.Clicks, nil
}
