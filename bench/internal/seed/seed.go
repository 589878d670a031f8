package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type createRequest struct {
	URL string `json:"url"`
}

type createResponse struct {
	ShortCode string `json:"short_code"`
}

// Run creates count links through the public API and returns their codes
// in creation order.
func Run(ctx context.Context, client *http.Client, baseURL string, count, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", count, workers)

	codes := make([]string, count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range count {
		g.Go(func() error {
			code, err := createLink(gctx, client, baseURL, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			codes[i] = code
			if done := progress.Add(1); done%1000 == 0 || int(done) == count {
				fmt.Printf("\rProgress: %d/%d", done, count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func createLink(ctx context.Context, client *http.Client, baseURL, target string) (string, error) {
	body, err := json.Marshal(createRequest{URL: target})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/links", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.ShortCode == "" {
		return "", fmt.Errorf("response has no short_code")
	}
	return result.ShortCode, nil
}
