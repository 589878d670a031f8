package attack_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/bench/internal/attack"
)

func TestFetchClicks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/links/abc123", r.URL.Path)
		_, _ = io.WriteString(w, `{"short_code":"abc123","clicks":42}`)
	}))
	defer srv.Close()

	clicks, err := attack.FetchClicks(context.Background(), srv.Client(), srv.URL, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), clicks)
}

func TestFetchClicks_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := attack.FetchClicks(context.Background(), srv.Client(), srv.URL, "nothere")
	assert.ErrorContains(t, err, "404")
}

// clickServer redirects /:code and reports the redirect count, plus skew,
// as the link's clicks.
func clickServer(skew int64) *httptest.Server {
	var clicks atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/links/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"clicks":`+strconv.FormatInt(clicks.Load()+skew, 10)+`}`)
	})
	mux.HandleFunc("GET /{code}", func(w http.ResponseWriter, r *http.Request) {
		clicks.Add(1)
		http.Redirect(w, r, "https://example.com", http.StatusFound)
	})
	return httptest.NewServer(mux)
}

func runHot(t *testing.T, srv *httptest.Server) error {
	t.Helper()
	return attack.Run(context.Background(), &attack.Config{
		BaseURL:     srv.URL,
		Codes:       []string{"hot001"},
		Rate:        50,
		Duration:    200 * time.Millisecond,
		Type:        "hot",
		Connections: 8,
		Client:      srv.Client(),
		Out:         io.Discard,
	})
}

func TestRun_HotVerifiesClicks(t *testing.T) {
	srv := clickServer(0)
	defer srv.Close()

	require.NoError(t, runHot(t, srv))
}

func TestRun_HotDetectsMismatch(t *testing.T) {
	srv := clickServer(3)
	defer srv.Close()

	assert.ErrorIs(t, runHot(t, srv), attack.ErrClickMismatch)
}

func TestRun_RequiresCodes(t *testing.T) {
	err := attack.Run(context.Background(), &attack.Config{Type: "redirect", Out: io.Discard})
	assert.ErrorContains(t, err, "seeded codes")
}

func TestRun_UnknownType(t *testing.T) {
	err := attack.Run(context.Background(), &attack.Config{Type: "soak", Out: io.Discard})
	assert.ErrorContains(t, err, "unknown attack type")
}
