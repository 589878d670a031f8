package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

func CreateTargeter(baseURL string) vegeta.Targeter {
	url := baseURL + "/api/v1/links"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = jsonHeader
		t.Body = fmt.Appendf(nil, `{"url":"https://example.com/%d"}`, urlCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + code
		t.Header = nil
		t.Body = nil
		return nil
	}
}

// HotTargeter sends every request to the same code, concentrating all
// increments on a single record.
func HotTargeter(baseURL, code string) vegeta.Targeter {
	url := baseURL + "/" + code

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = nil
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL)
	redirectTarget := RedirectTargeter(baseURL, codes)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
