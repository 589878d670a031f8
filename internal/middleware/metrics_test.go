package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/metrics"
	"shortlink/internal/middleware"
	"shortlink/internal/middleware/mocks"
)

func captureMetric(t *testing.T) (*mocks.MockHTTPRecorder, *metrics.HTTPMetric) {
	rec := mocks.NewMockHTTPRecorder(t)

	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()

	return rec, &captured
}

func TestMetrics_SuccessfulRequest(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.POST("/api/v1/links", func(c echo.Context) error {
		return c.String(http.StatusCreated, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/links", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/links", captured.Path)
	assert.Equal(t, http.StatusCreated, captured.StatusCode)
	assert.GreaterOrEqual(t, captured.Duration, time.Duration(0))
	assert.Less(t, captured.Duration, time.Second)
	assert.Empty(t, captured.Error)
}

func TestMetrics_PlainError(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/error", func(c echo.Context) error {
		return errors.New("something went wrong")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/error", nil))

	assert.Equal(t, "something went wrong", captured.Error)
	assert.Equal(t, http.StatusInternalServerError, captured.StatusCode)
}

func TestMetrics_HTTPError(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/http-error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/http-error", nil))

	assert.Equal(t, http.StatusNotFound, captured.StatusCode)
}

func TestMetrics_RedirectUsesRouteTemplate(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/:code", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abc123", nil))

	assert.Equal(t, "/:code", captured.Path)
	assert.Equal(t, http.StatusFound, captured.StatusCode)
}

func TestMetrics_DifferentMethods(t *testing.T) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			rec, captured := captureMetric(t)

			e := echo.New()
			e.Use(middleware.Metrics(rec))
			e.Add(method, "/test", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/test", nil))

			require.NotZero(t, captured.Method)
			assert.Equal(t, method, captured.Method)
		})
	}
}

func TestMetrics_FeedsPrometheusRecorder(t *testing.T) {
	r := metrics.NewRecorder()

	e := echo.New()
	e.Use(middleware.Metrics(r))
	e.GET("/:code", func(c echo.Context) error {
		return c.NoContent(http.StatusFound)
	})

	for range 3 {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abc123", nil))
	}

	resp := httptest.NewRecorder()
	r.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, resp.Body.String(), `shortlink_http_requests_total{method="GET",path="/:code",status="302"} 3`)
}
