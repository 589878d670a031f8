package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request, labelled by route template so
// short codes never become label values.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			m := metrics.HTTPMetric{
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "unmatched"),
				StatusCode: c.Response().Status,
				Duration:   time.Since(start),
			}

			if err != nil {
				m.Error = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				} else if !c.Response().Committed {
					m.StatusCode = http.StatusInternalServerError
				}
			}

			recorder.RecordHTTP(m)
			return err
		}
	}
}
