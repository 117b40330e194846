package middleware

import (
	"net/http"
	"time"

	domainerrors "chess/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HTTPMetrics receives one observation per served request.
type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	recorder HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle times the request and records it once the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write, since it runs after this middleware.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
