package health

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/venskie03/fokus/pkg/metrics"
)

// MetricsHandler serves the Prometheus registry
type MetricsHandler struct {
	acquired func() int32
	next     http.Handler
}

// NewMetricsHandler creates a metrics handler that samples pool usage on each scrape
func NewMetricsHandler(pool *pgxpool.Pool) *MetricsHandler {
	return &MetricsHandler{
		acquired: func() int32 { return pool.Stat().AcquiredConns() },
		next:     promhttp.Handler(),
	}
}

// Metrics handles GET /metrics
func (m *MetricsHandler) Metrics(c echo.Context) error {
	if m.acquired != nil {
		metrics.DBPoolAcquired.Set(float64(m.acquired()))
	}
	m.next.ServeHTTP(c.Response(), c.Request())
	return nil
}
