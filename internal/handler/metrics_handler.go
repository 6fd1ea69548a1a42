package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type metricsExporter interface {
	Handler() http.Handler
}

// MetricsHandler exposes the Prometheus endpoint.
type MetricsHandler struct {
	metrics metricsExporter
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics metricsExporter) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
