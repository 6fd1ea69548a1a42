package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

// Version is reported by the service index.
const Version = "1.0.0"

type pinger interface {
	PingContext(ctx context.Context) error
}

type seeder interface {
	Seed(ctx context.Context) error
}

// SystemHandler serves the index, probes and the development seeder.
type SystemHandler struct {
	db        pinger
	seeder    seeder
	apiPrefix string
	now       func() time.Time
}

// NewSystemHandler constructs the handler.
func NewSystemHandler(db pinger, seed seeder, apiPrefix string) *SystemHandler {
	return &SystemHandler{db: db, seeder: seed, apiPrefix: apiPrefix, now: time.Now}
}

// Index godoc
// @Summary Service index
// @Tags System
// @Produce json
// @Success 200 {object} dto.ServiceIndex
// @Router / [get]
func (h *SystemHandler) Index(c *gin.Context) {
	p := h.apiPrefix
	response.OK(c, dto.ServiceIndex{
		Message: "TrashTrack API Server",
		Version: Version,
		Endpoints: map[string]string{
			"users":              p + "/users",
			"pickupSchedules":    p + "/pickup-schedules",
			"educationalContent": p + "/educational-content",
			"reports":            p + "/reports",
			"reportSchedules":    p + "/report-schedules",
			"health":             "/health",
			"seed":               "POST " + p + "/seed (development only)",
		},
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthStatus
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	response.OK(c, dto.HealthStatus{Status: "OK", Timestamp: h.now().UTC().Format(time.RFC3339)})
}

// Ready godoc
// @Summary Readiness probe
// @Description Ping the database
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthStatus
// @Failure 503 {object} response.ErrorBody
// @Router /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		response.Error(c, appErrors.Wrap(err, "DB_UNAVAILABLE", http.StatusServiceUnavailable, "Database unavailable"))
		return
	}
	response.OK(c, dto.HealthStatus{Status: "READY", Timestamp: h.now().UTC().Format(time.RFC3339)})
}

// Seed godoc
// @Summary Reseed database
// @Description Replace every table with the fixture dataset. Refused in production.
// @Tags System
// @Produce json
// @Success 200 {object} response.Message
// @Failure 403 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /seed [post]
func (h *SystemHandler) Seed(c *gin.Context) {
	if err := h.seeder.Seed(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Database seeded successfully")
}
