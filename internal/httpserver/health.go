package httpserver

import (
	"github.com/gin-gonic/gin"

	"event-calendar-webhook/pkg/response"
)

const (
	HealthMessage = "Event calendar webhook is running"
	HealthVersion = "1.0.0"
	ServiceName   = "event-calendar-webhook"
)

// Statuses reported by /health, /ready and /live.
const (
	StatusHealthy = "healthy"
	StatusReady   = "ready"
	StatusAlive   = "alive"
)

type healthResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

// statusCheck answers a liveness-style check with status. The server has no
// readiness gate beyond being able to route, so all three checks share it.
//
// @Summary     Health, readiness and liveness checks
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /health [get]
// @Router      /ready [get]
// @Router      /live [get]
func (srv HTTPServer) statusCheck(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, healthResp{
			Status:      status,
			Message:     HealthMessage,
			Version:     HealthVersion,
			Service:     ServiceName,
			Environment: srv.environment,
		})
	}
}
