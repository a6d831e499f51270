package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daycraft/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Daycraft task service"
	HealthVersion = "1.0.0"
	ServiceName   = "daycraft"
)

func (srv HTTPServer) statusBody(state string) gin.H {
	body := gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
	if srv.calendar != nil {
		body["timezone"] = srv.calendar.Location().String()
	}
	return body
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck runs the readiness probe, usually a store ping.
// @Summary Readiness Check
// @Description Check if the API and its task store can serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readyProbe != nil {
		if err := srv.readyProbe(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, "task store unavailable"))
			return
		}
	}
	response.OK(c, srv.statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
