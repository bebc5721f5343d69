package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbarriuso/hellosvc/internal/probes"
)

// StatusResponse is the payload returned by the probe endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleHello handles requests for the primary content route
func (s *Server) handleHello(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}

// handleHealth reports liveness. It answers 200 for the whole process
// lifetime, including the drain phase, so the orchestrator never
// restarts a replica that is still finishing in-flight work.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "healthy",
		Message: "Service is running",
	})
}

// handleReady reports readiness. Outside the ready phase it answers
// 503, which withholds traffic routing without triggering a restart.
func (s *Server) handleReady(c *gin.Context) {
	switch s.probes.CurrentStatus() {
	case probes.StatusReady:
		c.JSON(http.StatusOK, StatusResponse{
			Status:  "ready",
			Message: "Service is ready to accept traffic",
		})
	case probes.StatusDraining:
		c.JSON(http.StatusServiceUnavailable, StatusResponse{
			Status:  "draining",
			Message: "Service is shutting down",
		})
	default:
		c.JSON(http.StatusServiceUnavailable, StatusResponse{
			Status:  "starting",
			Message: "Service is not ready yet",
		})
	}
}
