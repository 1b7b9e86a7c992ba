package presentation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandlers serves the liveness endpoints.
type StatusHandlers struct {
	now func() time.Time
}

// NewStatusHandlers creates a new StatusHandlers using now for timestamps.
func NewStatusHandlers(now func() time.Time) *StatusHandlers {
	if now == nil {
		now = time.Now
	}
	return &StatusHandlers{now: now}
}

// Health reports that the process is alive.
func (h *StatusHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// Ping is the target of the self-ping timer.
func (h *StatusHandlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// NewRouter builds the gin engine serving the liveness endpoints.
func NewRouter(h *StatusHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)
	r.GET("/ping", h.Ping)

	return r
}
