package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
	statusDisabled     = "disabled"
)

// HealthController reports the API status together with its database and cache.
type HealthController struct {
	database func() bool
	cache    func() bool
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController takes ping functions. A nil cache check reports the cache as disabled.
func NewHealthController(database, cache func() bool) *HealthController {
	return &HealthController{database: database, cache: cache}
}

// Check handles GET /health. It answers 503 "degraded" when the database does not respond;
// a cache outage only shows in the body.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  probe(h.database, statusDisconnected),
		Cache:     probe(h.cache, statusDisabled),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if response.Database != statusConnected {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

func probe(check func() bool, whenMissing string) string {
	switch {
	case check == nil:
		return whenMissing
	case check():
		return statusConnected
	default:
		return statusDisconnected
	}
}
