package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/userecho/userecho/internal/handler/dto"
)

// HealthHandler manages the health check endpoint.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health reports that the process is up along with runtime details.
// No dependency checks; the service has none.
//
// GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	data := dto.HealthData{
		Status:     "OK",
		Timestamp:  dto.FormatTimestamp(h.now()),
		Runtime:    "Go",
		TypeScript: false,
		Version:    runtime.Version(),
	}
	writeJSON(w, http.StatusOK, dto.OK(data))
}
