// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Backend *backend.Client
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(be *backend.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: be,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and { "status":"ok", "backend":"reachable" }.
// When the backend does not answer: 503 with the error string.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.Backend.Ping(ctx); err != nil {
		h.Log.Error("health-check: backend ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Backend: "unreachable",
			Error:   err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Backend: "reachable",
	})
}
