package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// NewHealthHandler returns a static health check handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service status"
// @Router /trms/health [get]
func NewHealthHandler(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:  "healthy",
			Service: service,
			Version: version,
		})
	}
}
