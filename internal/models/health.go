package models

// HealthResponse represents a health check response
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
