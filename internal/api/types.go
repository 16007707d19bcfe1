package api

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

const (
	errInvalidRequest   = "invalid_request"
	errProcessingFailed = "processing_failed"

	serviceName = "suara"
)
