package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// StoreHealthResponse represents a snapshot store health check response
// @Description Snapshot store health check response
type StoreHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Store connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Store ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// UploadResponse represents the result of ingesting an uploaded export archive
// @Description Upload and ingestion result payload
type UploadResponse struct {
	Success    bool     `json:"success" example:"true"`
	Message    string   `json:"message,omitempty" example:"File processed successfully"`
	ExportDate string   `json:"exportDate,omitempty" example:"12-24-2025"`
	Data       *Dataset `json:"data,omitempty"`  // Parsed record collections
	Stats      *Stats   `json:"stats,omitempty"` // Full-dataset statistics
	Error      string   `json:"error,omitempty" example:""`
}

// RecordsResponse represents a filtered, paginated record listing
// @Description Record listing payload with derived statistics for the filtered view
type RecordsResponse struct {
	Data     []Record `json:"data"`
	Total    int      `json:"total" example:"120"` // Records matching the filter, before pagination
	Page     int      `json:"page" example:"1"`
	PageSize int      `json:"pageSize" example:"50"`
	Stats    any      `json:"stats,omitempty"` // Per-kind stats recomputed over the filtered set
}

// ErrorResponse represents a generic error payload
// @Description Error payload
type ErrorResponse struct {
	Error string `json:"error" example:"No file provided"`
}
