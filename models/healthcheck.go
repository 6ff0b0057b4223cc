package models

// HealthCheckResponse is the body returned by the health route
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
