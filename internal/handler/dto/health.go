package dto

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Runtime    string `json:"runtime"`
	TypeScript bool   `json:"typescript"`
	Version    string `json:"version"`
}
