// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Rejection reasons for IncUserRejected.
const (
	ReasonMissingFields = "missing_fields"
	ReasonInvalidEmail  = "invalid_email"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory.
type Recorder interface {
	// HTTP metrics
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)

	// User creation metrics
	IncUserCreated()
	IncUserRejected(reason string)
}
