package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	HTTPRequests         uint64
	HTTPServerErrors     uint64
	HTTPDurationTotalNs  int64
	UsersCreated         uint64
	UsersRejectedMissing uint64
	UsersRejectedEmail   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	httpRequests         uint64
	httpServerErrors     uint64
	httpDurationTotalNs  int64
	usersCreated         uint64
	usersRejectedMissing uint64
	usersRejectedEmail   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		HTTPRequests:         atomic.LoadUint64(&m.httpRequests),
		HTTPServerErrors:     atomic.LoadUint64(&m.httpServerErrors),
		HTTPDurationTotalNs:  atomic.LoadInt64(&m.httpDurationTotalNs),
		UsersCreated:         atomic.LoadUint64(&m.usersCreated),
		UsersRejectedMissing: atomic.LoadUint64(&m.usersRejectedMissing),
		UsersRejectedEmail:   atomic.LoadUint64(&m.usersRejectedEmail),
	}
}

// ObserveHTTPRequest counts a finished request.
func (m *InMemoryRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	atomic.AddUint64(&m.httpRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&m.httpServerErrors, 1)
	}
	atomic.AddInt64(&m.httpDurationTotalNs, duration.Nanoseconds())
}

// IncUserCreated increments user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserRejected increments the rejection counter for reason.
func (m *InMemoryRecorder) IncUserRejected(reason string) {
	switch reason {
	case ReasonMissingFields:
		atomic.AddUint64(&m.usersRejectedMissing, 1)
	case ReasonInvalidEmail:
		atomic.AddUint64(&m.usersRejectedEmail, 1)
	}
}
