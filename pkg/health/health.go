// Package health provides readiness tracking for the pagewindow HTTP server.
package health

import (
	"log/slog"
	"sync"
	"time"
)

// Status represents the current health status.
type Status string

const (
	// StatusHealthy indicates the server is accepting requests.
	StatusHealthy Status = "healthy"
	// StatusDraining indicates the server is shutting down.
	StatusDraining Status = "draining"
	// StatusUnknown indicates the server has not started listening yet.
	StatusUnknown Status = "unknown"
)

// Tracker records the lifecycle of the HTTP server.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	status    Status
	since     time.Time
	startedAt time.Time
	logger    *slog.Logger
	now       func() time.Time
}

// Info contains current health information.
type Info struct {
	Status    Status    `json:"status"`
	Since     time.Time `json:"since"`
	StartedAt time.Time `json:"started_at,omitzero"`
	Uptime    string    `json:"uptime,omitempty"`
}

// NewTracker creates a tracker in the unknown state.
func NewTracker(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		status: StatusUnknown,
		logger: logger,
		now:    time.Now,
	}
	t.since = t.now()
	return t
}

// MarkReady switches the tracker to healthy.
func (t *Tracker) MarkReady() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.startedAt.IsZero() {
		t.startedAt = now
	}
	t.setStatus(StatusHealthy, now)
}

// MarkDraining switches the tracker to draining; it never returns to healthy.
func (t *Tracker) MarkDraining() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setStatus(StatusDraining, t.now())
}

func (t *Tracker) setStatus(s Status, now time.Time) {
	if t.status == s || t.status == StatusDraining {
		return
	}
	t.logger.Debug("health status changed",
		slog.String("from", string(t.status)),
		slog.String("to", string(s)))
	t.status = s
	t.since = now
}

// IsHealthy returns true if the server is accepting requests.
func (t *Tracker) IsHealthy() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status == StatusHealthy
}

// GetHealthInfo returns current health information.
func (t *Tracker) GetHealthInfo() Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info := Info{
		Status:    t.status,
		Since:     t.since,
		StartedAt: t.startedAt,
	}
	if !t.startedAt.IsZero() {
		info.Uptime = t.now().Sub(t.startedAt).Truncate(time.Second).String()
	}
	return info
}
