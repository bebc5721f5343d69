package probes

import (
	"runtime"
	"sync"
	"time"
)

// Status represents the lifecycle phase of the service process
type Status string

const (
	StatusStarting Status = "starting"
	StatusReady    Status = "ready"
	StatusDraining Status = "draining"
)

// State tracks the process phase consulted by the readiness endpoint
type State struct {
	startedAt time.Time

	mu     sync.RWMutex
	status Status
}

// Snapshot is a point-in-time view of process health
type Snapshot struct {
	Status     Status
	StartedAt  time.Time
	Uptime     time.Duration
	Goroutines int
	Timestamp  time.Time
}

// NewState creates process state in the starting phase
func NewState() *State {
	return &State{
		startedAt: time.Now(),
		status:    StatusStarting,
	}
}

// MarkReady records that the listener is bound and traffic may be routed
func (s *State) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Draining is terminal
	if s.status == StatusDraining {
		return
	}
	s.status = StatusReady
}

// MarkDraining records that shutdown has begun; there is no way back
func (s *State) MarkDraining() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusDraining
}

// Ready reports whether the process should receive traffic
func (s *State) Ready() bool {
	return s.CurrentStatus() == StatusReady
}

// CurrentStatus returns the current lifecycle phase
func (s *State) CurrentStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

// Uptime returns the time elapsed since process start
func (s *State) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// Snapshot returns the current health snapshot
func (s *State) Snapshot() Snapshot {
	now := time.Now()

	return Snapshot{
		Status:     s.CurrentStatus(),
		StartedAt:  s.startedAt,
		Uptime:     now.Sub(s.startedAt),
		Goroutines: runtime.NumGoroutine(),
		Timestamp:  now,
	}
}
