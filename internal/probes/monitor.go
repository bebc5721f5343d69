package probes

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Metrics is the slice of the metrics collector the monitor records to
type Metrics interface {
	RecordServiceStatus(ready bool, uptime time.Duration)
}

// Monitor periodically logs process health and records status gauges
type Monitor struct {
	state    *State
	interval time.Duration
	metrics  Metrics
	logger   *zap.Logger

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
}

// NewMonitor creates a new health monitor
func NewMonitor(state *State, interval time.Duration, metrics Metrics, logger *zap.Logger) *Monitor {
	return &Monitor{
		state:    state,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the health monitor
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	go m.run()
}

// Stop stops the health monitor
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopCh)
}

// run is the main health monitoring loop
func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.checkHealth()
		}
	}
}

// checkHealth logs the current snapshot and records status metrics
func (m *Monitor) checkHealth() {
	snap := m.state.Snapshot()

	m.logger.Info("service health check",
		zap.String("status", string(snap.Status)),
		zap.Duration("uptime", snap.Uptime),
		zap.Int("goroutines", snap.Goroutines))

	// Record metrics
	m.metrics.RecordServiceStatus(snap.Status == StatusReady, snap.Uptime)

	// Warn while draining so slow shutdowns are visible
	if snap.Status == StatusDraining {
		m.logger.Warn("service is draining, traffic should be withheld",
			zap.Duration("uptime", snap.Uptime))
	}
}
