// Package slideshow manages the automatic rotation cadence.
package slideshow

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultInterval is the rotation period used when none is configured.
	DefaultInterval = 3 * time.Second
)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Manager tracks whether the rotation is running and at what interval. The
// rotation ticker itself lives for the whole process; while paused its ticks
// are simply ignored.
type Manager struct {
	mu                 sync.Mutex
	isPaused           bool
	wasPlayingBeforeOp bool // Tracks if the rotation was playing before a temp pause
	interval           time.Duration
	logger             LoggerFunc
}

// NewManager creates a Manager. An interval <= 0 falls back to
// DefaultInterval. The rotation starts in the playing state.
func NewManager(interval time.Duration, logger LoggerFunc) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manager{
		interval: interval,
		logger:   logger,
	}
}

// TogglePlayPause toggles the play/pause state.
func (m *Manager) TogglePlayPause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isPaused = !m.isPaused
	m.wasPlayingBeforeOp = false // User toggle overrides any operation-specific state
	m.log(fmt.Sprintf("Rotation %s.", map[bool]string{true: "paused", false: "playing"}[m.isPaused]))
}

// Pause forces the rotation to pause. If forOperation is true, it remembers
// whether the rotation was playing so ResumeAfterOperation can restore it.
func (m *Manager) Pause(forOperation bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if forOperation {
		m.wasPlayingBeforeOp = !m.isPaused
	}
	m.isPaused = true
}

// ResumeAfterOperation resumes the rotation only if it was playing before
// Pause(true) was called.
func (m *Manager) ResumeAfterOperation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.wasPlayingBeforeOp {
		m.isPaused = false
	}
	m.wasPlayingBeforeOp = false
}

// IsPaused returns true if the rotation is currently paused.
func (m *Manager) IsPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isPaused
}

// Interval returns the configured rotation interval.
func (m *Manager) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

func (m *Manager) log(msg string) {
	if m.logger != nil {
		m.logger(msg)
	}
}
