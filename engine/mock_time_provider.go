package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable Clock for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
