package numerator

import (
	"context"
	"sync"

	"storekeep/internal/core/apperror"
)

// MockSequencer is a test implementation of Sequencer.
// Use in unit tests to avoid database dependencies.
type MockSequencer struct {
	NextValueFunc func(ctx context.Context, counterName string) (int64, error)

	mu     sync.Mutex
	values map[string]int64
	calls  []string
}

// NewMockSequencer creates a mock seeded with the given counter values.
func NewMockSequencer(seed map[string]int64) *MockSequencer {
	values := make(map[string]int64, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MockSequencer{values: values}
}

// NextValue implements Sequencer.
func (m *MockSequencer) NextValue(ctx context.Context, counterName string) (int64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, counterName)
	m.mu.Unlock()

	if m.NextValueFunc != nil {
		return m.NextValueFunc(ctx, counterName)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[counterName]
	if !ok {
		return 0, apperror.NewNotFound("counter", counterName)
	}
	m.values[counterName] = v + 1
	return v, nil
}

// Calls returns the counter names requested so far.
func (m *MockSequencer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Ensure compile-time interface compliance.
var _ Sequencer = (*MockSequencer)(nil)
