package keywords

import (
	"context"
	"sync"

	"crackbench/internal/core/domain"
)

// mockSource implements ports.KeywordSource for testing
type mockSource struct {
	mu     sync.Mutex
	words  []domain.SeedKeyword
	err    error
	calls  int
	closed bool
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.SeedKeyword(nil), m.words...), nil
}

func (m *mockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockSource) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
