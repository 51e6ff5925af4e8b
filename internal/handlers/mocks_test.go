package handlers

import (
	"context"
	"sync"

	"crackbench/internal/core/domain"
)

type mockRunner struct {
	mu     sync.Mutex
	calls  int
	last   domain.AnalysisRequest
	report *domain.Report
	err    error
}

func (m *mockRunner) Run(_ context.Context, req domain.AnalysisRequest) (*domain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRunner) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
