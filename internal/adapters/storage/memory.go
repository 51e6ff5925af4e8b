// Package storage implements ports.ReportRepository backends.
package storage

import (
	"context"
	"sort"
	"sync"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
)

// DefaultMemoryCapacity bounds the in-memory store.
const DefaultMemoryCapacity = 500

// Memory keeps reports in process memory, dropping the oldest once full.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	reports  map[string]*domain.Report
	order    []string // insertion order, oldest first
}

var _ ports.ReportRepository = (*Memory)(nil)

// NewMemory crea un repositorio en memoria.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &Memory{
		capacity: capacity,
		reports:  make(map[string]*domain.Report),
	}
}

// Save implementa ports.ReportRepository. Saving an existing id replaces it.
func (m *Memory) Save(ctx context.Context, report *domain.Report) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}
	cp := copyReport(report)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reports[cp.ID]; !exists {
		m.order = append(m.order, cp.ID)
		for len(m.order) > m.capacity {
			delete(m.reports, m.order[0])
			m.order = m.order[1:]
		}
	}
	m.reports[cp.ID] = cp
	return nil
}

// Get implementa ports.ReportRepository.
func (m *Memory) Get(ctx context.Context, id string) (*domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return copyReport(r), nil
}

// List implementa ports.ReportRepository.
func (m *Memory) List(ctx context.Context, limit int) ([]*domain.Report, error) {
	m.mu.RLock()
	out := make([]*domain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, copyReport(r))
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ping implementa ports.ReportRepository.
func (m *Memory) Ping(ctx context.Context) error { return nil }

// Close implementa ports.ReportRepository.
func (m *Memory) Close() error { return nil }

// Len returns the number of stored reports.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}

func copyReport(r *domain.Report) *domain.Report {
	cp := *r
	cp.Keywords = append([]domain.SeedKeyword(nil), r.Keywords...)
	return &cp
}
