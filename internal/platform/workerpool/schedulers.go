// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"fmt"
	"sort"
	"strings"
)

// ParseScheduler returns the scheduler with the given name.
func ParseScheduler(name string) (Scheduler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fifo":
		return NewFIFOScheduler(), nil
	case "priority":
		return NewPriorityScheduler(), nil
	case "weighted":
		return NewWeightedScheduler(), nil
	default:
		return nil, fmt.Errorf("unknown scheduler %q", name)
	}
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// PriorityScheduler ordena tareas por prioridad (mayor primero).
type PriorityScheduler struct{}

// NewPriorityScheduler crea un scheduler basado en prioridad.
func NewPriorityScheduler() *PriorityScheduler {
	return &PriorityScheduler{}
}

// Schedule ordena por prioridad descendente.
func (s *PriorityScheduler) Schedule(tasks []Task) []int {
	order := indices(len(tasks))
	sort.SliceStable(order, func(i, j int) bool {
		a, b := tasks[order[i]], tasks[order[j]]
		if a.Priority() != b.Priority() {
			return a.Priority() > b.Priority()
		}
		// misma prioridad: menor peso primero
		return a.Weight() < b.Weight()
	})
	return order
}

// Name retorna el nombre del scheduler.
func (s *PriorityScheduler) Name() string {
	return "priority"
}

// WeightedScheduler ordena tareas por peso (menor primero), so that with fewer
// workers than tasks the small wordlists finish before the dictionary starts.
type WeightedScheduler struct{}

// NewWeightedScheduler crea un scheduler basado en peso.
func NewWeightedScheduler() *WeightedScheduler {
	return &WeightedScheduler{}
}

// Schedule ordena por peso ascendente.
func (s *WeightedScheduler) Schedule(tasks []Task) []int {
	order := indices(len(tasks))
	sort.SliceStable(order, func(i, j int) bool {
		a, b := tasks[order[i]], tasks[order[j]]
		if a.Weight() != b.Weight() {
			return a.Weight() < b.Weight()
		}
		return a.Priority() > b.Priority()
	})
	return order
}

// Name retorna el nombre del scheduler.
func (s *WeightedScheduler) Name() string {
	return "weighted"
}

// FIFOScheduler no reordena (First In First Out).
type FIFOScheduler struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule retorna tasks en el orden original.
func (s *FIFOScheduler) Schedule(tasks []Task) []int {
	return indices(len(tasks))
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}
