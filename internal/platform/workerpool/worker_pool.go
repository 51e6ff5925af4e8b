// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"crackbench/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task interface {
	// Execute ejecuta la tarea
	Execute(ctx context.Context) error

	// Priority retorna la prioridad de la tarea (mayor = más prioritario)
	Priority() int

	// Weight retorna el coste estimado de la tarea
	Weight() int

	// Name retorna el nombre de la tarea
	Name() string
}

// Scheduler define la estrategia de scheduling.
type Scheduler interface {
	// Schedule devuelve el orden de arranque como índices sobre tasks
	Schedule(tasks []Task) []int

	// Name retorna el nombre del scheduler
	Name() string
}

// TaskResult representa el resultado de una tarea.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// Config configura el worker pool.
type Config struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// Pool runs batches of tasks on a bounded number of goroutines. It holds no
// goroutines between calls to Run and is safe for concurrent use.
type Pool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger
}

// New crea un nuevo worker pool. Workers <= 0 means one worker per task.
func New(cfg Config) *Pool {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.NewNop()
	}
	return &Pool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
	}
}

// Run executes every task and returns their results in submission order,
// whatever order the scheduler started them in. Every task runs even when
// ctx is done; tasks are expected to observe ctx themselves.
func (p *Pool) Run(ctx context.Context, tasks []Task) []TaskResult {
	results := make([]TaskResult, len(tasks))
	if len(tasks) == 0 {
		return results
	}

	workers := p.workers
	if workers <= 0 || workers > len(tasks) {
		workers = len(tasks)
	}

	order := p.scheduler.Schedule(tasks)
	p.logger.Debug("running tasks", "total", len(tasks), "workers", workers, "scheduler", p.scheduler.Name())

	queue := make(chan int, len(order))
	for _, idx := range order {
		queue <- idx
	}
	close(queue)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range queue {
				results[idx] = p.execute(ctx, workerID, tasks[idx])
			}
		}(w)
	}
	wg.Wait()

	return results
}

// execute ejecuta una tarea individual.
func (p *Pool) execute(ctx context.Context, workerID int, task Task) TaskResult {
	start := time.Now()
	err := task.Execute(ctx)
	duration := time.Since(start)

	p.logger.Debug("task completed",
		"worker_id", workerID,
		"task", task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)
	return TaskResult{Task: task, Error: err, Duration: duration}
}

// Workers returns the configured worker count (0 = one per task).
func (p *Pool) Workers() int {
	return p.workers
}

// SchedulerName returns the name of the scheduler in use.
func (p *Pool) SchedulerName() string {
	return p.scheduler.Name()
}
