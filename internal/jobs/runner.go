package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrShutdown is returned by Submit after Shutdown has begun.
var ErrShutdown = errors.New("job runner is shutting down")

// Handle tracks one submitted task.
type Handle struct {
	Name string
	done chan struct{}
	err  error
}

// Done is closed once the task has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err reports the task's result. It is only meaningful after Done is closed.
func (h *Handle) Err() error {
	<-h.done
	return h.err
}

// Runner executes fire-and-forget background tasks in their own goroutines.
// Task contexts derive from the runner, not from the request that submitted
// them, so a finished HTTP response does not cancel the work.
type Runner struct {
	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		base:   ctx,
		cancel: cancel,
		logger: logger.With("component", "jobs"),
	}
}

// Submit schedules fn and returns without waiting for it.
func (r *Runner) Submit(name string, fn func(ctx context.Context) error) *Handle {
	h := &Handle{Name: name, done: make(chan struct{})}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		h.err = ErrShutdown
		close(h.done)
		return h
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go r.run(h, fn)
	return h
}

func (r *Runner) run(h *Handle, fn func(ctx context.Context) error) {
	defer r.wg.Done()
	defer close(h.done)

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			h.err = fmt.Errorf("job %s panicked: %v", h.Name, p)
			r.logger.Error("job panicked", "job", h.Name, "panic", p)
		}
	}()

	h.err = fn(r.base)

	if h.err != nil {
		r.logger.Error("job failed", "job", h.Name, "duration", time.Since(start), "error", h.err)
		return
	}
	r.logger.Debug("job finished", "job", h.Name, "duration", time.Since(start))
}

// Shutdown stops accepting work, cancels running tasks and waits for them
// until ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for jobs: %w", ctx.Err())
	}
}
