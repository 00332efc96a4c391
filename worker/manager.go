package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Worker is a long-running task that returns when ctx is cancelled.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs every worker and blocks until ctx is cancelled and all workers
// have exited. A worker failing early cancels the others.
func (m *Manager) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errs := make(chan error, len(m.workers))
	for _, w := range m.workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			slog.Info("worker: starting", "worker", w.Name())
			if err := w.Start(ctx); err != nil {
				slog.Error("worker: exited with error", "worker", w.Name(), "error", err)
				errs <- err
				cancel()
				return
			}
			slog.Info("worker: stopped", "worker", w.Name())
		}(w)
	}
	<-ctx.Done()
	wg.Wait()
	close(errs)
	// report the first failure, if any
	if err, ok := <-errs; ok {
		return err
	}
	return nil
}
