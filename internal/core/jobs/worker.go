package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

// ErrNoJobsAvailable is returned when the queue has no runnable job
var ErrNoJobsAvailable = errors.New("no jobs available")

// Worker polls a queue and dispatches jobs to registered handlers
type Worker struct {
	queue    *Queue
	config   WorkerConfig
	handlers map[string]JobHandler
	mu       sync.RWMutex
	stopped  bool
	wg       sync.WaitGroup
}

// NewWorker creates a new job worker
func NewWorker(queue *Queue, config WorkerConfig) *Worker {
	return &Worker{
		queue:    queue,
		config:   config,
		handlers: make(map[string]JobHandler),
	}
}

// RegisterHandler registers a job handler for a specific job type
func (w *Worker) RegisterHandler(handler JobHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[handler.GetType()] = handler
	utils.LogInfo("✅ Registered job handler", map[string]interface{}{"type": handler.GetType()})
}

// Start launches the worker goroutines
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("worker is stopped, cannot restart")
	}
	w.mu.Unlock()

	utils.LogInfo("🚀 Starting job worker", map[string]interface{}{
		"queue":       w.config.Queue,
		"concurrency": w.config.Concurrency,
	})

	for i := 0; i < w.config.Concurrency; i++ {
		w.wg.Add(1)
		go w.runWorker(ctx, i+1)
	}
	return nil
}

// Stop gracefully stops the worker pool
func (w *Worker) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	w.wg.Wait()
	utils.LogInfo("🛑 Job worker stopped", map[string]interface{}{"queue": w.config.Queue})
}

func (w *Worker) runWorker(ctx context.Context, workerID int) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			w.mu.RLock()
			stopped := w.stopped
			w.mu.RUnlock()
			if stopped {
				return
			}

			if err := w.processNextJob(ctx, workerID); err != nil && !errors.Is(err, ErrNoJobsAvailable) {
				utils.LogWarn("⚠️ Worker error", map[string]interface{}{
					"worker": workerID,
					"error":  err.Error(),
				})
			}
		}
	}
}

func (w *Worker) processNextJob(ctx context.Context, workerID int) error {
	job, err := w.queue.Dequeue(ctx, w.config.Queue)
	if err != nil {
		return fmt.Errorf("failed to dequeue job: %w", err)
	}
	if job == nil {
		return ErrNoJobsAvailable
	}

	w.mu.RLock()
	handler, exists := w.handlers[job.Type]
	w.mu.RUnlock()

	if !exists {
		w.queue.MarkFailed(ctx, job.ID, fmt.Errorf("no handler registered for job type: %s", job.Type))
		return nil
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.config.Timeout)
	defer cancel()

	start := time.Now()
	err = handler.Handle(jobCtx, job)
	duration := time.Since(start)

	if err != nil {
		utils.LogError("❌ Job failed", err, map[string]interface{}{
			"worker":   workerID,
			"job":      job.ID.String(),
			"type":     job.Type,
			"attempt":  job.Attempts,
			"duration": duration.String(),
		})
		if markErr := w.queue.MarkFailed(ctx, job.ID, err); markErr != nil {
			utils.LogWarn("⚠️ Failed to mark job failed", map[string]interface{}{"error": markErr.Error()})
		}
		return nil
	}

	utils.LogInfo("✅ Job completed", map[string]interface{}{
		"worker":   workerID,
		"job":      job.ID.String(),
		"type":     job.Type,
		"duration": duration.String(),
	})
	if err := w.queue.MarkCompleted(ctx, job.ID, nil); err != nil {
		utils.LogWarn("⚠️ Failed to mark job completed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}
