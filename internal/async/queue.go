// Package async provides the bounded worker pool that runs feedback jobs
// detached from the request that submitted them.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is one feedback generation request: the chapter to attach the result
// to and its already-flattened text.
type Job struct {
	ChapterID   uuid.UUID
	PlainText   string
	SubmittedAt time.Time
}

// Queue accepts jobs and drains them on shutdown.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// JobRunner executes a single job. Implementations never return an error;
// failure handling is the runner's own business.
type JobRunner interface {
	GenerateAndSave(ctx context.Context, chapterID uuid.UUID, chapterText string)
}

var (
	// ErrQueueFull is returned when the queue is at capacity. Submission is
	// non-blocking; callers decide whether a rejected job matters.
	ErrQueueFull = errors.New("job queue is full")

	// ErrQueueClosed is returned for submissions after shutdown began.
	ErrQueueClosed = errors.New("job queue is shut down")
)

// FeedbackQueue runs a fixed set of workers over a bounded channel.
type FeedbackQueue struct {
	runner  JobRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*FeedbackQueue)

func WithWorkers(n int) Option {
	return func(q *FeedbackQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueCapacity(n int) Option {
	return func(q *FeedbackQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *FeedbackQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewFeedbackQueue(runner JobRunner, logger *slog.Logger, opts ...Option) *FeedbackQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &FeedbackQueue{
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 100),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *FeedbackQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					q.runner.GenerateAndSave(ctx, job.ChapterID, job.PlainText)
					cancel()

					q.logger.Info("job finished",
						"worker_id", workerID,
						"chapter_id", job.ChapterID,
						"queued_for_ms", time.Since(job.SubmittedAt).Milliseconds(),
					)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue submits a job without blocking. A full queue is an explicit
// rejection rather than backpressure, so a burst of submissions cannot stall
// request handlers.
func (q *FeedbackQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "chapter_id", job.ChapterID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued feedback job", "chapter_id", job.ChapterID)
		return nil
	default:
		q.logger.Warn("queue full, rejecting job", "chapter_id", job.ChapterID)
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for workers to drain the channel,
// or until ctx expires.
func (q *FeedbackQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
