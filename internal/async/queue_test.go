package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	mu      sync.Mutex
	ran     []uuid.UUID
	block   chan struct{}
	started chan struct{}
}

func (r *recordingRunner) GenerateAndSave(_ context.Context, chapterID uuid.UUID, _ string) {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.ran = append(r.ran, chapterID)
	r.mu.Unlock()
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ran)
}

func TestQueueRunsJobs(t *testing.T) {
	runner := &recordingRunner{}
	q := NewFeedbackQueue(runner, nil, WithWorkers(2), WithQueueCapacity(10))

	for i := 0; i < 5; i++ {
		err := q.Enqueue(context.Background(), Job{ChapterID: uuid.New(), PlainText: "text", SubmittedAt: time.Now()})
		require.NoError(t, err)
	}

	q.Shutdown(context.Background())
	assert.Equal(t, 5, runner.count())
}

func TestQueueFullRejects(t *testing.T) {
	runner := &recordingRunner{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	q := NewFeedbackQueue(runner, nil, WithWorkers(1), WithQueueCapacity(1))

	// first job occupies the worker
	require.NoError(t, q.Enqueue(context.Background(), Job{ChapterID: uuid.New()}))
	<-runner.started

	// second fills the channel
	require.NoError(t, q.Enqueue(context.Background(), Job{ChapterID: uuid.New()}))

	// third has nowhere to go
	err := q.Enqueue(context.Background(), Job{ChapterID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(runner.block)
	q.Shutdown(context.Background())
	assert.Equal(t, 2, runner.count())
}

func TestQueueClosedRejects(t *testing.T) {
	q := NewFeedbackQueue(&recordingRunner{}, nil, WithWorkers(1), WithQueueCapacity(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{ChapterID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewFeedbackQueue(&recordingRunner{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
