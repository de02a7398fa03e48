package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{})
	require.True(t, pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") })))
	require.True(t, pool.Enqueue(JobFunc(func(context.Context) error {
		close(done)
		return nil
	})))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a failing job")
	}
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	// Not started, so the single slot stays occupied
	noop := JobFunc(func(context.Context) error { return nil })

	assert.True(t, pool.TryEnqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	noop := JobFunc(func(context.Context) error { return nil })
	assert.False(t, pool.Enqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))
}

func TestPool_StopCancelsJobContext(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	var cancelled int32
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		atomic.StoreInt32(&cancelled, 1)
		return ctx.Err()
	}))

	<-started
	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&cancelled))
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, 8)
		pool.Start()
		var executed int32
		for i := 0; i < 8; i++ {
			pool.Enqueue(&testJob{executed: &executed})
		}
		pool.Stop()
	})
}
