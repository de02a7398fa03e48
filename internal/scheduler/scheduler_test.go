package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/testing/leaktest"
	"github.com/osse101/FarmEconomy_Go/internal/worker"
	"github.com/osse101/FarmEconomy_Go/mocks"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	atomic.AddInt32(&m.RunCount, 1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	sched.Schedule("mock", 10*time.Millisecond, job)

	// Wait for at least 2 runs
	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&job.RunCount), int32(2))
}

func TestScheduler_IgnoresNonPositiveInterval(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.Schedule("disabled", 0, job)
	sched.Schedule("negative", -time.Second, job)

	time.Sleep(30 * time.Millisecond)
	sched.Stop()
	assert.Equal(t, int32(0), atomic.LoadInt32(&job.RunCount))
}

func TestScheduler_StopWhileQueueFull(t *testing.T) {
	// An unstarted pool with one slot fills on the first tick
	pool := worker.NewPool(1, 1)
	defer pool.Stop()

	sched := New(pool)
	sched.Schedule("blocked", 5*time.Millisecond, &MockJob{Done: make(chan struct{})})
	time.Sleep(40 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a full queue")
	}
}

func TestScheduler_AdvancesSeasonDay(t *testing.T) {
	svc := mocks.NewMockSeasonService(t)
	advanced := make(chan struct{}, 4)
	svc.On("AdvanceDay", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case advanced <- struct{}{}:
			default:
			}
		}).
		Return(&domain.SeasonClock{DaysPassed: 1}, nil)

	pool := worker.NewPool(1, 4)
	pool.Start()
	sched := New(pool)
	sched.Schedule("season-advance", 5*time.Millisecond, season.NewAdvanceJob(svc))

	select {
	case <-advanced:
	case <-time.After(time.Second):
		t.Fatal("AdvanceDay was not called")
	}

	sched.Stop()
	pool.Stop()
}

func TestScheduler_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(2, 4)
		pool.Start()
		sched := New(pool)
		sched.Schedule("a", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
		sched.Schedule("b", 7*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
		time.Sleep(20 * time.Millisecond)
		sched.Stop()
		pool.Stop()
	})
}
