package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/worker"
)

// LogMsgTickDropped is logged when a tick cannot be queued during shutdown
const LogMsgTickDropped = "Scheduled job dropped, worker pool is stopping"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Non-positive intervals are ignored.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Blocks while the queue is full so day ticks are never skipped
				if !s.workerPool.Submit(job, s.quit) {
					logger.Warn(LogMsgTickDropped, "job", name)
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
