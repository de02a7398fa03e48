package worker

import (
	"context"
	"sync"

	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := logger.FromContext(p.ctx).With(LogFieldWorkerID, id)
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(p.ctx); err != nil {
				log.Error(LogMsgWorkerJobFailed, LogFieldError, err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue blocks until the job is queued. It returns false once the pool is stopping.
func (p *Pool) Enqueue(job Job) bool {
	return p.Submit(job, nil)
}

// Submit is Enqueue that also gives up when done is closed
func (p *Pool) Submit(job Job, done <-chan struct{}) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	case <-done:
		return false
	}
}

// TryEnqueue queues the job without blocking and reports whether it was accepted
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels the job context, stops the workers and waits for them to finish.
// Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.cancel()
		p.wg.Wait()
	})
}
