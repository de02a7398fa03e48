package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

// DailyWorker runs a job once a day at a fixed hour
type DailyWorker struct {
	name     string
	job      Job
	hour     int
	location *time.Location
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyWorker creates a worker that runs job every day at hour:00 in loc.
// A nil loc means UTC.
func NewDailyWorker(name string, job Job, hour int, loc *time.Location) *DailyWorker {
	if loc == nil {
		loc = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	return &DailyWorker{
		name:     name,
		job:      job,
		hour:     hour,
		location: loc,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first run
func (w *DailyWorker) Start() {
	w.scheduleNext()
}

func (w *DailyWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := timeUntilNextRun(w.now(), w.hour, w.location)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Long waits wake up shortly before the run and schedule again, so an early
	// timer fire cannot run the job twice.
	if duration > time.Hour {
		wait := duration - approachWindow
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		w.mu.Unlock()
		log.Info(LogMsgDailyStandby, LogFieldWorker, w.name, LogFieldNextCheckAt, w.now().Add(wait).UTC())
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		rem := timeUntilNextRun(w.now(), w.hour, w.location)
		if rem > earlyFireTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.execute()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgDailyScheduled, LogFieldWorker, w.name, LogFieldNextRunAt, w.now().Add(duration).UTC())
}

// RunNow executes the job immediately in a tracked goroutine
func (w *DailyWorker) RunNow() {
	logger.FromContext(context.Background()).Info(LogMsgDailyManualRun, LogFieldWorker, w.name)
	w.execute()
}

func (w *DailyWorker) execute() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyStarting, LogFieldWorker, w.name)

		start := time.Now()
		if err := w.job.Process(ctx); err != nil {
			log.Error(LogMsgDailyFailed, LogFieldWorker, w.name, LogFieldError, err)
			return
		}
		log.Info(LogMsgDailyCompleted, LogFieldWorker, w.name, LogFieldDuration, time.Since(start))
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight run
func (w *DailyWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgDailyShutdown, LogFieldWorker, w.name)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgDailyShutdownTimeout, LogFieldWorker, w.name)
		return ctx.Err()
	}
}

// timeUntilNextRun returns the wait from now until the next hour:00 in loc
func timeUntilNextRun(now time.Time, hour int, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
