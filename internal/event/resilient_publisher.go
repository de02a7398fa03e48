package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

// retryEntry is a failed event waiting for its next attempt
type retryEntry struct {
	event     Event
	attempt   int
	nextRetry time.Time
	lastErr   error
}

// ResilientPublisher wraps an Event Bus with exponential-backoff retries and
// a JSONL dead-letter file for events that never get through.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	once       sync.Once
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher starts the retry worker. An empty deadLetterPath
// disables the dead-letter file; exhausted events are then only logged.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
	}

	if deadLetterPath != "" {
		dl, err := NewDeadLetterWriter(deadLetterPath)
		if err != nil {
			return nil, err
		}
		p.deadLetter = dl
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// Publish makes ResilientPublisher usable as a Bus. Failures are retried in the
// background, so the caller always gets nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry attempts one synchronous publish and queues a retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryEntry{
		event:     event,
		attempt:   1,
		nextRetry: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:   err,
	})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case entry := <-p.retryQueue:
			if !p.wait(entry.nextRetry) {
				p.finalAttempt(entry)
				p.drain()
				return
			}
			p.retry(entry)
		}
	}
}

// wait sleeps until t and reports false if shutdown interrupted it
func (p *ResilientPublisher) wait(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-p.shutdown:
		return false
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}

	entry.lastErr = err
	if entry.attempt >= p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt+1)
		p.writeDeadLetter(entry)
		return
	}

	entry.attempt++
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempt))
	logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	p.enqueue(entry)
}

// finalAttempt publishes once more without waiting and dead-letters on failure
func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastErr = err
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if p.deadLetter == nil {
		logger.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "error", entry.lastErr)
		return
	}
	if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker, attempting every queued event one last
// time, then closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	var err error
	p.closeOnce.Do(func() {
		if p.deadLetter != nil {
			err = p.deadLetter.Close()
		}
	})
	return err
}
