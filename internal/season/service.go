package season

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Clock is the time source read once per operation
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock time source
func SystemClock() Clock { return systemClock{} }

// Service defines the season clock interface
type Service interface {
	// GetSeason returns the current clock (possibly cached)
	GetSeason(ctx context.Context) (*domain.SeasonClock, error)

	// AdvanceDay moves the calendar forward one day
	AdvanceDay(ctx context.Context) (*domain.SeasonClock, error)

	// SetSeason is the administrative override
	SetSeason(ctx context.Context, index int) (*domain.SeasonClock, error)

	// Lengths returns the configured days per season
	Lengths() Lengths
}

type service struct {
	repo    repository.Season
	cache   *CachedReader
	bus     event.Bus
	lengths Lengths
	clock   Clock
}

// NewService creates a new season service. bus may be nil and a
// non-positive cacheTTL uses DefaultCacheTTL.
func NewService(repo repository.Season, bus event.Bus, lengths Lengths, clock Clock, cacheTTL time.Duration) Service {
	if clock == nil {
		clock = SystemClock()
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:    repo,
		cache:   NewCachedReader(repo, cacheTTL),
		bus:     bus,
		lengths: lengths,
		clock:   clock,
	}
}

func (s *service) Lengths() Lengths {
	return s.lengths
}

func (s *service) GetSeason(ctx context.Context) (*domain.SeasonClock, error) {
	return s.cache.Get(ctx)
}

func (s *service) AdvanceDay(ctx context.Context) (*domain.SeasonClock, error) {
	return s.mutate(ctx, func(c *domain.SeasonClock) (Transition, error) {
		return AdvanceDay(c, s.lengths), nil
	})
}

func (s *service) SetSeason(ctx context.Context, index int) (*domain.SeasonClock, error) {
	// validate before touching storage
	if index < 0 || index >= domain.NumSeasons {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSeasonIndex, index)
	}
	return s.mutate(ctx, func(c *domain.SeasonClock) (Transition, error) {
		return SetSeason(c, index)
	})
}

// mutate runs fn against the locked clock row and publishes after commit
func (s *service) mutate(ctx context.Context, fn func(*domain.SeasonClock) (Transition, error)) (*domain.SeasonClock, error) {
	log := logger.FromContext(ctx)
	now := s.clock.Now()

	tx, err := s.repo.BeginSeasonTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	clock, err := tx.GetSeasonClockForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock season clock: %w", err)
	}

	t, err := fn(clock)
	if err != nil {
		return nil, err
	}
	clock.UpdatedAt = now

	if err := tx.SaveSeasonClock(ctx, clock); err != nil {
		return nil, fmt.Errorf("failed to save season clock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		// the row may or may not have changed
		s.cache.Invalidate()
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	s.cache.Set(*clock)

	switch {
	case t.Manual:
		log.Info(LogMsgSeasonSet, LogFieldSeason, t.Season.String(), LogFieldPrevious, t.Previous.String())
	case t.Changed:
		log.Info(LogMsgSeasonChanged, LogFieldSeason, t.Season.String(), LogFieldDaysPassed, t.DaysPassed)
	default:
		log.Debug(LogMsgDayAdvanced, LogFieldDaysPassed, t.DaysPassed)
	}

	s.publish(ctx, eventsFor(t, now.Unix()))
	return clock, nil
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, LogFieldError, err)
		}
	}
}
