package season

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// CachedReader serves the season clock from a short-lived in-memory copy.
// Planting reads the clock on every call, and it only changes once per day.
type CachedReader struct {
	repo repository.Season
	lru  *expirable.LRU[string, domain.SeasonClock]
}

// NewCachedReader wraps repo with a single-entry cache expiring after ttl
func NewCachedReader(repo repository.Season, ttl time.Duration) *CachedReader {
	return &CachedReader{
		repo: repo,
		lru:  expirable.NewLRU[string, domain.SeasonClock](cacheSize, nil, ttl),
	}
}

// Get returns a copy of the clock, loading it on a miss
func (c *CachedReader) Get(ctx context.Context) (*domain.SeasonClock, error) {
	if clock, ok := c.lru.Get(cacheKey); ok {
		return &clock, nil
	}

	clock, err := c.repo.GetSeasonClock(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(cacheKey, *clock)
	return clock, nil
}

// Set replaces the cached clock after a committed mutation
func (c *CachedReader) Set(clock domain.SeasonClock) {
	c.lru.Add(cacheKey, clock)
}

// Invalidate drops the cached clock
func (c *CachedReader) Invalidate() {
	c.lru.Remove(cacheKey)
}
