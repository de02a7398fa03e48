// Package season owns the global calendar: a monotonic day counter and the
// current season index, advanced by a scheduled job or an admin override.
package season

import (
	"fmt"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// Lengths holds the number of days each season lasts, indexed by domain.Season.
type Lengths [domain.NumSeasons]uint32

// DefaultLengths returns the stock 30-day seasons.
func DefaultLengths() Lengths {
	return Lengths{DefaultSeasonLength, DefaultSeasonLength, DefaultSeasonLength, DefaultSeasonLength}
}

// Validate rejects zero-length seasons.
func (l Lengths) Validate() error {
	for i, n := range l {
		if n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidSeasonLength, domain.Season(i))
		}
	}
	return nil
}

// Transition describes what a clock mutation did.
type Transition struct {
	Previous   domain.Season
	Season     domain.Season
	DaysPassed uint32
	Changed    bool
	Manual     bool
}

// NewClock returns the initial clock: spring, day zero.
func NewClock(now time.Time) *domain.SeasonClock {
	return &domain.SeasonClock{
		CurrentSeason: domain.SeasonSpring,
		UpdatedAt:     now,
	}
}

// AdvanceDay moves the calendar forward one day and wraps to the next season
// once the current one has run its full length.
func AdvanceDay(c *domain.SeasonClock, lengths Lengths) Transition {
	t := Transition{Previous: c.CurrentSeason}

	c.DaysPassed = utils.SaturatingAdd(c.DaysPassed, 1, utils.MaxOf[uint32]())
	current := c.CurrentSeason.Clamped()
	if c.DaysIntoSeason() >= lengths[current] {
		c.CurrentSeason = current.Next()
		c.SeasonStartDay = c.DaysPassed
		t.Changed = true
	}

	t.Season = c.CurrentSeason
	t.DaysPassed = c.DaysPassed
	return t
}

// SetSeason forces the current season and restarts its day count.
func SetSeason(c *domain.SeasonClock, index int) (Transition, error) {
	if index < 0 || index >= domain.NumSeasons {
		return Transition{}, fmt.Errorf("%w: %d", domain.ErrInvalidSeasonIndex, index)
	}

	t := Transition{Previous: c.CurrentSeason, Manual: true}
	c.CurrentSeason = domain.Season(index)
	c.SeasonStartDay = c.DaysPassed

	t.Season = c.CurrentSeason
	t.DaysPassed = c.DaysPassed
	t.Changed = t.Previous != t.Season
	return t, nil
}

// DaysRemaining reports how many advances are left before the season wraps.
func DaysRemaining(c domain.SeasonClock, lengths Lengths) uint32 {
	return utils.SaturatingSub(lengths[c.CurrentSeason.Clamped()], c.DaysIntoSeason())
}
