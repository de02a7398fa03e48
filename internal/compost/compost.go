// Package compost converts owned compost bins into fertilizer over time.
package compost

import (
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// Result reports a collection. A zero DaysElapsed means nothing changed.
type Result struct {
	FertilizerGained uint16 `json:"fertilizer_gained"`
	DaysElapsed      int64  `json:"days_elapsed"`
}

// Engine provides pure compost logic (no DB dependencies)
type Engine struct{}

// NewEngine creates a new compost engine
func NewEngine() *Engine {
	return &Engine{}
}

// DaysSince returns the whole days elapsed between last and now.
func (e *Engine) DaysSince(last, now int64) int64 {
	if now <= last {
		return 0
	}
	return (now - last) / domain.SecondsPerDay
}

// Yield returns the fertilizer produced by bins over days, capped at the counter size.
func (e *Engine) Yield(bins uint8, days int64) uint16 {
	total := int64(bins) * FertilizerPerBinPerDay * days
	return uint16(min(total, int64(utils.MaxOf[uint16]())))
}

// Collect grants bins x days fertilizer. The collection timestamp only moves
// forward when at least one full day has passed.
func (e *Engine) Collect(l *domain.PlayerLedger, now int64) (Result, error) {
	bins := l.Structures.CompostBins
	if bins == 0 {
		return Result{}, domain.ErrNoCompostBins
	}

	days := e.DaysSince(l.LastCompostCollection, now)
	if days < 1 {
		return Result{}, nil
	}

	gained := e.Yield(bins, days)
	before := l.Tools.Fertilizer
	l.Tools.Fertilizer = utils.SaturatingAdd(before, gained, utils.MaxOf[uint16]())
	l.LastCompostCollection = now

	return Result{FertilizerGained: l.Tools.Fertilizer - before, DaysElapsed: days}, nil
}
