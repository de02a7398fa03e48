package repository

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Season persists the global season clock singleton
type Season interface {
	GetSeasonClock(ctx context.Context) (*domain.SeasonClock, error)

	// Transaction support
	BeginSeasonTx(ctx context.Context) (SeasonTx, error)
}

// SeasonTx serializes season clock mutations
type SeasonTx interface {
	Tx

	GetSeasonClockForUpdate(ctx context.Context) (*domain.SeasonClock, error)
	SaveSeasonClock(ctx context.Context, clock *domain.SeasonClock) error
}
