package stats

import "context"

// Repository stores per-player per-matchday stats. Upsert is keyed on
// (PlayerID, MatchDayID).
type Repository interface {
	ListByMatchDay(ctx context.Context, matchDayID string) ([]PlayerStats, error)
	ListByPlayer(ctx context.Context, playerID string) ([]PlayerStats, error)
	GetByPlayerAndMatchDay(ctx context.Context, playerID, matchDayID string) (PlayerStats, bool, error)
	Upsert(ctx context.Context, row PlayerStats) (PlayerStats, error)
}
