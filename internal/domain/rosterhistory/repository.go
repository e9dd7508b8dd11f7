package rosterhistory

import (
	"context"
	"time"
)

// Repository persists frozen rosters. Replace swaps the whole entry set for a
// (team, matchday) atomically: concurrent readers see either the previous set
// or the new one, never a partial or empty intermediate.
type Repository interface {
	Replace(ctx context.Context, teamID, matchDayID string, entries []EntryInput, capturedAt time.Time) ([]Entry, error)
	ListByTeamAndMatchDay(ctx context.Context, teamID, matchDayID string) ([]Entry, error)
	ListByTeam(ctx context.Context, teamID string) ([]Entry, error)
	ListByMatchDay(ctx context.Context, matchDayID string) ([]Entry, error)
	Exists(ctx context.Context, teamID, matchDayID string) (bool, error)
	ListTeamIDsByMatchDay(ctx context.Context, matchDayID string) ([]string, error)
	Delete(ctx context.Context, teamID, matchDayID string) error
}
