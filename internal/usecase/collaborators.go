package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
)

// TeamReader is the read side of the team store used by snapshotting and
// scoring.
type TeamReader interface {
	List(ctx context.Context) ([]team.Team, error)
	GetByID(ctx context.Context, teamID string) (team.Team, bool, error)
}

type StatsReader interface {
	ListByMatchDay(ctx context.Context, matchDayID string) ([]stats.PlayerStats, error)
}

type MatchDayReader interface {
	List(ctx context.Context) ([]matchday.MatchDay, error)
	GetByID(ctx context.Context, matchDayID string) (matchday.MatchDay, bool, error)
}
