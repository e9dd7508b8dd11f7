package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/cache"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

const (
	standingsCacheKey        = "standings:league"
	defaultStandingsCacheTTL = 5 * time.Minute
)

type standingsComputeFunc func(ctx context.Context) ([]scoring.TeamStanding, error)

// StandingsCache memoizes the whole league standings in one slot. Concurrent
// misses share a single computation, and Invalidate prevents a computation
// already in flight from writing its result back.
type StandingsCache struct {
	store   *cache.Store
	compute standingsComputeFunc
	logger  *logging.Logger
}

func NewStandingsCache(compute standingsComputeFunc, ttl time.Duration, logger *logging.Logger) *StandingsCache {
	if ttl <= 0 {
		ttl = defaultStandingsCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsCache{
		store:   cache.NewStore(ttl),
		compute: compute,
		logger:  logger,
	}
}

func (c *StandingsCache) Get(ctx context.Context) ([]scoring.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsCache.Get")
	defer span.End()

	value, err := c.store.GetOrLoad(ctx, standingsCacheKey, func(ctx context.Context) (any, error) {
		start := time.Now()
		rows, err := c.compute(ctx)
		if err != nil {
			return nil, err
		}
		c.logger.InfoContext(ctx, "standings recomputed", "teams", len(rows), "duration_ms", time.Since(start).Milliseconds())
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("compute standings: %w", err)
	}

	rows, ok := value.([]scoring.TeamStanding)
	if !ok {
		return nil, fmt.Errorf("unexpected standings cache value %T", value)
	}
	return cloneStandings(rows), nil
}

func (c *StandingsCache) Invalidate(ctx context.Context) {
	c.store.Delete(ctx, standingsCacheKey)
}

// OnChange drops the cached standings on every published mutation.
func (c *StandingsCache) OnChange(ctx context.Context, change Change) {
	c.Invalidate(ctx)
	c.logger.DebugContext(ctx, "standings invalidated", "kind", change.Kind)
}

func cloneStandings(rows []scoring.TeamStanding) []scoring.TeamStanding {
	out := make([]scoring.TeamStanding, len(rows))
	for i, row := range rows {
		out[i] = row
		out[i].MatchDayScores = append([]scoring.MatchDayScore(nil), row.MatchDayScores...)
	}
	return out
}
