package cache

import (
	"context"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	basecache "github.com/riskibarqy/fantasy-waterpolo/internal/platform/cache"
)

const (
	playerListKey    = "player:list"
	playerIDPrefix   = "player:id:"
	statsKeyPrefix   = "stats:"
	statsMatchDayKey = statsKeyPrefix + "matchday:"
	statsPlayerKey   = statsKeyPrefix + "player:"
	statsPairKey     = statsKeyPrefix + "pair:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerIDPrefix+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

// StatsRepository caches stat reads; every Upsert drops all cached stats so
// the next read goes to the underlying store.
type StatsRepository struct {
	next  stats.Repository
	cache *basecache.Store
}

func NewStatsRepository(next stats.Repository, cache *basecache.Store) *StatsRepository {
	return &StatsRepository{next: next, cache: cache}
}

func (r *StatsRepository) ListByMatchDay(ctx context.Context, matchDayID string) ([]stats.PlayerStats, error) {
	return r.list(ctx, statsMatchDayKey+matchDayID, func(ctx context.Context) ([]stats.PlayerStats, error) {
		return r.next.ListByMatchDay(ctx, matchDayID)
	})
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]stats.PlayerStats, error) {
	return r.list(ctx, statsPlayerKey+playerID, func(ctx context.Context) ([]stats.PlayerStats, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
}

func (r *StatsRepository) GetByPlayerAndMatchDay(ctx context.Context, playerID, matchDayID string) (stats.PlayerStats, bool, error) {
	key := statsPairKey + playerID + ":" + matchDayID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByPlayerAndMatchDay(ctx, playerID, matchDayID)
		if err != nil {
			return nil, err
		}
		return cachedStatsByPair{value: item, exists: exists}, nil
	})
	if err != nil {
		return stats.PlayerStats{}, false, err
	}

	cached, _ := v.(cachedStatsByPair)
	return cached.value, cached.exists, nil
}

func (r *StatsRepository) Upsert(ctx context.Context, row stats.PlayerStats) (stats.PlayerStats, error) {
	out, err := r.next.Upsert(ctx, row)
	r.cache.DeletePrefix(ctx, statsKeyPrefix)
	if err != nil {
		return stats.PlayerStats{}, err
	}
	return out, nil
}

func (r *StatsRepository) list(ctx context.Context, key string, load func(context.Context) ([]stats.PlayerStats, error)) ([]stats.PlayerStats, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]stats.PlayerStats(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]stats.PlayerStats)
	return append([]stats.PlayerStats(nil), items...), nil
}

type cachedStatsByPair struct {
	value  stats.PlayerStats
	exists bool
}
