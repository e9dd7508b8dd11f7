package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
)

type statsKey struct {
	playerID   string
	matchDayID string
}

type StatsRepository struct {
	mu   sync.RWMutex
	rows map[statsKey]stats.PlayerStats
}

func NewStatsRepository(rows []stats.PlayerStats) *StatsRepository {
	index := make(map[statsKey]stats.PlayerStats, len(rows))
	for _, row := range rows {
		index[statsKey{playerID: row.PlayerID, matchDayID: row.MatchDayID}] = row
	}

	return &StatsRepository{rows: index}
}

func (r *StatsRepository) ListByMatchDay(_ context.Context, matchDayID string) ([]stats.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.PlayerStats, 0)
	for key, row := range r.rows {
		if key.matchDayID == matchDayID {
			out = append(out, row)
		}
	}

	return out, nil
}

func (r *StatsRepository) ListByPlayer(_ context.Context, playerID string) ([]stats.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.PlayerStats, 0)
	for key, row := range r.rows {
		if key.playerID == playerID {
			out = append(out, row)
		}
	}

	return out, nil
}

func (r *StatsRepository) GetByPlayerAndMatchDay(_ context.Context, playerID, matchDayID string) (stats.PlayerStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[statsKey{playerID: playerID, matchDayID: matchDayID}]
	return row, ok, nil
}

func (r *StatsRepository) Upsert(_ context.Context, row stats.PlayerStats) (stats.PlayerStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[statsKey{playerID: row.PlayerID, matchDayID: row.MatchDayID}] = row
	return row, nil
}
