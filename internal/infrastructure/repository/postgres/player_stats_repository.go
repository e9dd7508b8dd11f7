package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	qb "github.com/riskibarqy/fantasy-waterpolo/internal/platform/querybuilder"
)

const upsertPlayerStatsSuffix = `ON CONFLICT (player_public_id, matchday_public_id) DO UPDATE SET
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    blocks = EXCLUDED.blocks,
    steals = EXCLUDED.steals,
    pf_drawn = EXCLUDED.pf_drawn,
    pf = EXCLUDED.pf,
    balls_lost = EXCLUDED.balls_lost,
    contra_fouls = EXCLUDED.contra_fouls,
    shots = EXCLUDED.shots,
    swim_offs = EXCLUDED.swim_offs,
    brutality = EXCLUDED.brutality,
    saves = EXCLUDED.saves,
    wins = EXCLUDED.wins,
    updated_at = EXCLUDED.updated_at
RETURNING *`

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ListByMatchDay(ctx context.Context, matchDayID string) ([]stats.PlayerStats, error) {
	return r.list(ctx, "player stats by matchday", qb.Eq("matchday_public_id", matchDayID))
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]stats.PlayerStats, error) {
	return r.list(ctx, "player stats by player", qb.Eq("player_public_id", playerID))
}

func (r *StatsRepository) GetByPlayerAndMatchDay(ctx context.Context, playerID, matchDayID string) (stats.PlayerStats, bool, error) {
	query, args, err := qb.Select("*").From("player_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("matchday_public_id", matchDayID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return stats.PlayerStats{}, false, wrapStorage(err, "build select player stats query")
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.PlayerStats{}, false, nil
		}
		return stats.PlayerStats{}, false, wrapStorage(err, "select player stats")
	}
	return statsFromRow(row), true, nil
}

func (r *StatsRepository) Upsert(ctx context.Context, item stats.PlayerStats) (stats.PlayerStats, error) {
	query, args, err := qb.InsertModel("player_stats", statsToRow(item), upsertPlayerStatsSuffix)
	if err != nil {
		return stats.PlayerStats{}, wrapStorage(err, "build upsert player stats query")
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return stats.PlayerStats{}, wrapStorage(err, "upsert player stats")
	}
	return statsFromRow(row), nil
}

func (r *StatsRepository) list(ctx context.Context, op string, cond qb.Condition) ([]stats.PlayerStats, error) {
	query, args, err := qb.Select("*").From("player_stats").
		Where(cond).
		OrderBy("matchday_public_id", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select "+op+" query")
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapStorage(err, "select "+op)
	}

	out := make([]stats.PlayerStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, statsFromRow(row))
	}
	return out, nil
}

func statsToRow(s stats.PlayerStats) playerStatsTableModel {
	return playerStatsTableModel{
		PlayerID:    s.PlayerID,
		MatchDayID:  s.MatchDayID,
		Goals:       s.Goals,
		Assists:     s.Assists,
		Blocks:      s.Blocks,
		Steals:      s.Steals,
		PFDrawn:     s.PFDrawn,
		PF:          s.PF,
		BallsLost:   s.BallsLost,
		ContraFouls: s.ContraFouls,
		Shots:       s.Shots,
		SwimOffs:    s.SwimOffs,
		Brutality:   s.Brutality,
		Saves:       s.Saves,
		Wins:        s.Wins,
		UpdatedAt:   s.UpdatedAt,
	}
}

func statsFromRow(row playerStatsTableModel) stats.PlayerStats {
	return stats.PlayerStats{
		PlayerID:    row.PlayerID,
		MatchDayID:  row.MatchDayID,
		Goals:       row.Goals,
		Assists:     row.Assists,
		Blocks:      row.Blocks,
		Steals:      row.Steals,
		PFDrawn:     row.PFDrawn,
		PF:          row.PF,
		BallsLost:   row.BallsLost,
		ContraFouls: row.ContraFouls,
		Shots:       row.Shots,
		SwimOffs:    row.SwimOffs,
		Brutality:   row.Brutality,
		Saves:       row.Saves,
		Wins:        row.Wins,
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
