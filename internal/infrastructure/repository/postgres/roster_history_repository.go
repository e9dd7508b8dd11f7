package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	qb "github.com/riskibarqy/fantasy-waterpolo/internal/platform/querybuilder"
)

// rosterLockQuery serialises writers of one (team, matchday) set for the
// lifetime of the surrounding transaction.
const rosterLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1 || ':' || $2))`

type RosterHistoryRepository struct {
	db *sqlx.DB
}

func NewRosterHistoryRepository(db *sqlx.DB) *RosterHistoryRepository {
	return &RosterHistoryRepository{db: db}
}

// Replace deletes and re-inserts the set inside one transaction. Readers under
// READ COMMITTED never observe the deleted-but-not-yet-inserted state.
func (r *RosterHistoryRepository) Replace(ctx context.Context, teamID, matchDayID string, entries []rosterhistory.EntryInput, capturedAt time.Time) ([]rosterhistory.Entry, error) {
	if err := rosterhistory.ValidateEntries(entries); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, wrapStorage(err, "begin replace roster history tx")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, rosterLockQuery, teamID, matchDayID); err != nil {
		return nil, wrapStorage(err, "lock roster history set")
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("roster_history").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("matchday_public_id", matchDayID),
		).
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build delete roster history query")
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, wrapStorage(err, "delete roster history")
	}

	out := make([]rosterhistory.Entry, 0, len(entries))
	if len(entries) > 0 {
		models := make([]rosterHistoryInsertModel, 0, len(entries))
		for _, e := range entries {
			models = append(models, rosterHistoryInsertModel{
				TeamID:     teamID,
				MatchDayID: matchDayID,
				PlayerID:   e.PlayerID,
				IsCaptain:  e.IsCaptain,
				CreatedAt:  capturedAt,
			})
		}

		insertQuery, insertArgs, err := qb.InsertModels("roster_history", models, "RETURNING *")
		if err != nil {
			return nil, wrapStorage(err, "build insert roster history query")
		}

		var rows []rosterHistoryTableModel
		if err := tx.SelectContext(ctx, &rows, insertQuery, insertArgs...); err != nil {
			return nil, wrapStorage(err, "insert roster history")
		}
		out = entriesFromRows(rows)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapStorage(err, "commit replace roster history tx")
	}
	return out, nil
}

func (r *RosterHistoryRepository) ListByTeamAndMatchDay(ctx context.Context, teamID, matchDayID string) ([]rosterhistory.Entry, error) {
	return r.list(ctx, "roster history by team and matchday",
		qb.Eq("team_public_id", teamID),
		qb.Eq("matchday_public_id", matchDayID),
	)
}

func (r *RosterHistoryRepository) ListByTeam(ctx context.Context, teamID string) ([]rosterhistory.Entry, error) {
	return r.list(ctx, "roster history by team", qb.Eq("team_public_id", teamID))
}

func (r *RosterHistoryRepository) ListByMatchDay(ctx context.Context, matchDayID string) ([]rosterhistory.Entry, error) {
	return r.list(ctx, "roster history by matchday", qb.Eq("matchday_public_id", matchDayID))
}

func (r *RosterHistoryRepository) Exists(ctx context.Context, teamID, matchDayID string) (bool, error) {
	query, args, err := qb.Select("1").From("roster_history").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("matchday_public_id", matchDayID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, wrapStorage(err, "build roster history exists query")
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, wrapStorage(err, "check roster history exists")
	}
	return true, nil
}

func (r *RosterHistoryRepository) ListTeamIDsByMatchDay(ctx context.Context, matchDayID string) ([]string, error) {
	query, args, err := qb.Select("team_public_id").From("roster_history").
		Where(qb.Eq("matchday_public_id", matchDayID)).
		GroupBy("team_public_id").
		OrderBy("team_public_id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select snapshotted teams query")
	}

	out := make([]string, 0)
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, wrapStorage(err, "select snapshotted teams")
	}
	return out, nil
}

func (r *RosterHistoryRepository) Delete(ctx context.Context, teamID, matchDayID string) error {
	query, args, err := qb.DeleteFrom("roster_history").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("matchday_public_id", matchDayID),
		).
		ToSQL()
	if err != nil {
		return wrapStorage(err, "build delete roster history query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapStorage(err, "delete roster history")
	}
	return nil
}

func (r *RosterHistoryRepository) list(ctx context.Context, op string, conds ...qb.Condition) ([]rosterhistory.Entry, error) {
	query, args, err := qb.Select("*").From("roster_history").
		Where(conds...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select "+op+" query")
	}

	var rows []rosterHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapStorage(err, "select "+op)
	}
	return entriesFromRows(rows), nil
}

func entriesFromRows(rows []rosterHistoryTableModel) []rosterhistory.Entry {
	out := make([]rosterhistory.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterhistory.Entry{
			ID:         row.ID,
			TeamID:     row.TeamID,
			MatchDayID: row.MatchDayID,
			PlayerID:   row.PlayerID,
			IsCaptain:  row.IsCaptain,
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return out
}
