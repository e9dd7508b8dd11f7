package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	qb "github.com/riskibarqy/fantasy-waterpolo/internal/platform/querybuilder"
)

type MatchDayRepository struct {
	db *sqlx.DB
}

func NewMatchDayRepository(db *sqlx.DB) *MatchDayRepository {
	return &MatchDayRepository{db: db}
}

func (r *MatchDayRepository) List(ctx context.Context) ([]matchday.MatchDay, error) {
	query, args, err := qb.Select("*").From("matchdays").
		OrderBy("start_time", "public_id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select matchdays query")
	}

	var rows []matchDayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapStorage(err, "select matchdays")
	}

	out := make([]matchday.MatchDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchDayFromRow(row))
	}
	return out, nil
}

func (r *MatchDayRepository) GetByID(ctx context.Context, matchDayID string) (matchday.MatchDay, bool, error) {
	query, args, err := qb.Select("*").From("matchdays").
		Where(qb.Eq("public_id", matchDayID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return matchday.MatchDay{}, false, wrapStorage(err, "build select matchday by id query")
	}

	var row matchDayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchday.MatchDay{}, false, nil
		}
		return matchday.MatchDay{}, false, wrapStorage(err, "select matchday by id")
	}
	return matchDayFromRow(row), true, nil
}

func (r *MatchDayRepository) Create(ctx context.Context, item matchday.MatchDay) error {
	query, args, err := qb.InsertModel("matchdays", matchDayInsertModel{
		PublicID:  item.ID,
		Title:     item.Title,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		CreatedAt: item.CreatedAt,
	}, "")
	if err != nil {
		return wrapStorage(err, "build insert matchday query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return crerr.Wrapf(matchday.ErrAlreadyExists, "matchday=%s", item.ID)
		}
		return wrapStorage(err, "insert matchday")
	}
	return nil
}

func matchDayFromRow(row matchDayTableModel) matchday.MatchDay {
	return matchday.MatchDay{
		ID:        row.PublicID,
		Title:     row.Title,
		StartTime: row.StartTime.UTC(),
		EndTime:   row.EndTime.UTC(),
		CreatedAt: row.CreatedAt.UTC(),
	}
}
