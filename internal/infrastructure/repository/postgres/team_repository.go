package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	qb "github.com/riskibarqy/fantasy-waterpolo/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapStorage(err, "select teams")
	}
	if len(rows) == 0 {
		return []team.Team{}, nil
	}

	teamIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		teamIDs = append(teamIDs, row.PublicID)
	}
	members, err := r.listMembers(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row, members[row.PublicID]))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(qb.Eq("public_id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, wrapStorage(err, "build select team by id query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, wrapStorage(err, "select team by id")
	}

	members, err := r.listMembers(ctx, []string{teamID})
	if err != nil {
		return team.Team{}, false, err
	}
	return teamFromRow(row, members[teamID]), true, nil
}

func (r *TeamRepository) AddPlayer(ctx context.Context, teamID string, member team.Member) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapStorage(err, "begin tx for team player insert")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("fantasy_team_players", teamPlayerInsertModel{
		TeamID:   teamID,
		PlayerID: member.PlayerID,
		Position: string(member.Position),
	}, "ON CONFLICT (team_public_id, player_public_id) DO NOTHING")
	if err != nil {
		return wrapStorage(err, "build insert team player query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return wrapStorage(err, "insert team player")
	}
	if err := touchTeam(ctx, tx, teamID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapStorage(err, "commit team player insert")
	}
	return nil
}

// RemovePlayer deletes the membership and clears the captain pointer in the
// same transaction when it referenced the removed player.
func (r *TeamRepository) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapStorage(err, "begin tx for team player delete")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("fantasy_team_players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("player_public_id", playerID),
		).
		ToSQL()
	if err != nil {
		return wrapStorage(err, "build delete team player query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return wrapStorage(err, "delete team player")
	}

	query, args, err = qb.Update("fantasy_teams").
		SetExpr("captain_player_public_id", "NULL").
		Where(
			qb.Eq("public_id", teamID),
			qb.Eq("captain_player_public_id", playerID),
		).
		ToSQL()
	if err != nil {
		return wrapStorage(err, "build clear captain query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return wrapStorage(err, "clear team captain")
	}
	if err := touchTeam(ctx, tx, teamID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapStorage(err, "commit team player delete")
	}
	return nil
}

func (r *TeamRepository) SetCaptain(ctx context.Context, teamID, playerID string) error {
	query, args, err := qb.Update("fantasy_teams").
		Set("captain_player_public_id", playerID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.Expr("EXISTS (SELECT 1 FROM fantasy_team_players tp WHERE tp.team_public_id = ? AND tp.player_public_id = ?)", teamID, playerID),
		).
		ToSQL()
	if err != nil {
		return wrapStorage(err, "build set captain query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStorage(err, "set team captain")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return crerr.Wrapf(team.ErrCaptainNotMember, "set team captain team=%s player=%s", teamID, playerID)
	}
	return nil
}

func (r *TeamRepository) listMembers(ctx context.Context, teamIDs []string) (map[string][]team.Member, error) {
	query, args, err := qb.Select("*").From("fantasy_team_players").
		Where(qb.Any("team_public_id", pq.Array(teamIDs))).
		OrderBy("team_public_id", "created_at", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, wrapStorage(err, "build select team players query")
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapStorage(err, "select team players")
	}

	out := make(map[string][]team.Member, len(teamIDs))
	for _, row := range rows {
		out[row.TeamID] = append(out[row.TeamID], team.Member{
			PlayerID: row.PlayerID,
			Position: player.Position(row.Position),
		})
	}
	return out, nil
}

func touchTeam(ctx context.Context, tx *sqlx.Tx, teamID string) error {
	query, args, err := qb.Update("fantasy_teams").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID)).
		ToSQL()
	if err != nil {
		return wrapStorage(err, "build touch team query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return wrapStorage(err, "touch team")
	}
	return nil
}

func teamFromRow(row teamTableModel, members []team.Member) team.Team {
	if members == nil {
		members = []team.Member{}
	}
	return team.Team{
		ID:        row.PublicID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CaptainID: row.CaptainID.String,
		Players:   members,
		UpdatedAt: row.UpdatedAt,
	}
}
