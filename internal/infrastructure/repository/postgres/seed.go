package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset into an empty database. It is a no-op
// once any player row exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, "player "+p.ID, `
INSERT INTO players (public_id, club_id, name, position, active)
VALUES (:public_id, :club_id, :name, :position, :active)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": p.ID,
			"club_id":   p.ClubID,
			"name":      p.Name,
			"position":  string(p.Position),
			"active":    p.Active,
		}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, "team "+t.ID, `
INSERT INTO fantasy_teams (public_id, name, owner_id, captain_player_public_id)
VALUES (:public_id, :name, :owner_id, :captain)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
			"owner_id":  t.OwnerID,
			"captain":   sql.NullString{String: t.CaptainID, Valid: t.CaptainID != ""},
		}); err != nil {
			return err
		}
		for _, m := range t.Players {
			if err := seedExec(ctx, tx, "team member "+t.ID+"/"+m.PlayerID, `
INSERT INTO fantasy_team_players (team_public_id, player_public_id, position)
VALUES (:team_public_id, :player_public_id, :position)
ON CONFLICT (team_public_id, player_public_id) DO NOTHING`, map[string]any{
				"team_public_id":   t.ID,
				"player_public_id": m.PlayerID,
				"position":         string(m.Position),
			}); err != nil {
				return err
			}
		}
	}

	for _, md := range memory.SeedMatchDays() {
		if err := seedExec(ctx, tx, "matchday "+md.ID, `
INSERT INTO matchdays (public_id, title, start_time, end_time)
VALUES (:public_id, :title, :start_time, :end_time)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  md.ID,
			"title":      md.Title,
			"start_time": md.StartTime.UTC(),
			"end_time":   md.EndTime.UTC(),
		}); err != nil {
			return err
		}
	}

	for _, s := range memory.SeedStats() {
		if err := seedExec(ctx, tx, "stats "+s.PlayerID+"/"+s.MatchDayID, `
INSERT INTO player_stats (
	player_public_id, matchday_public_id, goals, assists, blocks, steals, pf_drawn, pf,
	balls_lost, contra_fouls, shots, swim_offs, brutality, saves, wins
)
VALUES (
	:player_public_id, :matchday_public_id, :goals, :assists, :blocks, :steals, :pf_drawn, :pf,
	:balls_lost, :contra_fouls, :shots, :swim_offs, :brutality, :saves, :wins
)
ON CONFLICT (player_public_id, matchday_public_id) DO NOTHING`, statsToRow(s)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, label, query string, arg any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind seed %s query: %w", label, err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("seed %s: %w", label, err)
	}
	return nil
}
