package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team_id", "matchday_id", "player_id").
		From("roster_history").
		Where(Eq("team_id", "t1"), Eq("matchday_id", "md-1")).
		OrderBy("is_captain DESC", "player_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_id, matchday_id, player_id FROM roster_history WHERE team_id = $1 AND matchday_id = $2 ORDER BY is_captain DESC, player_id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "md-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupByAndAny(t *testing.T) {
	ids := []string{"md-1", "md-2"}
	query, args, err := Select("DISTINCT team_id").
		From("roster_history").
		Where(Any("matchday_id", ids)).
		GroupBy("team_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT DISTINCT team_id FROM roster_history WHERE matchday_id = ANY($1) GROUP BY team_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := InsertInto("roster_history").
		Columns("team_id", "matchday_id", "player_id", "is_captain", "created_at").
		Values("t1", "md-1", "p1", true, now).
		Values("t1", "md-1", "p2", false, now).
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO roster_history (team_id, matchday_id, player_id, is_captain, created_at) VALUES ($1, $2, $3, $4, $5), ($6, $7, $8, $9, $10) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 10 || args[2] != "p1" || args[7] != "p2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("roster_history").
		Columns("team_id", "player_id").
		Values("t1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("captain_player_id", "p1").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET captain_player_id = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("roster_history").
		Where(Eq("team_id", "t1"), Eq("matchday_id", "md-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM roster_history WHERE team_id = $1 AND matchday_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("roster_history").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped delete")
	}
}

func TestExprPlaceholderRewrite(t *testing.T) {
	query, args, err := Select("id").
		From("matchdays").
		Where(Eq("id", "md-2"), Expr("start_time <= ?", "2025-01-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT id FROM matchdays WHERE id = $1 AND start_time <= $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type rosterRowInsert struct {
	TeamID    string `db:"team_id"`
	PlayerID  string `db:"player_id"`
	Ignored   string `db:"-"`
	IsCaptain bool   `db:"is_captain"`
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("roster_history", rosterRowInsert{TeamID: "t1", PlayerID: "p1", IsCaptain: true}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	wantQuery := "INSERT INTO roster_history (team_id, player_id, is_captain) VALUES ($1, $2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	rows := []rosterRowInsert{
		{TeamID: "t1", PlayerID: "p1", IsCaptain: true},
		{TeamID: "t1", PlayerID: "p2"},
	}
	query, args, err := InsertModels("roster_history", rows, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}

	wantQuery := "INSERT INTO roster_history (team_id, player_id, is_captain) VALUES ($1, $2, $3), ($4, $5, $6) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[4] != "p2" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[rosterRowInsert]("roster_history", nil, ""); err == nil {
		t.Fatalf("expected error for empty models")
	}
}
