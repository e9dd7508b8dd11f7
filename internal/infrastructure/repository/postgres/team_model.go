package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	OwnerID   string         `db:"owner_id"`
	CaptainID sql.NullString `db:"captain_player_public_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type teamPlayerTableModel struct {
	TeamID    string    `db:"team_public_id"`
	PlayerID  string    `db:"player_public_id"`
	Position  string    `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

type teamPlayerInsertModel struct {
	TeamID   string `db:"team_public_id"`
	PlayerID string `db:"player_public_id"`
	Position string `db:"position"`
}
