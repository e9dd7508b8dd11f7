package postgres

import "time"

type rosterHistoryTableModel struct {
	ID         int64     `db:"id"`
	TeamID     string    `db:"team_public_id"`
	MatchDayID string    `db:"matchday_public_id"`
	PlayerID   string    `db:"player_public_id"`
	IsCaptain  bool      `db:"is_captain"`
	CreatedAt  time.Time `db:"created_at"`
}

type rosterHistoryInsertModel struct {
	TeamID     string    `db:"team_public_id"`
	MatchDayID string    `db:"matchday_public_id"`
	PlayerID   string    `db:"player_public_id"`
	IsCaptain  bool      `db:"is_captain"`
	CreatedAt  time.Time `db:"created_at"`
}
