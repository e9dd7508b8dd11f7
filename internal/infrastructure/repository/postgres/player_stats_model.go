package postgres

import "time"

type playerStatsTableModel struct {
	PlayerID    string    `db:"player_public_id"`
	MatchDayID  string    `db:"matchday_public_id"`
	Goals       int       `db:"goals"`
	Assists     int       `db:"assists"`
	Blocks      int       `db:"blocks"`
	Steals      int       `db:"steals"`
	PFDrawn     int       `db:"pf_drawn"`
	PF          int       `db:"pf"`
	BallsLost   int       `db:"balls_lost"`
	ContraFouls int       `db:"contra_fouls"`
	Shots       int       `db:"shots"`
	SwimOffs    int       `db:"swim_offs"`
	Brutality   int       `db:"brutality"`
	Saves       int       `db:"saves"`
	Wins        int       `db:"wins"`
	UpdatedAt   time.Time `db:"updated_at"`
}
