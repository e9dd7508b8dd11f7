package postgres

import "time"

type matchDayTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Title     string    `db:"title"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	CreatedAt time.Time `db:"created_at"`
}

type matchDayInsertModel struct {
	PublicID  string    `db:"public_id"`
	Title     string    `db:"title"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	CreatedAt time.Time `db:"created_at"`
}
