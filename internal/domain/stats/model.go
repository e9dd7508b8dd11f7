package stats

import (
	"fmt"
	"time"
)

// PlayerStats is one player's raw water-polo counters for one matchday.
type PlayerStats struct {
	PlayerID    string
	MatchDayID  string
	Goals       int
	Assists     int
	Blocks      int
	Steals      int
	PFDrawn     int
	PF          int
	BallsLost   int
	ContraFouls int
	Shots       int
	SwimOffs    int
	Brutality   int
	Saves       int
	Wins        int
	UpdatedAt   time.Time
}

func (s PlayerStats) Validate() error {
	if s.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if s.MatchDayID == "" {
		return fmt.Errorf("matchday id is required")
	}

	counters := []struct {
		name  string
		value int
	}{
		{"goals", s.Goals},
		{"assists", s.Assists},
		{"blocks", s.Blocks},
		{"steals", s.Steals},
		{"pf_drawn", s.PFDrawn},
		{"pf", s.PF},
		{"balls_lost", s.BallsLost},
		{"contra_fouls", s.ContraFouls},
		{"shots", s.Shots},
		{"swim_offs", s.SwimOffs},
		{"brutality", s.Brutality},
		{"saves", s.Saves},
		{"wins", s.Wins},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", c.name, c.value)
		}
	}

	return nil
}

// IndexByPlayer keys a matchday's stat rows by player id. A later row for
// the same player wins.
func IndexByPlayer(rows []PlayerStats) map[string]PlayerStats {
	out := make(map[string]PlayerStats, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row
	}
	return out
}
