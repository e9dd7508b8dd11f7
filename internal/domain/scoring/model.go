package scoring

import (
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
)

// PointsConfig holds the signed weight applied to every stat field.
type PointsConfig struct {
	Goal       int
	Assist     int
	Block      int
	Steal      int
	PFDrawn    int
	PF         int
	BallsLost  int
	ContraFoul int
	Shot       int
	SwimOff    int
	Brutality  int
	Save       int
	Win        int
}

func DefaultPointsConfig() PointsConfig {
	return PointsConfig{
		Goal:       5,
		Assist:     3,
		Block:      2,
		Steal:      2,
		PFDrawn:    2,
		PF:         -1,
		BallsLost:  -1,
		ContraFoul: -1,
		Shot:       -1,
		SwimOff:    2,
		Brutality:  -15,
		Save:       1,
		Win:        2,
	}
}

// BasePoints is the weighted sum of one player's stats for one matchday.
func BasePoints(s stats.PlayerStats, cfg PointsConfig) int {
	return s.Goals*cfg.Goal +
		s.Assists*cfg.Assist +
		s.Blocks*cfg.Block +
		s.Steals*cfg.Steal +
		s.PFDrawn*cfg.PFDrawn +
		s.PF*cfg.PF +
		s.BallsLost*cfg.BallsLost +
		s.ContraFouls*cfg.ContraFoul +
		s.Shots*cfg.Shot +
		s.SwimOffs*cfg.SwimOff +
		s.Brutality*cfg.Brutality +
		s.Saves*cfg.Save +
		s.Wins*cfg.Win
}

type PlayerContribution struct {
	PlayerID  string
	IsCaptain bool
	HasStats  bool
	Base      int
	Points    int
}

// ComputeBreakdown scores a roster player by player. Players without a stats
// row contribute zero and the captain's base counts twice.
func ComputeBreakdown(roster []rosterhistory.Entry, statsByPlayer map[string]stats.PlayerStats, cfg PointsConfig) ([]PlayerContribution, int) {
	out := make([]PlayerContribution, 0, len(roster))
	total := 0
	for _, entry := range roster {
		item := PlayerContribution{PlayerID: entry.PlayerID, IsCaptain: entry.IsCaptain}
		if row, ok := statsByPlayer[entry.PlayerID]; ok {
			item.HasStats = true
			item.Base = BasePoints(row, cfg)
		}
		item.Points = item.Base
		if entry.IsCaptain {
			item.Points += item.Base
		}
		total += item.Points
		out = append(out, item)
	}

	return out, total
}

func ComputePoints(roster []rosterhistory.Entry, statsByPlayer map[string]stats.PlayerStats, cfg PointsConfig) int {
	_, total := ComputeBreakdown(roster, statsByPlayer, cfg)
	return total
}

type MatchDayScore struct {
	MatchDayID string
	Points     int
	// SourceMatchDayID is the matchday whose roster was used; it differs from
	// MatchDayID when the roster was resolved by fallback.
	SourceMatchDayID string
}

type TeamStanding struct {
	TeamID         string
	TeamName       string
	Rank           int
	TotalPoints    int
	MatchDayScores []MatchDayScore
}

type TeamPoints struct {
	TeamID string
	Points int
}
