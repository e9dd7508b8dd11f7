package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
)

const (
	ClubIDJadran   = "club-jadran"
	ClubIDMladost  = "club-mladost"
	ClubIDPrimorac = "club-primorac"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "wp-gk-01", ClubID: ClubIDJadran, Name: "Marko Bijac", Position: player.PositionGoalkeeper, Active: true},
		{ID: "wp-gk-02", ClubID: ClubIDMladost, Name: "Toni Popadic", Position: player.PositionGoalkeeper, Active: true},
		{ID: "wp-cb-01", ClubID: ClubIDJadran, Name: "Josip Vrlic", Position: player.PositionCenter, Active: true},
		{ID: "wp-cb-02", ClubID: ClubIDPrimorac, Name: "Dusan Vukovic", Position: player.PositionCenter, Active: true},
		{ID: "wp-dr-01", ClubID: ClubIDMladost, Name: "Loren Fatovic", Position: player.PositionDriver, Active: true},
		{ID: "wp-dr-02", ClubID: ClubIDPrimorac, Name: "Ante Vukicevic", Position: player.PositionDriver, Active: true},
		{ID: "wp-wg-01", ClubID: ClubIDJadran, Name: "Luka Bukic", Position: player.PositionWing, Active: true},
		{ID: "wp-wg-02", ClubID: ClubIDMladost, Name: "Rino Buric", Position: player.PositionWing, Active: true},
		{ID: "wp-pt-01", ClubID: ClubIDPrimorac, Name: "Konstantin Kharkov", Position: player.PositionPoint, Active: true},
		{ID: "wp-ut-01", ClubID: ClubIDJadran, Name: "Ante Corusic", Position: player.PositionUtility, Active: true},
		{ID: "wp-ut-02", ClubID: ClubIDMladost, Name: "Jerko Marinic Kragic", Position: player.PositionUtility, Active: false},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:        "team-sharks",
			Name:      "Split Sharks",
			OwnerID:   "manager-1",
			CaptainID: "wp-cb-01",
			Players: []team.Member{
				{PlayerID: "wp-gk-01", Position: player.PositionGoalkeeper},
				{PlayerID: "wp-cb-01", Position: player.PositionCenter},
				{PlayerID: "wp-dr-01", Position: player.PositionDriver},
				{PlayerID: "wp-wg-01", Position: player.PositionWing},
			},
		},
		{
			ID:        "team-orcas",
			Name:      "Zagreb Orcas",
			OwnerID:   "manager-2",
			CaptainID: "wp-dr-02",
			Players: []team.Member{
				{PlayerID: "wp-gk-02", Position: player.PositionGoalkeeper},
				{PlayerID: "wp-cb-02", Position: player.PositionCenter},
				{PlayerID: "wp-dr-02", Position: player.PositionDriver},
				{PlayerID: "wp-pt-01", Position: player.PositionPoint},
			},
		},
		{
			ID:      "team-rookies",
			Name:    "Kotor Rookies",
			OwnerID: "manager-3",
		},
	}
}

func SeedMatchDays() []matchday.MatchDay {
	base := time.Date(2025, 10, 4, 17, 0, 0, 0, time.UTC)
	out := make([]matchday.MatchDay, 0, 4)
	titles := []string{"Round 1", "Round 2", "Round 3", "Round 4"}
	for i, title := range titles {
		start := base.AddDate(0, 0, 7*i)
		out = append(out, matchday.MatchDay{
			ID:        fmt.Sprintf("md-%d", i+1),
			Title:     title,
			StartTime: start,
			EndTime:   start.Add(4 * time.Hour),
			CreatedAt: base.AddDate(0, 0, -14),
		})
	}
	return out
}

func SeedStats() []stats.PlayerStats {
	return []stats.PlayerStats{
		{PlayerID: "wp-cb-01", MatchDayID: "md-1", Goals: 3, Shots: 5, PFDrawn: 2, Wins: 1},
		{PlayerID: "wp-gk-01", MatchDayID: "md-1", Saves: 9, Blocks: 1, Wins: 1},
		{PlayerID: "wp-dr-01", MatchDayID: "md-1", Goals: 1, Assists: 2, Steals: 1, PF: 2, Wins: 1},
		{PlayerID: "wp-dr-02", MatchDayID: "md-1", Goals: 2, SwimOffs: 3, BallsLost: 1},
		{PlayerID: "wp-gk-02", MatchDayID: "md-1", Saves: 6},
		{PlayerID: "wp-pt-01", MatchDayID: "md-1", Assists: 3, ContraFouls: 1},
	}
}
