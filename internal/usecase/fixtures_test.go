package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/memory"
)

var testBase = time.Date(2025, 10, 4, 17, 0, 0, 0, time.UTC)

type testEnv struct {
	now       time.Time
	notifier  *ChangeNotifier
	teams     *memory.TeamRepository
	players   *memory.PlayerRepository
	matchDays *memory.MatchDayRepository
	stats     *memory.StatsRepository
	history   *memory.RosterHistoryRepository

	historySvc  *RosterHistoryService
	resolver    *RosterResolver
	scoringSvc  *ScoringService
	matchDaySvc *MatchDayService
	teamSvc     *TeamService
	statsSvc    *PlayerStatsService
}

func testMatchDays() []matchday.MatchDay {
	out := make([]matchday.MatchDay, 0, 3)
	for i, id := range []string{"md1", "md2", "md3"} {
		start := testBase.AddDate(0, 0, 7*i)
		out = append(out, matchday.MatchDay{ID: id, Title: "Round " + id, StartTime: start, EndTime: start.Add(4 * time.Hour)})
	}
	return out
}

func testPlayers() []player.Player {
	return []player.Player{
		{ID: "p1", ClubID: "c1", Name: "One", Position: player.PositionCenter, Active: true},
		{ID: "p2", ClubID: "c1", Name: "Two", Position: player.PositionDriver, Active: true},
		{ID: "p3", ClubID: "c2", Name: "Three", Position: player.PositionWing, Active: true},
		{ID: "p4", ClubID: "c2", Name: "Four", Position: player.PositionGoalkeeper, Active: true},
	}
}

func testTeams() []team.Team {
	return []team.Team{
		{
			ID:        "t1",
			Name:      "Alpha",
			CaptainID: "p1",
			Players: []team.Member{
				{PlayerID: "p1", Position: player.PositionCenter},
				{PlayerID: "p2", Position: player.PositionDriver},
			},
		},
		{
			ID:   "t2",
			Name: "Bravo",
			Players: []team.Member{
				{PlayerID: "p3", Position: player.PositionWing},
			},
		},
		{ID: "t3", Name: "Empty"},
	}
}

func newTestEnv(t *testing.T, now time.Time, policy SnapshotPolicy) *testEnv {
	t.Helper()

	env := &testEnv{
		now:       now,
		notifier:  NewChangeNotifier(nil),
		teams:     memory.NewTeamRepository(testTeams()),
		players:   memory.NewPlayerRepository(testPlayers()),
		matchDays: memory.NewMatchDayRepository(testMatchDays()),
		stats:     memory.NewStatsRepository(nil),
		history:   memory.NewRosterHistoryRepository(),
	}
	clock := func() time.Time { return env.now }

	env.historySvc = NewRosterHistoryService(env.history, env.teams, env.matchDays, env.notifier, nil)
	env.historySvc.now = clock
	env.resolver = NewRosterResolver(env.history, env.matchDays)
	env.resolver.now = clock
	env.scoringSvc = NewScoringService(env.teams, env.matchDays, env.stats, env.history, env.resolver, scoring.DefaultPointsConfig(), time.Hour, nil)
	env.notifier.Subscribe(env.scoringSvc.Standings())
	env.matchDaySvc = NewMatchDayService(env.matchDays, env.history, env.historySvc, env.notifier, policy, nil)
	env.matchDaySvc.now = clock
	env.teamSvc = NewTeamService(env.teams, env.players, env.notifier, nil)
	env.statsSvc = NewPlayerStatsService(env.stats, env.players, env.matchDays, env.notifier, nil)
	env.statsSvc.now = clock

	return env
}

func (e *testEnv) freeze(t *testing.T, teamID, matchDayID string, entries ...rosterhistory.EntryInput) {
	t.Helper()
	if _, err := e.historySvc.CreateRosterHistory(t.Context(), teamID, matchDayID, entries); err != nil {
		t.Fatalf("freeze %s/%s: %v", teamID, matchDayID, err)
	}
}

func (e *testEnv) upsertStats(t *testing.T, row stats.PlayerStats) {
	t.Helper()
	if _, err := e.statsSvc.UpsertPlayerStats(t.Context(), row); err != nil {
		t.Fatalf("upsert stats %s/%s: %v", row.PlayerID, row.MatchDayID, err)
	}
}

func playerIDs(entries []rosterhistory.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.PlayerID)
	}
	return out
}
