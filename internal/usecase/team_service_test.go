package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/infrastructure/repository/memory"
)

func TestTeamService_MutationsPublishChanges(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	var kinds []ChangeKind
	env.notifier.Subscribe(ChangeListenerFunc(func(_ context.Context, change Change) {
		kinds = append(kinds, change.Kind)
	}))

	if _, err := env.teamSvc.AddPlayer(ctx, "t2", "p4"); err != nil {
		t.Fatalf("AddPlayer error: %v", err)
	}
	if _, err := env.teamSvc.SetCaptain(ctx, "t2", "p4"); err != nil {
		t.Fatalf("SetCaptain error: %v", err)
	}
	got, err := env.teamSvc.RemovePlayer(ctx, "t2", "p4")
	if err != nil {
		t.Fatalf("RemovePlayer error: %v", err)
	}
	if got.CaptainID != "" {
		t.Fatalf("expected captain cleared after removing the captain, got %q", got.CaptainID)
	}

	want := []ChangeKind{ChangeTeamRoster, ChangeCaptain, ChangeTeamRoster}
	if len(kinds) != len(want) {
		t.Fatalf("unexpected change events: %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("change %d: got %s want %s", i, kinds[i], want[i])
		}
	}
}

func TestTeamService_Validation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	tests := []struct {
		name      string
		run       func() error
		targetErr error
	}{
		{
			name:      "captain not on team",
			run:       func() error { _, err := env.teamSvc.SetCaptain(ctx, "t1", "p3"); return err },
			targetErr: ErrInvalidInput,
		},
		{
			name:      "unknown player",
			run:       func() error { _, err := env.teamSvc.AddPlayer(ctx, "t1", "ghost"); return err },
			targetErr: ErrNotFound,
		},
		{
			name:      "duplicate player",
			run:       func() error { _, err := env.teamSvc.AddPlayer(ctx, "t1", "p1"); return err },
			targetErr: ErrInvalidInput,
		},
		{
			name:      "remove player not on team",
			run:       func() error { _, err := env.teamSvc.RemovePlayer(ctx, "t1", "p3"); return err },
			targetErr: ErrNotFound,
		},
		{
			name:      "unknown team",
			run:       func() error { _, err := env.teamSvc.GetTeam(ctx, "nope"); return err },
			targetErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestTeamService_CaptainChangeInvalidatesStandings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase.AddDate(0, 0, 1), SnapshotPolicyPerTeam)
	ctx := t.Context()
	env.upsertStats(t, stats.PlayerStats{PlayerID: "p2", MatchDayID: "md1", Goals: 1})

	// Live composition feeds the next snapshot; standings must see it.
	if _, err := env.teamSvc.SetCaptain(ctx, "t1", "p2"); err != nil {
		t.Fatalf("SetCaptain error: %v", err)
	}
	if _, err := env.historySvc.SnapshotAllTeamRosters(ctx, "md1", SnapshotOptions{}); err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	rows, err := env.scoringSvc.GetTeamsWithScores(ctx)
	if err != nil {
		t.Fatalf("GetTeamsWithScores error: %v", err)
	}
	if rows[0].TeamID != "t1" || rows[0].TotalPoints != 10 {
		t.Fatalf("expected doubled captain points for t1, got %+v", rows[0])
	}

	history, _ := env.historySvc.GetRosterHistory(ctx, "t1", "md1")
	if rosterhistory.Captain(history) != "p2" {
		t.Fatalf("expected frozen captain p2, got %q", rosterhistory.Captain(history))
	}
}

// removingTeamRepo drops the player right before the captain write, as a
// concurrent removal would.
type removingTeamRepo struct {
	*memory.TeamRepository
}

func (r removingTeamRepo) SetCaptain(ctx context.Context, teamID, playerID string) error {
	if err := r.RemovePlayer(ctx, teamID, playerID); err != nil {
		return err
	}
	return r.TeamRepository.SetCaptain(ctx, teamID, playerID)
}

func TestTeamService_SetCaptainLostToRemovalIsInvalidInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	svc := NewTeamService(removingTeamRepo{TeamRepository: env.teams}, env.players, env.notifier, nil)

	_, err := svc.SetCaptain(t.Context(), "t1", "p2")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, team.ErrCaptainNotMember) {
		t.Fatalf("expected ErrCaptainNotMember in chain, got %v", err)
	}
}
