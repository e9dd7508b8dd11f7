package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

func TestRosterHistoryService_CreateRejectsTwoCaptains(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	_, err := env.historySvc.CreateRosterHistory(t.Context(), "t1", "md1", []rosterhistory.EntryInput{
		{PlayerID: "p1", IsCaptain: true},
		{PlayerID: "p2", IsCaptain: true},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := env.historySvc.GetRosterHistory(t.Context(), "t1", "md1")
	if err != nil {
		t.Fatalf("GetRosterHistory error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rejected roster must not be stored, got %v", playerIDs(got))
	}
}

func TestRosterHistoryService_CreateReplaces(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p1", IsCaptain: true}, rosterhistory.EntryInput{PlayerID: "p2"})
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p3", IsCaptain: true})

	got, err := env.historySvc.GetRosterHistory(t.Context(), "t1", "md1")
	if err != nil {
		t.Fatalf("GetRosterHistory error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "p3" || !got[0].IsCaptain {
		t.Fatalf("expected only p3 as captain, got %+v", got)
	}
}

func TestRosterHistoryService_CreateUnknownTeamOrMatchDay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	if _, err := env.historySvc.CreateRosterHistory(ctx, "missing", "md1", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for team, got %v", err)
	}
	if _, err := env.historySvc.CreateRosterHistory(ctx, "t1", "missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for matchday, got %v", err)
	}
}

func TestRosterHistoryService_SnapshotAllTeamRosters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	frozen, err := env.historySvc.SnapshotAllTeamRosters(ctx, "md1", SnapshotOptions{})
	if err != nil {
		t.Fatalf("SnapshotAllTeamRosters error: %v", err)
	}
	if len(frozen) != 2 {
		t.Fatalf("expected 2 teams frozen (empty team skipped), got %d", len(frozen))
	}
	if _, ok := frozen["t3"]; ok {
		t.Fatalf("team without players must be skipped")
	}
	if got := rosterhistory.Captain(frozen["t1"]); got != "p1" {
		t.Fatalf("expected t1 captain p1, got %q", got)
	}
	if got := rosterhistory.Captain(frozen["t2"]); got != "" {
		t.Fatalf("expected t2 without captain, got %q", got)
	}

	byTeam, err := env.historySvc.GetMatchDayRosterHistory(ctx, "md1")
	if err != nil {
		t.Fatalf("GetMatchDayRosterHistory error: %v", err)
	}
	if len(byTeam["t1"]) != 2 || len(byTeam["t2"]) != 1 {
		t.Fatalf("unexpected stored snapshot: %+v", byTeam)
	}
}

func TestRosterHistoryService_SnapshotSkipExisting(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p4", IsCaptain: true})

	frozen, err := env.historySvc.SnapshotAllTeamRosters(ctx, "md1", SnapshotOptions{SkipExisting: true})
	if err != nil {
		t.Fatalf("SnapshotAllTeamRosters error: %v", err)
	}
	if _, ok := frozen["t1"]; ok {
		t.Fatalf("expected t1 to be skipped")
	}
	got, _ := env.historySvc.GetRosterHistory(ctx, "t1", "md1")
	if len(got) != 1 || got[0].PlayerID != "p4" {
		t.Fatalf("existing snapshot must be preserved, got %v", playerIDs(got))
	}
}

func TestRosterHistoryService_TeamHistoryAndRemove(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p1"})
	env.freeze(t, "t1", "md2", rosterhistory.EntryInput{PlayerID: "p2"})

	history, err := env.historySvc.GetTeamRosterHistory(ctx, "t1")
	if err != nil {
		t.Fatalf("GetTeamRosterHistory error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 matchdays, got %d", len(history))
	}

	if err := env.historySvc.RemoveRosterHistory(ctx, "t1", "md1"); err != nil {
		t.Fatalf("RemoveRosterHistory error: %v", err)
	}
	ok, err := env.historySvc.HasRosterHistory(ctx, "t1", "md1")
	if err != nil {
		t.Fatalf("HasRosterHistory error: %v", err)
	}
	if ok {
		t.Fatalf("expected md1 snapshot removed")
	}
}
