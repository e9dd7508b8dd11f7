package usecase

import (
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

func TestRosterResolver_FallbackResolution(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase.AddDate(0, 0, 30), SnapshotPolicyPerTeam)
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p1", IsCaptain: true})
	env.freeze(t, "t1", "md3", rosterhistory.EntryInput{PlayerID: "p2", IsCaptain: true})

	tests := []struct {
		name         string
		matchDayID   string
		wantPlayers  []string
		wantSource   string
		wantFallback bool
	}{
		{name: "exact md1", matchDayID: "md1", wantPlayers: []string{"p1"}, wantSource: "md1"},
		{name: "md2 falls back to md1", matchDayID: "md2", wantPlayers: []string{"p1"}, wantSource: "md1", wantFallback: true},
		{name: "exact md3", matchDayID: "md3", wantPlayers: []string{"p2"}, wantSource: "md3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := env.resolver.Resolve(t.Context(), "t1", tc.matchDayID)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if !reflect.DeepEqual(playerIDs(got.Entries), tc.wantPlayers) {
				t.Fatalf("players mismatch: got %v want %v", playerIDs(got.Entries), tc.wantPlayers)
			}
			if got.SourceMatchDayID != tc.wantSource || got.Fallback != tc.wantFallback {
				t.Fatalf("source mismatch: got %s fallback=%v", got.SourceMatchDayID, got.Fallback)
			}
		})
	}
}

func TestRosterResolver_NoSnapshotYieldsEmptyRoster(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase.AddDate(0, 0, 30), SnapshotPolicyPerTeam)

	got, err := env.resolver.Resolve(t.Context(), "t2", "md3")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got.Entries) != 0 || got.Fallback || got.SourceMatchDayID != "" {
		t.Fatalf("expected empty roster, got %+v", got)
	}
}

func TestRosterResolver_IgnoresFutureMatchDays(t *testing.T) {
	t.Parallel()

	// md2 has started, md3 has not.
	env := newTestEnv(t, testBase.AddDate(0, 0, 8), SnapshotPolicyPerTeam)
	env.freeze(t, "t1", "md3", rosterhistory.EntryInput{PlayerID: "p2"})

	got, err := env.resolver.Resolve(t.Context(), "t1", "md2")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("future snapshot must not be used, got %v", playerIDs(got.Entries))
	}
}

func TestRosterResolver_UnknownMatchDay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	_, err := env.resolver.Resolve(t.Context(), "t1", "md-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFallbackCandidates_OrderAndFilter(t *testing.T) {
	t.Parallel()

	now := testBase.AddDate(0, 0, 20)
	target := matchday.MatchDay{ID: "md3", StartTime: testBase.AddDate(0, 0, 14)}
	all := []matchday.MatchDay{
		{ID: "md1", StartTime: testBase},
		{ID: "md2a", StartTime: testBase.AddDate(0, 0, 7)},
		{ID: "md2b", StartTime: testBase.AddDate(0, 0, 7)},
		target,
		{ID: "md4", StartTime: testBase.AddDate(0, 0, 21)},
	}

	got := fallbackCandidates(target, all, now)
	ids := make([]string, 0, len(got))
	for _, md := range got {
		ids = append(ids, md.ID)
	}
	want := []string{"md2b", "md2a", "md1"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("candidates mismatch: got %v want %v", ids, want)
	}
}

func TestResolveFromIndex_MatchesResolve(t *testing.T) {
	t.Parallel()

	now := testBase.AddDate(0, 0, 30)
	env := newTestEnv(t, now, SnapshotPolicyPerTeam)
	env.freeze(t, "t1", "md1", rosterhistory.EntryInput{PlayerID: "p1", IsCaptain: true})

	rows, _ := env.history.ListByTeam(t.Context(), "t1")
	index := groupEntries(rows, func(e rosterhistory.Entry) string { return e.MatchDayID })
	all := testMatchDays()

	for _, md := range all {
		fromIndex := resolveFromIndex("t1", md, all, now, index)
		direct, err := env.resolver.Resolve(t.Context(), "t1", md.ID)
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if fromIndex.SourceMatchDayID != direct.SourceMatchDayID || fromIndex.Fallback != direct.Fallback {
			t.Fatalf("matchday %s: index %+v direct %+v", md.ID, fromIndex, direct)
		}
	}
}
