package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
)

func TestPlayerStatsService_Upsert(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	got, err := env.statsSvc.UpsertPlayerStats(ctx, stats.PlayerStats{PlayerID: " p1 ", MatchDayID: "md1", Goals: 2})
	if err != nil {
		t.Fatalf("UpsertPlayerStats error: %v", err)
	}
	if got.PlayerID != "p1" || got.UpdatedAt.IsZero() {
		t.Fatalf("unexpected stored row: %+v", got)
	}

	if _, err := env.statsSvc.UpsertPlayerStats(ctx, stats.PlayerStats{PlayerID: "p1", MatchDayID: "md1", Goals: 5}); err != nil {
		t.Fatalf("second UpsertPlayerStats error: %v", err)
	}
	rows, err := env.statsSvc.GetPlayerStats(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayerStats error: %v", err)
	}
	if len(rows) != 1 || rows[0].Goals != 5 {
		t.Fatalf("expected one upserted row with goals=5, got %+v", rows)
	}
}

func TestPlayerStatsService_UpsertErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testBase, SnapshotPolicyPerTeam)
	ctx := t.Context()

	tests := []struct {
		name      string
		row       stats.PlayerStats
		targetErr error
	}{
		{name: "negative goals", row: stats.PlayerStats{PlayerID: "p1", MatchDayID: "md1", Goals: -1}, targetErr: ErrInvalidInput},
		{name: "unknown player", row: stats.PlayerStats{PlayerID: "ghost", MatchDayID: "md1"}, targetErr: ErrNotFound},
		{name: "unknown matchday", row: stats.PlayerStats{PlayerID: "p1", MatchDayID: "md9"}, targetErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.statsSvc.UpsertPlayerStats(ctx, tc.row); !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}
