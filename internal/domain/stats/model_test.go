package stats

import "testing"

func TestPlayerStatsValidate(t *testing.T) {
	tests := []struct {
		name    string
		row     PlayerStats
		wantErr bool
	}{
		{name: "valid", row: PlayerStats{PlayerID: "p1", MatchDayID: "md1", Goals: 2, Saves: 0}},
		{name: "missing player", row: PlayerStats{MatchDayID: "md1"}, wantErr: true},
		{name: "missing matchday", row: PlayerStats{PlayerID: "p1"}, wantErr: true},
		{name: "negative counter", row: PlayerStats{PlayerID: "p1", MatchDayID: "md1", Brutality: -1}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.row.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIndexByPlayer(t *testing.T) {
	index := IndexByPlayer([]PlayerStats{
		{PlayerID: "p1", MatchDayID: "md1", Goals: 1},
		{PlayerID: "p2", MatchDayID: "md1", Goals: 3},
		{PlayerID: "p1", MatchDayID: "md1", Goals: 4},
	})

	if len(index) != 2 {
		t.Fatalf("expected 2 players, got %d", len(index))
	}
	if index["p1"].Goals != 4 {
		t.Fatalf("expected last row for p1 to win, got goals=%d", index["p1"].Goals)
	}
}
