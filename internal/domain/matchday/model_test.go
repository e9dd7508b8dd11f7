package matchday

import (
	"testing"
	"time"
)

func TestMatchDayStatus(t *testing.T) {
	start := time.Date(2025, 4, 5, 15, 0, 0, 0, time.UTC)
	md := MatchDay{ID: "md1", Title: "Round 1", StartTime: start, EndTime: start.Add(3 * time.Hour)}

	tests := []struct {
		name        string
		now         time.Time
		hasSnapshot bool
		want        Status
	}{
		{name: "before start", now: start.Add(-time.Minute), want: StatusScheduled},
		{name: "at start without snapshot", now: start, want: StatusOpen},
		{name: "after start with snapshot", now: start.Add(time.Hour), hasSnapshot: true, want: StatusStarted},
		{name: "snapshot before start stays scheduled", now: start.Add(-time.Hour), hasSnapshot: true, want: StatusScheduled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := md.Status(tc.now, tc.hasSnapshot); got != tc.want {
				t.Fatalf("status mismatch: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestMatchDayValidate(t *testing.T) {
	start := time.Date(2025, 4, 5, 15, 0, 0, 0, time.UTC)
	valid := MatchDay{ID: "md1", Title: "Round 1", StartTime: start, EndTime: start.Add(time.Hour)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inverted := valid
	inverted.EndTime = start
	if err := inverted.Validate(); err == nil {
		t.Fatalf("expected error for end time not after start")
	}

	untitled := valid
	untitled.Title = ""
	if err := untitled.Validate(); err == nil {
		t.Fatalf("expected error for missing title")
	}
}

func TestLess(t *testing.T) {
	base := time.Date(2025, 4, 5, 15, 0, 0, 0, time.UTC)
	a := MatchDay{ID: "md1", StartTime: base}
	b := MatchDay{ID: "md2", StartTime: base.Add(time.Hour)}
	c := MatchDay{ID: "md3", StartTime: base}

	if !Less(b, a) {
		t.Fatalf("expected later matchday first")
	}
	if !Less(c, a) {
		t.Fatalf("expected tie to break on id descending")
	}
}
