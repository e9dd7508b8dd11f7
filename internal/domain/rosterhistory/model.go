package rosterhistory

import (
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrMultipleCaptains = crerr.New("more than one captain in roster")
	ErrDuplicatePlayer  = crerr.New("duplicate player in roster")
	ErrEmptyPlayerID    = crerr.New("roster entry player id is required")
)

// Entry is one frozen (team, matchday, player) row. The set of entries for a
// (TeamID, MatchDayID) pair is the team's lineup for that matchday.
type Entry struct {
	ID         int64
	TeamID     string
	MatchDayID string
	PlayerID   string
	IsCaptain  bool
	CreatedAt  time.Time
}

type EntryInput struct {
	PlayerID  string
	IsCaptain bool
}

// ValidateEntries enforces the per-snapshot rules: no empty ids, no player
// twice, at most one captain. An empty set is valid.
func ValidateEntries(entries []EntryInput) error {
	seen := make(map[string]struct{}, len(entries))
	captains := 0
	for _, e := range entries {
		if e.PlayerID == "" {
			return ErrEmptyPlayerID
		}
		if _, dup := seen[e.PlayerID]; dup {
			return crerr.Wrapf(ErrDuplicatePlayer, "player %s", e.PlayerID)
		}
		seen[e.PlayerID] = struct{}{}
		if e.IsCaptain {
			captains++
		}
	}
	if captains > 1 {
		return crerr.Wrapf(ErrMultipleCaptains, "got %d", captains)
	}

	return nil
}

// Captain returns the captain's player id, or "" when the set has none.
func Captain(entries []Entry) string {
	for _, e := range entries {
		if e.IsCaptain {
			return e.PlayerID
		}
	}
	return ""
}
