package matchday

import (
	"errors"
	"fmt"
	"time"
)

var ErrAlreadyExists = errors.New("matchday already exists")

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOpen      Status = "open"
	StatusStarted   Status = "started"
)

// MatchDay is one scoring round. Matchdays are immutable once created.
type MatchDay struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

func (m MatchDay) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("matchday id is required")
	}
	if m.Title == "" {
		return fmt.Errorf("matchday title is required")
	}
	if m.StartTime.IsZero() || m.EndTime.IsZero() {
		return fmt.Errorf("matchday start and end time are required")
	}
	if !m.EndTime.After(m.StartTime) {
		return fmt.Errorf("matchday end time must be after start time")
	}

	return nil
}

func (m MatchDay) HasStarted(now time.Time) bool {
	return !now.Before(m.StartTime)
}

// Status reports where the matchday is in its lifecycle. hasSnapshot is true
// once at least one roster has been frozen for it.
func (m MatchDay) Status(now time.Time, hasSnapshot bool) Status {
	switch {
	case !m.HasStarted(now):
		return StatusScheduled
	case hasSnapshot:
		return StatusStarted
	default:
		return StatusOpen
	}
}

// Less orders newest first; ties break on id descending.
func Less(a, b MatchDay) bool {
	if a.StartTime.Equal(b.StartTime) {
		return a.ID > b.ID
	}
	return a.StartTime.After(b.StartTime)
}
