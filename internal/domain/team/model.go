package team

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
)

// Member is one player currently on a fantasy team.
type Member struct {
	PlayerID string
	Position player.Position
}

// Team is a manager's fantasy team with its live composition. Roster
// history entries are frozen copies of Players and CaptainID.
type Team struct {
	ID        string
	Name      string
	OwnerID   string
	CaptainID string
	Players   []Member
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.CaptainID != "" && !t.HasPlayer(t.CaptainID) {
		return fmt.Errorf("team captain %s is not on the team", t.CaptainID)
	}

	return nil
}

func (t Team) HasPlayer(playerID string) bool {
	for _, m := range t.Players {
		if m.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (t Team) PlayerIDs() []string {
	out := make([]string, 0, len(t.Players))
	for _, m := range t.Players {
		out = append(out, m.PlayerID)
	}
	return out
}

func Clone(t Team) Team {
	copied := t
	copied.Players = append([]Member(nil), t.Players...)
	return copied
}
