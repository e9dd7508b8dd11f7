package team

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
)

var (
	ErrSquadFull          = errors.New("team squad is full")
	ErrTooManyGoalkeepers = errors.New("max goalkeepers exceeded")
	ErrPlayerAlreadyAdded = errors.New("player already on team")
	ErrCaptainNotMember   = errors.New("captain is not a team member")
)

// Rules bounds a fantasy team's live composition.
type Rules struct {
	MaxPlayers     int
	MaxGoalkeepers int
}

func DefaultRules() Rules {
	return Rules{
		MaxPlayers:     13,
		MaxGoalkeepers: 2,
	}
}

// CanAdd reports whether member may join t under rules.
func CanAdd(t Team, member Member, rules Rules) error {
	if member.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, ok := player.AllPositions[member.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", member.Position)
	}
	if t.HasPlayer(member.PlayerID) {
		return fmt.Errorf("%w: %s", ErrPlayerAlreadyAdded, member.PlayerID)
	}
	if rules.MaxPlayers > 0 && len(t.Players) >= rules.MaxPlayers {
		return fmt.Errorf("%w: max %d", ErrSquadFull, rules.MaxPlayers)
	}
	if member.Position == player.PositionGoalkeeper && rules.MaxGoalkeepers > 0 {
		keepers := 0
		for _, m := range t.Players {
			if m.Position == player.PositionGoalkeeper {
				keepers++
			}
		}
		if keepers >= rules.MaxGoalkeepers {
			return fmt.Errorf("%w: max %d", ErrTooManyGoalkeepers, rules.MaxGoalkeepers)
		}
	}

	return nil
}
