package player

import "fmt"

// Position is a water-polo playing position.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionCenter     Position = "CB"
	PositionDriver     Position = "DR"
	PositionWing       Position = "WG"
	PositionPoint      Position = "PT"
	PositionUtility    Position = "UT"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionCenter:     {},
	PositionDriver:     {},
	PositionWing:       {},
	PositionPoint:      {},
	PositionUtility:    {},
}

// Player is a real water-polo athlete that fantasy teams can pick.
type Player struct {
	ID       string
	ClubID   string
	Name     string
	Position Position
	Active   bool
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.ClubID == "" {
		return fmt.Errorf("player club id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
