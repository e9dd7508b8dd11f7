package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
	now   func() time.Time
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	index := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		index[item.ID] = team.Clone(item)
	}

	return &TeamRepository{teams: index, now: time.Now}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, team.Clone(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return team.Clone(item), true, nil
}

func (r *TeamRepository) AddPlayer(_ context.Context, teamID string, member team.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	if item.HasPlayer(member.PlayerID) {
		return nil
	}
	item.Players = append(item.Players, member)
	item.UpdatedAt = r.now().UTC()
	r.teams[teamID] = item

	return nil
}

func (r *TeamRepository) RemovePlayer(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	kept := make([]team.Member, 0, len(item.Players))
	for _, m := range item.Players {
		if m.PlayerID != playerID {
			kept = append(kept, m)
		}
	}
	item.Players = kept
	if item.CaptainID == playerID {
		item.CaptainID = ""
	}
	item.UpdatedAt = r.now().UTC()
	r.teams[teamID] = item

	return nil
}

func (r *TeamRepository) SetCaptain(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	if !item.HasPlayer(playerID) {
		return fmt.Errorf("%w: player %s team %s", team.ErrCaptainNotMember, playerID, teamID)
	}
	item.CaptainID = playerID
	item.UpdatedAt = r.now().UTC()
	r.teams[teamID] = item

	return nil
}
