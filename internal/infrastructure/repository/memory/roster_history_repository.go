package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

type rosterKey struct {
	teamID     string
	matchDayID string
}

// RosterHistoryRepository keeps each (team, matchday) entry set as one value
// so Replace swaps it under a single lock.
type RosterHistoryRepository struct {
	mu     sync.RWMutex
	sets   map[rosterKey][]rosterhistory.Entry
	nextID int64
}

func NewRosterHistoryRepository() *RosterHistoryRepository {
	return &RosterHistoryRepository{sets: make(map[rosterKey][]rosterhistory.Entry)}
}

func (r *RosterHistoryRepository) Replace(_ context.Context, teamID, matchDayID string, entries []rosterhistory.EntryInput, capturedAt time.Time) ([]rosterhistory.Entry, error) {
	if err := rosterhistory.ValidateEntries(entries); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey{teamID: teamID, matchDayID: matchDayID}
	if len(entries) == 0 {
		delete(r.sets, key)
		return []rosterhistory.Entry{}, nil
	}

	set := make([]rosterhistory.Entry, 0, len(entries))
	for _, e := range entries {
		r.nextID++
		set = append(set, rosterhistory.Entry{
			ID:         r.nextID,
			TeamID:     teamID,
			MatchDayID: matchDayID,
			PlayerID:   e.PlayerID,
			IsCaptain:  e.IsCaptain,
			CreatedAt:  capturedAt,
		})
	}
	r.sets[key] = set

	return cloneEntries(set), nil
}

func (r *RosterHistoryRepository) ListByTeamAndMatchDay(_ context.Context, teamID, matchDayID string) ([]rosterhistory.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneEntries(r.sets[rosterKey{teamID: teamID, matchDayID: matchDayID}]), nil
}

func (r *RosterHistoryRepository) ListByTeam(_ context.Context, teamID string) ([]rosterhistory.Entry, error) {
	return r.collect(func(k rosterKey) bool { return k.teamID == teamID }), nil
}

func (r *RosterHistoryRepository) ListByMatchDay(_ context.Context, matchDayID string) ([]rosterhistory.Entry, error) {
	return r.collect(func(k rosterKey) bool { return k.matchDayID == matchDayID }), nil
}

func (r *RosterHistoryRepository) Exists(_ context.Context, teamID, matchDayID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sets[rosterKey{teamID: teamID, matchDayID: matchDayID}]) > 0, nil
}

func (r *RosterHistoryRepository) ListTeamIDsByMatchDay(_ context.Context, matchDayID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for key, set := range r.sets {
		if key.matchDayID == matchDayID && len(set) > 0 {
			out = append(out, key.teamID)
		}
	}
	sort.Strings(out)

	return out, nil
}

func (r *RosterHistoryRepository) Delete(_ context.Context, teamID, matchDayID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sets, rosterKey{teamID: teamID, matchDayID: matchDayID})
	return nil
}

func (r *RosterHistoryRepository) collect(match func(rosterKey) bool) []rosterhistory.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rosterhistory.Entry, 0)
	for key, set := range r.sets {
		if match(key) {
			out = append(out, set...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func cloneEntries(set []rosterhistory.Entry) []rosterhistory.Entry {
	out := make([]rosterhistory.Entry, len(set))
	copy(out, set)
	return out
}
