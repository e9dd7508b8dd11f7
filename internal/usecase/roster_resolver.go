package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

// ResolvedRoster is the effective lineup of a team for a matchday.
// SourceMatchDayID names the matchday the entries were frozen for; it is
// empty when no snapshot applies.
type ResolvedRoster struct {
	TeamID           string
	MatchDayID       string
	SourceMatchDayID string
	Fallback         bool
	Entries          []rosterhistory.Entry
}

type rosterLookup func(ctx context.Context, matchDayID string) ([]rosterhistory.Entry, error)

type RosterResolver struct {
	historyRepo rosterhistory.Repository
	matchDays   MatchDayReader
	now         func() time.Time
}

func NewRosterResolver(historyRepo rosterhistory.Repository, matchDays MatchDayReader) *RosterResolver {
	return &RosterResolver{
		historyRepo: historyRepo,
		matchDays:   matchDays,
		now:         time.Now,
	}
}

// Resolve returns the exact snapshot for (team, matchday) when one exists.
// Otherwise it walks earlier, already started matchdays from newest to oldest
// and returns the first non-empty snapshot. No match yields an empty roster.
func (r *RosterResolver) Resolve(ctx context.Context, teamID, matchDayID string) (ResolvedRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterResolver.Resolve")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return ResolvedRoster{}, fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}

	target, exists, err := r.matchDays.GetByID(ctx, matchDayID)
	if err != nil {
		return ResolvedRoster{}, fmt.Errorf("get matchday: %w", err)
	}
	if !exists {
		return ResolvedRoster{}, fmt.Errorf("%w: matchday=%s", ErrNotFound, matchDayID)
	}

	lookup := func(ctx context.Context, id string) ([]rosterhistory.Entry, error) {
		return r.historyRepo.ListByTeamAndMatchDay(ctx, teamID, id)
	}

	exact, err := lookup(ctx, target.ID)
	if err != nil {
		return ResolvedRoster{}, fmt.Errorf("list roster history: %w", err)
	}
	if len(exact) > 0 {
		return ResolvedRoster{
			TeamID:           teamID,
			MatchDayID:       target.ID,
			SourceMatchDayID: target.ID,
			Entries:          exact,
		}, nil
	}

	all, err := r.matchDays.List(ctx)
	if err != nil {
		return ResolvedRoster{}, fmt.Errorf("list matchdays: %w", err)
	}

	return resolveRoster(ctx, teamID, target, fallbackCandidates(target, all, r.now()), lookup)
}

// fallbackCandidates returns the matchdays the fallback walk visits, newest
// first: started by now, not later than target, and not target itself.
func fallbackCandidates(target matchday.MatchDay, all []matchday.MatchDay, now time.Time) []matchday.MatchDay {
	out := make([]matchday.MatchDay, 0, len(all))
	for _, md := range all {
		if md.ID == target.ID {
			continue
		}
		if md.StartTime.After(now) || md.StartTime.After(target.StartTime) {
			continue
		}
		out = append(out, md)
	}
	sort.SliceStable(out, func(i, j int) bool { return matchday.Less(out[i], out[j]) })
	return out
}

// resolveRoster assumes the exact lookup for target came back empty and walks
// candidates in order.
func resolveRoster(ctx context.Context, teamID string, target matchday.MatchDay, candidates []matchday.MatchDay, lookup rosterLookup) (ResolvedRoster, error) {
	out := ResolvedRoster{
		TeamID:     teamID,
		MatchDayID: target.ID,
		Entries:    []rosterhistory.Entry{},
	}
	for _, candidate := range candidates {
		entries, err := lookup(ctx, candidate.ID)
		if err != nil {
			return ResolvedRoster{}, fmt.Errorf("list roster history for fallback matchday=%s: %w", candidate.ID, err)
		}
		if len(entries) == 0 {
			continue
		}
		out.SourceMatchDayID = candidate.ID
		out.Fallback = true
		out.Entries = entries
		return out, nil
	}

	return out, nil
}

// resolveFromIndex resolves against rows already loaded for one team, keyed
// by matchday id. It applies the same rules as Resolve.
func resolveFromIndex(teamID string, target matchday.MatchDay, all []matchday.MatchDay, now time.Time, byMatchDay map[string][]rosterhistory.Entry) ResolvedRoster {
	if exact := byMatchDay[target.ID]; len(exact) > 0 {
		return ResolvedRoster{
			TeamID:           teamID,
			MatchDayID:       target.ID,
			SourceMatchDayID: target.ID,
			Entries:          exact,
		}
	}

	// The index lookup never fails.
	resolved, _ := resolveRoster(context.Background(), teamID, target, fallbackCandidates(target, all, now),
		func(_ context.Context, id string) ([]rosterhistory.Entry, error) {
			return byMatchDay[id], nil
		})
	return resolved
}
