package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

const defaultSnapshotWorkers = 8

type SnapshotOptions struct {
	// SkipExisting leaves teams that already have a snapshot for the
	// matchday untouched.
	SkipExisting bool
}

type RosterHistoryService struct {
	historyRepo rosterhistory.Repository
	teams       TeamReader
	matchDays   MatchDayReader
	notifier    changePublisher
	logger      *logging.Logger
	workers     int
	now         func() time.Time
}

func NewRosterHistoryService(
	historyRepo rosterhistory.Repository,
	teams TeamReader,
	matchDays MatchDayReader,
	notifier changePublisher,
	logger *logging.Logger,
) *RosterHistoryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterHistoryService{
		historyRepo: historyRepo,
		teams:       teams,
		matchDays:   matchDays,
		notifier:    publisherOrNoop(notifier),
		logger:      logger,
		workers:     defaultSnapshotWorkers,
		now:         time.Now,
	}
}

func (s *RosterHistoryService) SetSnapshotWorkers(workers int) {
	if workers > 0 {
		s.workers = workers
	}
}

// CreateRosterHistory replaces the frozen roster of a team for a matchday.
func (s *RosterHistoryService) CreateRosterHistory(ctx context.Context, teamID, matchDayID string, entries []rosterhistory.EntryInput) ([]rosterhistory.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.CreateRosterHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return nil, fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}
	entries = normalizeEntryInputs(entries)
	if err := rosterhistory.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.ensureMatchDay(ctx, matchDayID); err != nil {
		return nil, err
	}

	out, err := s.historyRepo.Replace(ctx, teamID, matchDayID, entries, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("replace roster history: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeRosterHistory, TeamID: teamID, MatchDayID: matchDayID})

	return out, nil
}

// GetRosterHistory returns an empty slice when nothing is frozen.
func (s *RosterHistoryService) GetRosterHistory(ctx context.Context, teamID, matchDayID string) ([]rosterhistory.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.GetRosterHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return nil, fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}

	out, err := s.historyRepo.ListByTeamAndMatchDay(ctx, teamID, matchDayID)
	if err != nil {
		return nil, fmt.Errorf("list roster history by team and matchday: %w", err)
	}
	if out == nil {
		out = []rosterhistory.Entry{}
	}
	return out, nil
}

// GetTeamRosterHistory groups all of a team's frozen rows by matchday id.
func (s *RosterHistoryService) GetTeamRosterHistory(ctx context.Context, teamID string) (map[string][]rosterhistory.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.GetTeamRosterHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	rows, err := s.historyRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list roster history by team: %w", err)
	}
	return groupEntries(rows, func(e rosterhistory.Entry) string { return e.MatchDayID }), nil
}

// GetMatchDayRosterHistory groups one matchday's frozen rows by team id.
func (s *RosterHistoryService) GetMatchDayRosterHistory(ctx context.Context, matchDayID string) (map[string][]rosterhistory.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.GetMatchDayRosterHistory")
	defer span.End()

	matchDayID = strings.TrimSpace(matchDayID)
	if matchDayID == "" {
		return nil, fmt.Errorf("%w: matchday_id is required", ErrInvalidInput)
	}

	rows, err := s.historyRepo.ListByMatchDay(ctx, matchDayID)
	if err != nil {
		return nil, fmt.Errorf("list roster history by matchday: %w", err)
	}
	return groupEntries(rows, func(e rosterhistory.Entry) string { return e.TeamID }), nil
}

func (s *RosterHistoryService) HasRosterHistory(ctx context.Context, teamID, matchDayID string) (bool, error) {
	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return false, fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}

	ok, err := s.historyRepo.Exists(ctx, teamID, matchDayID)
	if err != nil {
		return false, fmt.Errorf("check roster history exists: %w", err)
	}
	return ok, nil
}

func (s *RosterHistoryService) RemoveRosterHistory(ctx context.Context, teamID, matchDayID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.RemoveRosterHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}

	if err := s.historyRepo.Delete(ctx, teamID, matchDayID); err != nil {
		return fmt.Errorf("delete roster history: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeRosterHistory, TeamID: teamID, MatchDayID: matchDayID})
	return nil
}

// SnapshotAllTeamRosters freezes every team's live composition for the
// matchday. Teams without players are skipped. The returned map holds the
// rosters frozen by this call; on partial failure it is returned together
// with the joined per-team errors.
func (s *RosterHistoryService) SnapshotAllTeamRosters(ctx context.Context, matchDayID string, opts SnapshotOptions) (map[string][]rosterhistory.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterHistoryService.SnapshotAllTeamRosters")
	defer span.End()

	matchDayID = strings.TrimSpace(matchDayID)
	if matchDayID == "" {
		return nil, fmt.Errorf("%w: matchday_id is required", ErrInvalidInput)
	}
	if err := s.ensureMatchDay(ctx, matchDayID); err != nil {
		return nil, err
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for snapshot: %w", err)
	}

	skip := make(map[string]struct{})
	if opts.SkipExisting {
		existing, err := s.historyRepo.ListTeamIDsByMatchDay(ctx, matchDayID)
		if err != nil {
			return nil, fmt.Errorf("list snapshotted teams: %w", err)
		}
		for _, id := range existing {
			skip[id] = struct{}{}
		}
	}

	targets := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		if len(item.Players) == 0 {
			continue
		}
		if _, ok := skip[item.ID]; ok {
			continue
		}
		targets = append(targets, item)
	}

	result := make(map[string][]rosterhistory.Entry, len(targets))
	if len(targets) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(targets)))
	if err != nil {
		return nil, fmt.Errorf("create snapshot worker pool: %w", err)
	}
	defer pool.Release()

	capturedAt := s.now().UTC()
	var (
		mu      sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)
	for _, item := range targets {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			frozen, err := s.historyRepo.Replace(ctx, item.ID, matchDayID, entriesFromTeam(item), capturedAt)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("snapshot team=%s: %w", item.ID, err))
				return
			}
			result[item.ID] = frozen
		}); err != nil {
			workers.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit snapshot team=%s: %w", item.ID, err))
			mu.Unlock()
		}
	}
	workers.Wait()

	if len(result) > 0 {
		s.notifier.Publish(ctx, Change{Kind: ChangeRosterHistory, MatchDayID: matchDayID})
	}
	s.logger.InfoContext(ctx, "snapshot team rosters",
		"matchday_id", matchDayID,
		"teams", len(teams),
		"frozen", len(result),
		"skipped_existing", len(skip),
		"failed", len(errs),
	)
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	return result, nil
}

func (s *RosterHistoryService) ensureTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}

func (s *RosterHistoryService) ensureMatchDay(ctx context.Context, matchDayID string) error {
	_, exists, err := s.matchDays.GetByID(ctx, matchDayID)
	if err != nil {
		return fmt.Errorf("get matchday: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: matchday=%s", ErrNotFound, matchDayID)
	}
	return nil
}

func entriesFromTeam(t team.Team) []rosterhistory.EntryInput {
	out := make([]rosterhistory.EntryInput, 0, len(t.Players))
	for _, m := range t.Players {
		out = append(out, rosterhistory.EntryInput{
			PlayerID:  m.PlayerID,
			IsCaptain: t.CaptainID != "" && m.PlayerID == t.CaptainID,
		})
	}
	return out
}

func normalizeEntryInputs(entries []rosterhistory.EntryInput) []rosterhistory.EntryInput {
	out := make([]rosterhistory.EntryInput, 0, len(entries))
	for _, e := range entries {
		e.PlayerID = strings.TrimSpace(e.PlayerID)
		out = append(out, e)
	}
	return out
}

func groupEntries(rows []rosterhistory.Entry, key func(rosterhistory.Entry) string) map[string][]rosterhistory.Entry {
	out := make(map[string][]rosterhistory.Entry)
	for _, row := range rows {
		k := key(row)
		out[k] = append(out[k], row)
	}
	for k := range out {
		sort.SliceStable(out[k], func(i, j int) bool { return out[k][i].ID < out[k][j].ID })
	}
	return out
}
