package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	idgen "github.com/riskibarqy/fantasy-waterpolo/internal/platform/id"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/resilience"
)

// SnapshotPolicy decides which teams StartMatchDay freezes.
type SnapshotPolicy string

const (
	// SnapshotPolicyAny skips the start entirely once any team has one. Default.
	SnapshotPolicyAny SnapshotPolicy = "any"
	// SnapshotPolicyPerTeam freezes every team that has no snapshot yet.
	SnapshotPolicyPerTeam SnapshotPolicy = "per_team"
)

func ParseSnapshotPolicy(raw string) (SnapshotPolicy, error) {
	switch SnapshotPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SnapshotPolicyAny:
		return SnapshotPolicyAny, nil
	case SnapshotPolicyPerTeam:
		return SnapshotPolicyPerTeam, nil
	default:
		return "", fmt.Errorf("%w: unknown snapshot policy %q", ErrInvalidInput, raw)
	}
}

type MatchDayView struct {
	MatchDay matchday.MatchDay
	Status   matchday.Status
}

type CreateMatchDayInput struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

type StartDueResult struct {
	Started []string
	Skipped []string
	Failed  []string
}

type MatchDayService struct {
	matchDayRepo matchday.Repository
	historyRepo  rosterhistory.Repository
	history      *RosterHistoryService
	notifier     changePublisher
	policy       SnapshotPolicy
	startFlight  resilience.SingleFlight
	ids          idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewMatchDayService(
	matchDayRepo matchday.Repository,
	historyRepo rosterhistory.Repository,
	history *RosterHistoryService,
	notifier changePublisher,
	policy SnapshotPolicy,
	logger *logging.Logger,
) *MatchDayService {
	if policy == "" {
		policy = SnapshotPolicyAny
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchDayService{
		matchDayRepo: matchDayRepo,
		historyRepo:  historyRepo,
		history:      history,
		notifier:     publisherOrNoop(notifier),
		policy:       policy,
		ids:          idgen.NewRandomGenerator("md-"),
		logger:       logger,
		now:          time.Now,
	}
}

// ListMatchDays returns every matchday oldest first with its lifecycle status.
func (s *MatchDayService) ListMatchDays(ctx context.Context) ([]MatchDayView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDayService.ListMatchDays")
	defer span.End()

	items, err := s.matchDayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchdays: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return matchday.Less(items[j], items[i]) })

	now := s.now()
	out := make([]MatchDayView, 0, len(items))
	for _, item := range items {
		view, err := s.view(ctx, item, now)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *MatchDayService) GetMatchDay(ctx context.Context, matchDayID string) (MatchDayView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDayService.GetMatchDay")
	defer span.End()

	item, err := s.getMatchDay(ctx, matchDayID)
	if err != nil {
		return MatchDayView{}, err
	}
	return s.view(ctx, item, s.now())
}

func (s *MatchDayService) CreateMatchDay(ctx context.Context, input CreateMatchDayInput) (matchday.MatchDay, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDayService.CreateMatchDay")
	defer span.End()

	matchDayID := strings.TrimSpace(input.ID)
	if matchDayID == "" {
		generated, err := s.ids.NewID()
		if err != nil {
			return matchday.MatchDay{}, fmt.Errorf("generate matchday id: %w", err)
		}
		matchDayID = generated
	}

	item := matchday.MatchDay{
		ID:        matchDayID,
		Title:     strings.TrimSpace(input.Title),
		StartTime: input.StartTime.UTC(),
		EndTime:   input.EndTime.UTC(),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return matchday.MatchDay{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.matchDayRepo.GetByID(ctx, item.ID)
	if err != nil {
		return matchday.MatchDay{}, fmt.Errorf("get matchday: %w", err)
	}
	if exists {
		return matchday.MatchDay{}, fmt.Errorf("%w: matchday=%s already exists", ErrInvalidState, item.ID)
	}

	if err := s.matchDayRepo.Create(ctx, item); err != nil {
		if errors.Is(err, matchday.ErrAlreadyExists) {
			return matchday.MatchDay{}, fmt.Errorf("%w: matchday=%s already exists", ErrInvalidState, item.ID)
		}
		return matchday.MatchDay{}, fmt.Errorf("create matchday: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeMatchDay, MatchDayID: item.ID})

	return item, nil
}

// StartMatchDay freezes team rosters for a matchday whose start time has
// passed. It reports whether this call froze at least one roster, so calling
// it again for the same matchday returns false.
func (s *MatchDayService) StartMatchDay(ctx context.Context, matchDayID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDayService.StartMatchDay")
	defer span.End()

	item, err := s.getMatchDay(ctx, matchDayID)
	if err != nil {
		return false, err
	}
	if !item.HasStarted(s.now()) {
		return false, fmt.Errorf("%w: matchday=%s starts at %s", ErrInvalidState, item.ID, item.StartTime.UTC().Format(time.RFC3339))
	}

	value, err, shared := s.startFlight.Do("matchday:start:"+item.ID, func() (any, error) {
		return s.startOnce(context.WithoutCancel(ctx), item.ID)
	})
	if err != nil {
		return false, err
	}
	started, _ := value.(bool)
	if shared {
		s.logger.DebugContext(ctx, "matchday start collapsed with concurrent call", "matchday_id", item.ID)
	}
	return started, nil
}

func (s *MatchDayService) startOnce(ctx context.Context, matchDayID string) (bool, error) {
	if s.policy == SnapshotPolicyAny {
		teamIDs, err := s.historyRepo.ListTeamIDsByMatchDay(ctx, matchDayID)
		if err != nil {
			return false, fmt.Errorf("list snapshotted teams: %w", err)
		}
		if len(teamIDs) > 0 {
			s.logger.InfoContext(ctx, "matchday already started", "matchday_id", matchDayID, "teams", len(teamIDs))
			return false, nil
		}
	}

	frozen, err := s.history.SnapshotAllTeamRosters(ctx, matchDayID, SnapshotOptions{
		SkipExisting: s.policy == SnapshotPolicyPerTeam,
	})
	if err != nil {
		return false, fmt.Errorf("snapshot team rosters matchday=%s: %w", matchDayID, err)
	}

	s.logger.InfoContext(ctx, "matchday started", "matchday_id", matchDayID, "frozen", len(frozen), "policy", s.policy)
	return len(frozen) > 0, nil
}

// StartDueMatchDays starts every matchday whose start time has passed and
// that has no frozen roster yet. Failures are logged and reported per
// matchday; the remaining matchdays are still processed.
//
// A matchday with any frozen roster is left alone under both policies, so the
// periodic run never back-fills late joiners into rounds already played. Late
// joiners are frozen only by an explicit StartMatchDay under per_team.
func (s *MatchDayService) StartDueMatchDays(ctx context.Context) (StartDueResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDayService.StartDueMatchDays")
	defer span.End()

	items, err := s.matchDayRepo.List(ctx)
	if err != nil {
		return StartDueResult{}, fmt.Errorf("list matchdays: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return matchday.Less(items[j], items[i]) })

	result := StartDueResult{
		Started: []string{},
		Skipped: []string{},
		Failed:  []string{},
	}
	now := s.now()
	for _, item := range items {
		if !item.HasStarted(now) {
			continue
		}
		teamIDs, err := s.historyRepo.ListTeamIDsByMatchDay(ctx, item.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "check matchday snapshot failed", "matchday_id", item.ID, "error", err)
			result.Failed = append(result.Failed, item.ID)
			continue
		}
		if len(teamIDs) > 0 {
			continue
		}

		started, err := s.StartMatchDay(ctx, item.ID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "start due matchday failed", "matchday_id", item.ID, "error", err)
			result.Failed = append(result.Failed, item.ID)
		case started:
			result.Started = append(result.Started, item.ID)
		default:
			result.Skipped = append(result.Skipped, item.ID)
		}
	}

	return result, nil
}

func (s *MatchDayService) getMatchDay(ctx context.Context, matchDayID string) (matchday.MatchDay, error) {
	matchDayID = strings.TrimSpace(matchDayID)
	if matchDayID == "" {
		return matchday.MatchDay{}, fmt.Errorf("%w: matchday_id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchDayRepo.GetByID(ctx, matchDayID)
	if err != nil {
		return matchday.MatchDay{}, fmt.Errorf("get matchday: %w", err)
	}
	if !exists {
		return matchday.MatchDay{}, fmt.Errorf("%w: matchday=%s", ErrNotFound, matchDayID)
	}
	return item, nil
}

func (s *MatchDayService) view(ctx context.Context, item matchday.MatchDay, now time.Time) (MatchDayView, error) {
	teamIDs, err := s.historyRepo.ListTeamIDsByMatchDay(ctx, item.ID)
	if err != nil {
		return MatchDayView{}, fmt.Errorf("list snapshotted teams matchday=%s: %w", item.ID, err)
	}
	return MatchDayView{
		MatchDay: item,
		Status:   item.Status(now, len(teamIDs) > 0),
	}, nil
}
