package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

const defaultStandingsWorkers = 8

type TeamMatchDayBreakdown struct {
	TeamID           string
	MatchDayID       string
	SourceMatchDayID string
	Fallback         bool
	TotalPoints      int
	Players          []scoring.PlayerContribution
}

type ScoringService struct {
	teams       TeamReader
	matchDays   MatchDayReader
	statsReader StatsReader
	historyRepo rosterhistory.Repository
	resolver    *RosterResolver
	cfg         scoring.PointsConfig
	standings   *StandingsCache
	workers     int
	logger      *logging.Logger
}

func NewScoringService(
	teams TeamReader,
	matchDays MatchDayReader,
	statsReader StatsReader,
	historyRepo rosterhistory.Repository,
	resolver *RosterResolver,
	cfg scoring.PointsConfig,
	standingsTTL time.Duration,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &ScoringService{
		teams:       teams,
		matchDays:   matchDays,
		statsReader: statsReader,
		historyRepo: historyRepo,
		resolver:    resolver,
		cfg:         cfg,
		workers:     defaultStandingsWorkers,
		logger:      logger,
	}
	s.standings = NewStandingsCache(s.ComputeStandings, standingsTTL, logger.Named("standings"))
	return s
}

func (s *ScoringService) SetStandingsWorkers(workers int) {
	if workers > 0 {
		s.workers = workers
	}
}

// Standings exposes the cache so it can be subscribed to change events.
func (s *ScoringService) Standings() *StandingsCache {
	return s.standings
}

// GetTeamsWithScores serves the cached league standings.
func (s *ScoringService) GetTeamsWithScores(ctx context.Context) ([]scoring.TeamStanding, error) {
	return s.standings.Get(ctx)
}

// CalculatePoints scores every team for one matchday without caching.
func (s *ScoringService) CalculatePoints(ctx context.Context, matchDayID string) ([]scoring.TeamPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculatePoints")
	defer span.End()

	matchDayID = strings.TrimSpace(matchDayID)
	if matchDayID == "" {
		return nil, fmt.Errorf("%w: matchday_id is required", ErrInvalidInput)
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	statsByPlayer, err := s.loadStatsIndex(ctx, matchDayID)
	if err != nil {
		return nil, err
	}

	out := make([]scoring.TeamPoints, 0, len(teams))
	for _, item := range teams {
		resolved, err := s.resolver.Resolve(ctx, item.ID, matchDayID)
		if err != nil {
			return nil, fmt.Errorf("resolve roster team=%s: %w", item.ID, err)
		}
		out = append(out, scoring.TeamPoints{
			TeamID: item.ID,
			Points: scoring.ComputePoints(resolved.Entries, statsByPlayer, s.cfg),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out, nil
}

func (s *ScoringService) GetTeamMatchDayBreakdown(ctx context.Context, teamID, matchDayID string) (TeamMatchDayBreakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetTeamMatchDayBreakdown")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	matchDayID = strings.TrimSpace(matchDayID)
	if teamID == "" || matchDayID == "" {
		return TeamMatchDayBreakdown{}, fmt.Errorf("%w: team_id and matchday_id are required", ErrInvalidInput)
	}

	_, exists, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return TeamMatchDayBreakdown{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamMatchDayBreakdown{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	resolved, err := s.resolver.Resolve(ctx, teamID, matchDayID)
	if err != nil {
		return TeamMatchDayBreakdown{}, err
	}
	statsByPlayer, err := s.loadStatsIndex(ctx, matchDayID)
	if err != nil {
		return TeamMatchDayBreakdown{}, err
	}

	players, total := scoring.ComputeBreakdown(resolved.Entries, statsByPlayer, s.cfg)
	return TeamMatchDayBreakdown{
		TeamID:           teamID,
		MatchDayID:       matchDayID,
		SourceMatchDayID: resolved.SourceMatchDayID,
		Fallback:         resolved.Fallback,
		TotalPoints:      total,
		Players:          players,
	}, nil
}

// ComputeStandings resolves and scores every team across every matchday and
// ranks teams by total points. Equal totals share a rank.
func (s *ScoringService) ComputeStandings(ctx context.Context) ([]scoring.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ComputeStandings")
	defer span.End()

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	matchDays, err := s.matchDays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchdays: %w", err)
	}
	sort.SliceStable(matchDays, func(i, j int) bool { return matchday.Less(matchDays[j], matchDays[i]) })

	statsByMatchDay := make(map[string]map[string]stats.PlayerStats, len(matchDays))
	for _, md := range matchDays {
		index, err := s.loadStatsIndex(ctx, md.ID)
		if err != nil {
			return nil, err
		}
		statsByMatchDay[md.ID] = index
	}

	now := s.resolver.now()
	p := pool.NewWithResults[scoring.TeamStanding]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(max(1, s.workers))
	for _, item := range teams {
		p.Go(func(ctx context.Context) (scoring.TeamStanding, error) {
			return s.computeTeamStanding(ctx, item, matchDays, statsByMatchDay, now)
		})
	}
	out, err := p.Wait()
	if err != nil {
		return nil, err
	}

	rankStandings(out)
	return out, nil
}

func (s *ScoringService) computeTeamStanding(
	ctx context.Context,
	item team.Team,
	matchDays []matchday.MatchDay,
	statsByMatchDay map[string]map[string]stats.PlayerStats,
	now time.Time,
) (scoring.TeamStanding, error) {
	rows, err := s.historyRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return scoring.TeamStanding{}, fmt.Errorf("list roster history team=%s: %w", item.ID, err)
	}
	byMatchDay := groupEntries(rows, func(e rosterhistory.Entry) string { return e.MatchDayID })

	standing := scoring.TeamStanding{
		TeamID:         item.ID,
		TeamName:       item.Name,
		MatchDayScores: make([]scoring.MatchDayScore, 0, len(matchDays)),
	}
	for _, md := range matchDays {
		resolved := resolveFromIndex(item.ID, md, matchDays, now, byMatchDay)
		points := scoring.ComputePoints(resolved.Entries, statsByMatchDay[md.ID], s.cfg)
		standing.TotalPoints += points
		standing.MatchDayScores = append(standing.MatchDayScores, scoring.MatchDayScore{
			MatchDayID:       md.ID,
			Points:           points,
			SourceMatchDayID: resolved.SourceMatchDayID,
		})
	}

	return standing, nil
}

func (s *ScoringService) loadStatsIndex(ctx context.Context, matchDayID string) (map[string]stats.PlayerStats, error) {
	rows, err := s.statsReader.ListByMatchDay(ctx, matchDayID)
	if err != nil {
		return nil, fmt.Errorf("list player stats matchday=%s: %w", matchDayID, err)
	}
	return stats.IndexByPlayer(rows), nil
}

func rankStandings(items []scoring.TeamStanding) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TotalPoints != items[j].TotalPoints {
			return items[i].TotalPoints > items[j].TotalPoints
		}
		return items[i].TeamID < items[j].TeamID
	})

	lastPoints := 0
	rank := 0
	for idx := range items {
		if idx == 0 || items[idx].TotalPoints != lastPoints {
			rank++
			lastPoints = items[idx].TotalPoints
		}
		items[idx].Rank = rank
	}
}
