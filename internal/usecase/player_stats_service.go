package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

type PlayerStatsService struct {
	statsRepo  stats.Repository
	playerRepo player.Repository
	matchDays  MatchDayReader
	notifier   changePublisher
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerStatsService(
	statsRepo stats.Repository,
	playerRepo player.Repository,
	matchDays MatchDayReader,
	notifier changePublisher,
	logger *logging.Logger,
) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsService{
		statsRepo:  statsRepo,
		playerRepo: playerRepo,
		matchDays:  matchDays,
		notifier:   publisherOrNoop(notifier),
		logger:     logger,
		now:        time.Now,
	}
}

// UpsertPlayerStats writes one player's stats for one matchday.
func (s *PlayerStatsService) UpsertPlayerStats(ctx context.Context, row stats.PlayerStats) (stats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.UpsertPlayerStats")
	defer span.End()

	row.PlayerID = strings.TrimSpace(row.PlayerID)
	row.MatchDayID = strings.TrimSpace(row.MatchDayID)
	if err := row.Validate(); err != nil {
		return stats.PlayerStats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, row.PlayerID)
	if err != nil {
		return stats.PlayerStats{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return stats.PlayerStats{}, fmt.Errorf("%w: player=%s", ErrNotFound, row.PlayerID)
	}
	_, exists, err = s.matchDays.GetByID(ctx, row.MatchDayID)
	if err != nil {
		return stats.PlayerStats{}, fmt.Errorf("get matchday: %w", err)
	}
	if !exists {
		return stats.PlayerStats{}, fmt.Errorf("%w: matchday=%s", ErrNotFound, row.MatchDayID)
	}

	row.UpdatedAt = s.now().UTC()
	out, err := s.statsRepo.Upsert(ctx, row)
	if err != nil {
		return stats.PlayerStats{}, fmt.Errorf("upsert player stats: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeStats, PlayerID: row.PlayerID, MatchDayID: row.MatchDayID})

	return out, nil
}

// GetPlayerStats lists a player's stats across matchdays.
func (s *PlayerStatsService) GetPlayerStats(ctx context.Context, playerID string) ([]stats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetPlayerStats")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	rows, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player stats by player: %w", err)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].MatchDayID < rows[j].MatchDayID })
	return rows, nil
}

func (s *PlayerStatsService) ListMatchDayStats(ctx context.Context, matchDayID string) ([]stats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ListMatchDayStats")
	defer span.End()

	matchDayID = strings.TrimSpace(matchDayID)
	if matchDayID == "" {
		return nil, fmt.Errorf("%w: matchday_id is required", ErrInvalidInput)
	}

	rows, err := s.statsRepo.ListByMatchDay(ctx, matchDayID)
	if err != nil {
		return nil, fmt.Errorf("list player stats by matchday: %w", err)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })
	return rows, nil
}
