package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

// TeamService owns every write to a team's live composition and publishes
// a change for each one.
type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	notifier   changePublisher
	rules      team.Rules
	logger     *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	notifier changePublisher,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		notifier:   publisherOrNoop(notifier),
		rules:      team.DefaultRules(),
		logger:     logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	return s.getTeam(ctx, teamID)
}

func (s *TeamService) AddPlayer(ctx context.Context, teamID, playerID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddPlayer")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return team.Team{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if !p.Active {
		return team.Team{}, fmt.Errorf("%w: player=%s is inactive", ErrInvalidInput, playerID)
	}

	member := team.Member{PlayerID: p.ID, Position: p.Position}
	if err := team.CanAdd(item, member, s.rules); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.AddPlayer(ctx, item.ID, member); err != nil {
		return team.Team{}, fmt.Errorf("add team player: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeTeamRoster, TeamID: item.ID, PlayerID: p.ID})

	return s.getTeam(ctx, item.ID)
}

// RemovePlayer drops a player from the team; the captain pointer is cleared
// when it pointed at that player.
func (s *TeamService) RemovePlayer(ctx context.Context, teamID, playerID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemovePlayer")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	playerID = strings.TrimSpace(playerID)
	if !item.HasPlayer(playerID) {
		return team.Team{}, fmt.Errorf("%w: player=%s not on team=%s", ErrNotFound, playerID, item.ID)
	}
	if err := s.teamRepo.RemovePlayer(ctx, item.ID, playerID); err != nil {
		return team.Team{}, fmt.Errorf("remove team player: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeTeamRoster, TeamID: item.ID, PlayerID: playerID})

	return s.getTeam(ctx, item.ID)
}

func (s *TeamService) SetCaptain(ctx context.Context, teamID, playerID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetCaptain")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	playerID = strings.TrimSpace(playerID)
	if !item.HasPlayer(playerID) {
		return team.Team{}, fmt.Errorf("%w: captain %s is not on team=%s", ErrInvalidInput, playerID, item.ID)
	}
	if item.CaptainID == playerID {
		return item, nil
	}
	if err := s.teamRepo.SetCaptain(ctx, item.ID, playerID); err != nil {
		if errors.Is(err, team.ErrCaptainNotMember) {
			return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return team.Team{}, fmt.Errorf("set team captain: %w", err)
	}
	s.notifier.Publish(ctx, Change{Kind: ChangeCaptain, TeamID: item.ID, PlayerID: playerID})

	return s.getTeam(ctx, item.ID)
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}
