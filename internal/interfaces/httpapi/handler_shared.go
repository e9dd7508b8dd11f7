package httpapi

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/player"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/stats"
	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/team"
	"github.com/riskibarqy/fantasy-waterpolo/internal/usecase"
)

type createMatchDayRequest struct {
	ID        string    `json:"id" validate:"omitempty,max=64"`
	Title     string    `json:"title" validate:"required,max=128"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

type rosterEntryRequest struct {
	PlayerID  string `json:"player_id" validate:"required"`
	IsCaptain bool   `json:"is_captain"`
}

type replaceRosterHistoryRequest struct {
	Players []rosterEntryRequest `json:"players" validate:"dive"`
}

type snapshotRosterRequest struct {
	SkipExisting *bool `json:"skip_existing"`
}

type teamPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type upsertPlayerStatsRequest struct {
	Goals       int `json:"goals" validate:"min=0"`
	Assists     int `json:"assists" validate:"min=0"`
	Blocks      int `json:"blocks" validate:"min=0"`
	Steals      int `json:"steals" validate:"min=0"`
	PFDrawn     int `json:"pf_drawn" validate:"min=0"`
	PF          int `json:"pf" validate:"min=0"`
	BallsLost   int `json:"balls_lost" validate:"min=0"`
	ContraFouls int `json:"contra_fouls" validate:"min=0"`
	Shots       int `json:"shots" validate:"min=0"`
	SwimOffs    int `json:"swim_offs" validate:"min=0"`
	Brutality   int `json:"brutality" validate:"min=0"`
	Saves       int `json:"saves" validate:"min=0"`
	Wins        int `json:"wins" validate:"min=0"`
}

type pathIDsRequest struct {
	TeamID     string `validate:"omitempty,max=64"`
	MatchDayID string `validate:"omitempty,max=64"`
	PlayerID   string `validate:"omitempty,max=64"`
}

type playerDTO struct {
	ID       string `json:"id"`
	ClubID   string `json:"club_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Active   bool   `json:"active"`
}

type teamMemberDTO struct {
	PlayerID  string `json:"player_id"`
	Position  string `json:"position"`
	IsCaptain bool   `json:"is_captain"`
}

type teamDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	OwnerID   string          `json:"owner_id,omitempty"`
	CaptainID string          `json:"captain_id,omitempty"`
	Players   []teamMemberDTO `json:"players"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

type matchDayDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status,omitempty"`
}

type rosterEntryDTO struct {
	ID         int64  `json:"id"`
	TeamID     string `json:"team_id"`
	MatchDayID string `json:"matchday_id"`
	PlayerID   string `json:"player_id"`
	IsCaptain  bool   `json:"is_captain"`
	CreatedAt  string `json:"created_at"`
}

type rosterSetDTO struct {
	TeamID     string           `json:"team_id"`
	MatchDayID string           `json:"matchday_id"`
	CaptainID  string           `json:"captain_id,omitempty"`
	Entries    []rosterEntryDTO `json:"entries"`
}

type resolvedRosterDTO struct {
	TeamID           string           `json:"team_id"`
	MatchDayID       string           `json:"matchday_id"`
	SourceMatchDayID string           `json:"source_matchday_id,omitempty"`
	Fallback         bool             `json:"fallback"`
	Entries          []rosterEntryDTO `json:"entries"`
}

type playerStatsDTO struct {
	PlayerID    string `json:"player_id"`
	MatchDayID  string `json:"matchday_id"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Blocks      int    `json:"blocks"`
	Steals      int    `json:"steals"`
	PFDrawn     int    `json:"pf_drawn"`
	PF          int    `json:"pf"`
	BallsLost   int    `json:"balls_lost"`
	ContraFouls int    `json:"contra_fouls"`
	Shots       int    `json:"shots"`
	SwimOffs    int    `json:"swim_offs"`
	Brutality   int    `json:"brutality"`
	Saves       int    `json:"saves"`
	Wins        int    `json:"wins"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type teamPointsDTO struct {
	TeamID string `json:"team_id"`
	Points int    `json:"points"`
}

type matchDayScoreDTO struct {
	MatchDayID       string `json:"matchday_id"`
	Points           int    `json:"points"`
	SourceMatchDayID string `json:"source_matchday_id,omitempty"`
}

type teamStandingDTO struct {
	Rank           int                `json:"rank"`
	TeamID         string             `json:"team_id"`
	TeamName       string             `json:"team_name"`
	TotalPoints    int                `json:"total_points"`
	MatchDayScores []matchDayScoreDTO `json:"matchday_scores"`
}

type playerContributionDTO struct {
	PlayerID   string `json:"player_id"`
	IsCaptain  bool   `json:"is_captain"`
	HasStats   bool   `json:"has_stats"`
	BasePoints int    `json:"base_points"`
	Points     int    `json:"points"`
}

type teamBreakdownDTO struct {
	TeamID           string                  `json:"team_id"`
	MatchDayID       string                  `json:"matchday_id"`
	SourceMatchDayID string                  `json:"source_matchday_id,omitempty"`
	Fallback         bool                    `json:"fallback"`
	TotalPoints      int                     `json:"total_points"`
	Players          []playerContributionDTO `json:"players"`
}

type snapshotResultDTO struct {
	MatchDayID string         `json:"matchday_id"`
	Frozen     []rosterSetDTO `json:"frozen"`
}

type startMatchDayDTO struct {
	MatchDayID string `json:"matchday_id"`
	Started    bool   `json:"started"`
}

type startDueDTO struct {
	Started []string `json:"started"`
	Skipped []string `json:"skipped"`
	Failed  []string `json:"failed"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:       v.ID,
		ClubID:   v.ClubID,
		Name:     v.Name,
		Position: string(v.Position),
		Active:   v.Active,
	}
}

func teamToDTO(v team.Team) teamDTO {
	members := make([]teamMemberDTO, 0, len(v.Players))
	for _, m := range v.Players {
		members = append(members, teamMemberDTO{
			PlayerID:  m.PlayerID,
			Position:  string(m.Position),
			IsCaptain: m.PlayerID == v.CaptainID,
		})
	}
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		OwnerID:   v.OwnerID,
		CaptainID: v.CaptainID,
		Players:   members,
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func matchDayViewToDTO(v usecase.MatchDayView) matchDayDTO {
	return matchDayDTO{
		ID:        v.MatchDay.ID,
		Title:     v.MatchDay.Title,
		StartTime: formatTime(v.MatchDay.StartTime),
		EndTime:   formatTime(v.MatchDay.EndTime),
		Status:    string(v.Status),
	}
}

func entriesToDTO(entries []rosterhistory.Entry) []rosterEntryDTO {
	out := make([]rosterEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, rosterEntryDTO{
			ID:         e.ID,
			TeamID:     e.TeamID,
			MatchDayID: e.MatchDayID,
			PlayerID:   e.PlayerID,
			IsCaptain:  e.IsCaptain,
			CreatedAt:  formatTime(e.CreatedAt),
		})
	}
	return out
}

func rosterSetToDTO(teamID, matchDayID string, entries []rosterhistory.Entry) rosterSetDTO {
	return rosterSetDTO{
		TeamID:     teamID,
		MatchDayID: matchDayID,
		CaptainID:  rosterhistory.Captain(entries),
		Entries:    entriesToDTO(entries),
	}
}

// rosterSetsToDTO flattens a grouped result into a stable list ordered by the
// grouping key.
func rosterSetsToDTO(grouped map[string][]rosterhistory.Entry, keyIsTeam bool, fixedID string) []rosterSetDTO {
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]rosterSetDTO, 0, len(keys))
	for _, k := range keys {
		if keyIsTeam {
			out = append(out, rosterSetToDTO(k, fixedID, grouped[k]))
			continue
		}
		out = append(out, rosterSetToDTO(fixedID, k, grouped[k]))
	}
	return out
}

func resolvedRosterToDTO(v usecase.ResolvedRoster) resolvedRosterDTO {
	return resolvedRosterDTO{
		TeamID:           v.TeamID,
		MatchDayID:       v.MatchDayID,
		SourceMatchDayID: v.SourceMatchDayID,
		Fallback:         v.Fallback,
		Entries:          entriesToDTO(v.Entries),
	}
}

func statsToDTO(v stats.PlayerStats) playerStatsDTO {
	return playerStatsDTO{
		PlayerID:    v.PlayerID,
		MatchDayID:  v.MatchDayID,
		Goals:       v.Goals,
		Assists:     v.Assists,
		Blocks:      v.Blocks,
		Steals:      v.Steals,
		PFDrawn:     v.PFDrawn,
		PF:          v.PF,
		BallsLost:   v.BallsLost,
		ContraFouls: v.ContraFouls,
		Shots:       v.Shots,
		SwimOffs:    v.SwimOffs,
		Brutality:   v.Brutality,
		Saves:       v.Saves,
		Wins:        v.Wins,
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

func (r upsertPlayerStatsRequest) toDomain(playerID, matchDayID string) stats.PlayerStats {
	return stats.PlayerStats{
		PlayerID:    playerID,
		MatchDayID:  matchDayID,
		Goals:       r.Goals,
		Assists:     r.Assists,
		Blocks:      r.Blocks,
		Steals:      r.Steals,
		PFDrawn:     r.PFDrawn,
		PF:          r.PF,
		BallsLost:   r.BallsLost,
		ContraFouls: r.ContraFouls,
		Shots:       r.Shots,
		SwimOffs:    r.SwimOffs,
		Brutality:   r.Brutality,
		Saves:       r.Saves,
		Wins:        r.Wins,
	}
}

func standingsToDTO(ctx context.Context, items []scoring.TeamStanding) []teamStandingDTO {
	_, span := startSpan(ctx, "httpapi.standingsToDTO")
	defer span.End()

	out := make([]teamStandingDTO, 0, len(items))
	for _, item := range items {
		scores := make([]matchDayScoreDTO, 0, len(item.MatchDayScores))
		for _, s := range item.MatchDayScores {
			scores = append(scores, matchDayScoreDTO{
				MatchDayID:       s.MatchDayID,
				Points:           s.Points,
				SourceMatchDayID: s.SourceMatchDayID,
			})
		}
		out = append(out, teamStandingDTO{
			Rank:           item.Rank,
			TeamID:         item.TeamID,
			TeamName:       item.TeamName,
			TotalPoints:    item.TotalPoints,
			MatchDayScores: scores,
		})
	}
	return out
}

func breakdownToDTO(v usecase.TeamMatchDayBreakdown) teamBreakdownDTO {
	players := make([]playerContributionDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerContributionDTO{
			PlayerID:   p.PlayerID,
			IsCaptain:  p.IsCaptain,
			HasStats:   p.HasStats,
			BasePoints: p.Base,
			Points:     p.Points,
		})
	}
	return teamBreakdownDTO{
		TeamID:           v.TeamID,
		MatchDayID:       v.MatchDayID,
		SourceMatchDayID: v.SourceMatchDayID,
		Fallback:         v.Fallback,
		TotalPoints:      v.TotalPoints,
		Players:          players,
	}
}
