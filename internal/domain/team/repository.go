package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	AddPlayer(ctx context.Context, teamID string, member Member) error
	RemovePlayer(ctx context.Context, teamID, playerID string) error
	SetCaptain(ctx context.Context, teamID, playerID string) error
}
