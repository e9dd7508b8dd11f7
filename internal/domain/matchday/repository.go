package matchday

import "context"

// Repository describes matchday persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]MatchDay, error)
	GetByID(ctx context.Context, matchDayID string) (MatchDay, bool, error)
	Create(ctx context.Context, md MatchDay) error
}
