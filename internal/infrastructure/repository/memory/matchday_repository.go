package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
)

type MatchDayRepository struct {
	mu    sync.RWMutex
	items map[string]matchday.MatchDay
}

func NewMatchDayRepository(items []matchday.MatchDay) *MatchDayRepository {
	index := make(map[string]matchday.MatchDay, len(items))
	for _, item := range items {
		index[item.ID] = item
	}

	return &MatchDayRepository{items: index}
}

func (r *MatchDayRepository) List(_ context.Context) ([]matchday.MatchDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchday.MatchDay, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return matchday.Less(out[j], out[i]) })

	return out, nil
}

func (r *MatchDayRepository) GetByID(_ context.Context, matchDayID string) (matchday.MatchDay, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchDayID]
	return item, ok, nil
}

func (r *MatchDayRepository) Create(_ context.Context, item matchday.MatchDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("%w: %s", matchday.ErrAlreadyExists, item.ID)
	}
	r.items[item.ID] = item

	return nil
}
