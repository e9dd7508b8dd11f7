package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

type ChangeKind string

const (
	ChangeStats         ChangeKind = "stats"
	ChangeTeamRoster    ChangeKind = "team_roster"
	ChangeCaptain       ChangeKind = "captain"
	ChangeRosterHistory ChangeKind = "roster_history"
	ChangeMatchDay      ChangeKind = "matchday"
)

// Change describes one committed mutation that can affect scoring.
type Change struct {
	Kind       ChangeKind
	TeamID     string
	PlayerID   string
	MatchDayID string
}

type ChangeListener interface {
	OnChange(ctx context.Context, change Change)
}

type ChangeListenerFunc func(ctx context.Context, change Change)

func (f ChangeListenerFunc) OnChange(ctx context.Context, change Change) {
	f(ctx, change)
}

type changePublisher interface {
	Publish(ctx context.Context, change Change)
}

// ChangeNotifier fans committed mutations out to listeners synchronously, so
// a write returns only after every listener has seen it.
type ChangeNotifier struct {
	mu        sync.RWMutex
	listeners []ChangeListener
	logger    *logging.Logger
}

func NewChangeNotifier(logger *logging.Logger) *ChangeNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChangeNotifier{logger: logger}
}

func (n *ChangeNotifier) Subscribe(listener ChangeListener) {
	if listener == nil {
		return
	}
	n.mu.Lock()
	n.listeners = append(n.listeners, listener)
	n.mu.Unlock()
}

func (n *ChangeNotifier) Publish(ctx context.Context, change Change) {
	if n == nil {
		return
	}
	n.mu.RLock()
	listeners := append([]ChangeListener(nil), n.listeners...)
	n.mu.RUnlock()

	n.logger.DebugContext(ctx, "publish change",
		"kind", change.Kind,
		"team_id", change.TeamID,
		"player_id", change.PlayerID,
		"matchday_id", change.MatchDayID,
		"listeners", len(listeners),
	)
	for _, listener := range listeners {
		listener.OnChange(ctx, change)
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Change) {}

func publisherOrNoop(p changePublisher) changePublisher {
	if p == nil {
		return noopPublisher{}
	}
	if n, ok := p.(*ChangeNotifier); ok && n == nil {
		return noopPublisher{}
	}
	return p
}
