package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/score"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

// TurnResult is returned by MakeTurn.
type TurnResult struct {
	Outcome OutcomeView `json:"outcome"`
	Match   Snapshot    `json:"match"`

	Kind   tictactoe.OutcomeKind `json:"-"`
	Reason error                 `json:"-"`
}

// MatchManager serializes access to a single hot-seat match so that concurrent
// transports observe one command at a time.
type MatchManager struct {
	logger *slog.Logger

	mu        sync.Mutex
	match     *tictactoe.Match
	timeout   time.Duration
	listeners []Listener
}

// Listener receives the match state after every accepted command.
type Listener func(Snapshot)

type Options struct {
	PlayerX        string
	PlayerO        string
	StorageTimeout time.Duration
}

// NewMatchManager loads persisted scores through tracker and starts a new match.
func NewMatchManager(ctx context.Context, logger *slog.Logger, tracker *score.Tracker, opts Options) *MatchManager {
	manager := &MatchManager{
		timeout: opts.StorageTimeout,
	}

	storeCtx, cancel := manager.storageContext(ctx)
	defer cancel()

	tracker.Load(storeCtx)

	manager.match = tictactoe.NewMatch(tracker,
		tictactoe.WithID(uuid.NewString()),
		tictactoe.WithPlayerNames(opts.PlayerX, opts.PlayerO),
	)
	manager.logger = logger.With("component", "match_manager", "matchID", manager.match.ID())

	return manager
}

func (that *MatchManager) MakeTurn(ctx context.Context, cell int) TurnResult {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	mark := that.match.CurrentPlayer().Mark

	storeCtx, cancel := that.storageContext(ctx)
	defer cancel()

	outcome := that.match.PlayTurn(storeCtx, cell)

	switch outcome.Kind {
	case tictactoe.Rejected:
		log.Info("turn rejected", "mark", mark.String(), "reason", outcome.Reason)
	case tictactoe.Win:
		log.Info("match won", "mark", mark.String(), "player", outcome.Winner.Name, "line", outcome.Line)
	case tictactoe.Draw:
		log.Info("match drawn")
	default:
		log.Debug("turn played", "mark", mark.String())
	}

	snapshot := newSnapshot(that.match)
	if outcome.Kind != tictactoe.Rejected {
		that.notify(snapshot)
	}

	return TurnResult{
		Outcome: newOutcomeView(outcome),
		Match:   snapshot,
		Kind:    outcome.Kind,
		Reason:  outcome.Reason,
	}
}

func (that *MatchManager) ResetMatch() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.match.ResetMatch()
	that.logger.Info("match reset")

	return that.notify(newSnapshot(that.match))
}

func (that *MatchManager) ResetScores(ctx context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	storeCtx, cancel := that.storageContext(ctx)
	defer cancel()

	that.match.ResetScores(storeCtx)
	that.logger.Info("scores reset")

	return that.notify(newSnapshot(that.match))
}

func (that *MatchManager) SetPlayerNames(nameX, nameO string) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.match.SetPlayerNames(nameX, nameO)

	return that.notify(newSnapshot(that.match))
}

func (that *MatchManager) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return newSnapshot(that.match)
}

// Subscribe registers listener for state changes. Listeners run while the match is locked
// and must not call back into the manager.
func (that *MatchManager) Subscribe(listener Listener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *MatchManager) notify(snapshot Snapshot) Snapshot {
	for _, listener := range that.listeners {
		listener(snapshot)
	}

	return snapshot
}

// storageContext bounds a store round trip. Cancelling the caller does not cut a write short.
func (that *MatchManager) storageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if that.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, that.timeout)
}
