// Package notifier is the in-process fan-out for balance changes: dashboard
// and wallet views subscribe per user instead of polling the ledger.
package notifier

import (
	"context"
	"sync"

	"coin-ledger/internal/metrics"
	"coin-ledger/internal/model"

	"github.com/rs/zerolog"
)

// SnapshotFunc recomputes a user's wallet snapshot from the ledger.
type SnapshotFunc func(ctx context.Context, userID int64) (*model.WalletSnapshot, error)

// Subscriber receives the fresh snapshot after a balance change.
type Subscriber func(*model.WalletSnapshot)

type BalanceNotifier struct {
	snapshot SnapshotFunc
	logger   zerolog.Logger

	mu     sync.RWMutex
	nextID int
	subs   map[int64]map[int]Subscriber
}

func New(snapshot SnapshotFunc, logger zerolog.Logger) *BalanceNotifier {
	return &BalanceNotifier{
		snapshot: snapshot,
		logger:   logger,
		subs:     make(map[int64]map[int]Subscriber),
	}
}

// Subscribe registers fn for userID's balance changes and returns the
// matching unsubscribe. Unsubscribing twice is a no-op.
func (n *BalanceNotifier) Subscribe(userID int64, fn Subscriber) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[int]Subscriber)
	}
	n.subs[userID][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[userID], id)
		if len(n.subs[userID]) == 0 {
			delete(n.subs, userID)
		}
	}
}

// Notify recomputes the snapshot for userID and delivers it to every
// subscriber. A panicking subscriber is recovered so it cannot starve the
// others.
func (n *BalanceNotifier) Notify(ctx context.Context, userID int64) {
	n.mu.RLock()
	subscribers := make([]Subscriber, 0, len(n.subs[userID]))
	for _, fn := range n.subs[userID] {
		subscribers = append(subscribers, fn)
	}
	n.mu.RUnlock()

	if len(subscribers) == 0 {
		return
	}

	snap, err := n.snapshot(ctx, userID)
	if err != nil {
		n.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to compute wallet snapshot for notification")
		return
	}

	for _, fn := range subscribers {
		n.deliver(userID, fn, snap)
	}
}

func (n *BalanceNotifier) deliver(userID int64, fn Subscriber, snap *model.WalletSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			metrics.NotifierPanicsTotal.Inc()
			n.logger.Error().Int64("user_id", userID).Any("panic", r).Msg("subscriber panicked during balance notification")
		}
	}()
	fn(snap)
	metrics.NotifierDeliveriesTotal.Inc()
}
