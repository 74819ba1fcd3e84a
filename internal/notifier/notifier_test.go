package notifier

import (
	"context"
	"errors"
	"testing"

	"coin-ledger/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotStub(snap *model.WalletSnapshot, err error) SnapshotFunc {
	return func(ctx context.Context, userID int64) (*model.WalletSnapshot, error) {
		return snap, err
	}
}

func TestNotify_DeliversToSubscribers(t *testing.T) {
	snap := &model.WalletSnapshot{Balance: "1000.00", Available: "800.00"}
	n := New(snapshotStub(snap, nil), zerolog.Nop())

	var first, second *model.WalletSnapshot
	n.Subscribe(1, func(s *model.WalletSnapshot) { first = s })
	n.Subscribe(1, func(s *model.WalletSnapshot) { second = s })

	n.Notify(context.Background(), 1)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "1000.00", first.Balance)
	assert.Equal(t, "800.00", second.Available)
}

func TestNotify_OnlyTargetUserReceives(t *testing.T) {
	n := New(snapshotStub(&model.WalletSnapshot{}, nil), zerolog.Nop())

	var notified bool
	n.Subscribe(2, func(*model.WalletSnapshot) { notified = true })

	n.Notify(context.Background(), 1)

	assert.False(t, notified)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	n := New(snapshotStub(&model.WalletSnapshot{}, nil), zerolog.Nop())

	var calls int
	unsubscribe := n.Subscribe(1, func(*model.WalletSnapshot) { calls++ })

	n.Notify(context.Background(), 1)
	unsubscribe()
	n.Notify(context.Background(), 1)

	assert.Equal(t, 1, calls)

	// Unsubscribing twice is a no-op.
	unsubscribe()
}

func TestNotify_NoSubscribersSkipsSnapshot(t *testing.T) {
	var computed bool
	n := New(func(ctx context.Context, userID int64) (*model.WalletSnapshot, error) {
		computed = true
		return &model.WalletSnapshot{}, nil
	}, zerolog.Nop())

	n.Notify(context.Background(), 1)

	assert.False(t, computed, "snapshot should not be computed without subscribers")
}

func TestNotify_SnapshotErrorDropsDelivery(t *testing.T) {
	n := New(snapshotStub(nil, errors.New("db down")), zerolog.Nop())

	var notified bool
	n.Subscribe(1, func(*model.WalletSnapshot) { notified = true })

	n.Notify(context.Background(), 1)

	assert.False(t, notified)
}

func TestNotify_PanickingSubscriberIsIsolated(t *testing.T) {
	n := New(snapshotStub(&model.WalletSnapshot{Balance: "500.00"}, nil), zerolog.Nop())

	var survived bool
	n.Subscribe(1, func(*model.WalletSnapshot) { panic("bad subscriber") })
	n.Subscribe(1, func(*model.WalletSnapshot) { survived = true })

	assert.NotPanics(t, func() { n.Notify(context.Background(), 1) })
	assert.True(t, survived, "healthy subscriber must still receive the snapshot")
}

func TestSubscribe_IndependentUsers(t *testing.T) {
	n := New(snapshotStub(&model.WalletSnapshot{}, nil), zerolog.Nop())

	var userOne, userTwo int
	n.Subscribe(1, func(*model.WalletSnapshot) { userOne++ })
	n.Subscribe(2, func(*model.WalletSnapshot) { userTwo++ })

	n.Notify(context.Background(), 1)
	n.Notify(context.Background(), 2)
	n.Notify(context.Background(), 2)

	assert.Equal(t, 1, userOne)
	assert.Equal(t, 2, userTwo)
}
