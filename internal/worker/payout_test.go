package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingDispatcher struct {
	calls atomic.Int64
}

func (d *countingDispatcher) DispatchPending(ctx context.Context) error {
	d.calls.Add(1)
	return nil
}

func TestPayoutWorker_DispatchesOnTick(t *testing.T) {
	dispatcher := &countingDispatcher{}
	w := NewPayoutWorker(dispatcher, 10*time.Millisecond, zerolog.Nop())

	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	calls := dispatcher.calls.Load()
	assert.GreaterOrEqual(t, calls, int64(2), "worker should dispatch repeatedly, got %d calls", calls)
}

func TestPayoutWorker_StopsOnContextCancel(t *testing.T) {
	dispatcher := &countingDispatcher{}
	w := NewPayoutWorker(dispatcher, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	before := dispatcher.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, dispatcher.calls.Load(), "no dispatches after context cancel")
}
