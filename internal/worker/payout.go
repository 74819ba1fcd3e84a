package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// PayoutDispatcher claims pending withdrawals for the payout processor.
type PayoutDispatcher interface {
	DispatchPending(ctx context.Context) error
}

type PayoutWorker struct {
	dispatcher PayoutDispatcher
	interval   time.Duration
	logger     zerolog.Logger
	stopChan   chan struct{}
	wg         *sync.WaitGroup
}

func NewPayoutWorker(dispatcher PayoutDispatcher, interval time.Duration, logger zerolog.Logger) *PayoutWorker {
	return &PayoutWorker{
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
		stopChan:   make(chan struct{}),
		wg:         &sync.WaitGroup{},
	}
}

func (w *PayoutWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Payout worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running payout dispatch")
				if err := w.dispatcher.DispatchPending(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run payout dispatch")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Payout worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Payout worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *PayoutWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
