package service

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/config"
	"coin-ledger/internal/conversion"
	"coin-ledger/internal/metrics"
	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WithdrawalServiceImpl struct {
	ledgerRepo repository.LedgerRepository
	userRepo   repository.UserRepository
	dbManager  repository.DBManager
	calc       *BalanceCalculator
	notifier   BalanceNotifier
	logger     zerolog.Logger

	minCoins       decimal.Decimal
	processingTime string
	payoutCfg      config.WorkerConfig
}

func NewWithdrawalService(
	ledgerRepo repository.LedgerRepository,
	userRepo repository.UserRepository,
	dbManager repository.DBManager,
	notifier BalanceNotifier,
	walletCfg config.WalletConfig,
	workerCfg config.WorkerConfig,
	logger zerolog.Logger,
) WithdrawalService {
	return &WithdrawalServiceImpl{
		ledgerRepo:     ledgerRepo,
		userRepo:       userRepo,
		dbManager:      dbManager,
		calc:           NewBalanceCalculator(ledgerRepo),
		notifier:       notifier,
		logger:         logger,
		minCoins:       decimal.NewFromInt(walletCfg.MinWithdrawalCoins),
		processingTime: walletCfg.EstimatedProcessingTime,
		payoutCfg:      workerCfg,
	}
}

// RequestWithdrawal creates a pending withdrawal debit. The pending line
// holds the coins: they stay out of the available balance until the payout
// settles or the request is cancelled.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, userID int64, coins decimal.Decimal, method model.PayoutMethod) (*model.WithdrawalReceipt, error) {
	if coins.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", model.ErrInvalidAmount)
	}
	if coins.LessThan(s.minCoins) {
		return nil, &model.BelowMinimumError{Requested: coins, Minimum: s.minCoins}
	}

	rupees := conversion.CoinsToRupees(coins)
	trans := &model.Transaction{
		TransactionID: uuid.New().String(),
		UserID:        userID,
		Type:          model.TypeWithdrawal,
		Amount:        coins,
		Status:        model.StatusPending,
		Metadata: model.Metadata{
			Withdrawal: &model.WithdrawalMetadata{
				Rupees:        rupees,
				Method:        method,
				CoinsPerRupee: conversion.CoinsPerRupee,
			},
		},
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Lock the user row so concurrent withdrawal requests by the same
		// user see each other's holds.
		if _, err := s.userRepo.GetForUpdate(ctx, userID, tx); err != nil {
			return fmt.Errorf("get user for update: %w", err)
		}

		available, err := s.calc.Available(ctx, userID, tx)
		if err != nil {
			return err
		}
		if available.LessThan(coins) {
			return &model.InsufficientFundsError{Required: coins, Available: available}
		}

		if err := s.ledgerRepo.Append(ctx, trans, tx); err != nil {
			return fmt.Errorf("append withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.WithdrawalTransitionsTotal.WithLabelValues(string(model.StatusPending)).Inc()
	s.notifier.Notify(ctx, userID)

	s.logger.Info().
		Str("withdrawal_id", trans.TransactionID).
		Int64("user_id", userID).
		Str("coins", coins.StringFixed(2)).
		Str("rupees", rupees.StringFixed(2)).
		Str("method", method.String()).
		Msg("withdrawal requested")

	return &model.WithdrawalReceipt{
		WithdrawalID:            trans.TransactionID,
		Coins:                   coins.StringFixed(2),
		Rupees:                  rupees.StringFixed(2),
		Status:                  model.StatusPending,
		EstimatedProcessingTime: s.processingTime,
	}, nil
}

// CancelWithdrawal releases a pending hold. Only the owner may cancel, and
// only while the request has not been dispatched for payout.
func (s *WithdrawalServiceImpl) CancelWithdrawal(ctx context.Context, userID int64, withdrawalID string) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.ledgerRepo.GetByTransactionID(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal: %w", err)
		}
		// Do not leak other users' ledger lines
		if trans.UserID != userID || trans.Type != model.TypeWithdrawal {
			return model.ErrTransactionNotFound
		}
		if trans.Status != model.StatusPending {
			return fmt.Errorf("%w: withdrawal is %s", model.ErrInvalidTransition, trans.Status)
		}

		updated, err := s.ledgerRepo.UpdateStatus(ctx, trans.ID, model.StatusPending, model.StatusCancelled, tx)
		if err != nil {
			return fmt.Errorf("cancel withdrawal: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: withdrawal no longer pending", model.ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.WithdrawalTransitionsTotal.WithLabelValues(string(model.StatusCancelled)).Inc()
	s.notifier.Notify(ctx, userID)

	s.logger.Info().Str("withdrawal_id", withdrawalID).Int64("user_id", userID).Msg("withdrawal cancelled")
	return nil
}

// SettleWithdrawal is the payout-processor callback. On success the debit
// becomes completed and finally leaves the balance sum; on failure the hold
// is released and the coins are spendable again.
func (s *WithdrawalServiceImpl) SettleWithdrawal(ctx context.Context, withdrawalID string, success bool) error {
	target := model.StatusCompleted
	if !success {
		target = model.StatusFailed
	}

	var userID int64
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.ledgerRepo.GetByTransactionID(ctx, withdrawalID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal: %w", err)
		}
		if trans.Type != model.TypeWithdrawal {
			return model.ErrTransactionNotFound
		}
		if !trans.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: withdrawal is %s", model.ErrInvalidTransition, trans.Status)
		}
		userID = trans.UserID

		updated, err := s.ledgerRepo.UpdateStatus(ctx, trans.ID, trans.Status, target, tx)
		if err != nil {
			return fmt.Errorf("settle withdrawal: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: withdrawal already settled", model.ErrInvalidTransition)
		}

		if target == model.StatusCompleted {
			// The completed debit changed the ledger sum, refresh the cache.
			if _, err := s.userRepo.GetForUpdate(ctx, userID, tx); err != nil {
				return fmt.Errorf("get user for update: %w", err)
			}
			balance, err := s.ledgerRepo.CompletedBalance(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("completed balance: %w", err)
			}
			if err := s.userRepo.SyncCoinBalance(ctx, userID, balance, tx); err != nil {
				return fmt.Errorf("sync balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.WithdrawalTransitionsTotal.WithLabelValues(string(target)).Inc()
	s.notifier.Notify(ctx, userID)

	s.logger.Info().
		Str("withdrawal_id", withdrawalID).
		Int64("user_id", userID).
		Str("status", target.String()).
		Msg("withdrawal settled")
	return nil
}

// DispatchPending claims aged pending withdrawals for the payout processor,
// one database transaction per line so a single failure never blocks the
// batch. The compare-and-set guard keeps concurrent workers from dispatching
// the same line twice.
func (s *WithdrawalServiceImpl) DispatchPending(ctx context.Context) error {
	transactions, err := s.ledgerRepo.GetPendingWithdrawals(ctx, s.payoutCfg.PayoutMinAge, s.payoutCfg.PayoutBatchSize)
	if err != nil {
		return fmt.Errorf("get pending withdrawals: %w", err)
	}
	if len(transactions) == 0 {
		s.logger.Debug().Msg("no pending withdrawals to dispatch")
		return nil
	}

	var dispatched int
	for _, trans := range transactions {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var claimed bool
		err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			updated, err := s.ledgerRepo.UpdateStatus(ctx, trans.ID, model.StatusPending, model.StatusProcessing, tx)
			if err != nil {
				return fmt.Errorf("mark processing: %w", err)
			}
			if !updated {
				s.logger.Debug().Str("withdrawal_id", trans.TransactionID).Msg("withdrawal already claimed or cancelled")
				return nil
			}
			claimed = true
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.logger.Error().Err(err).Str("withdrawal_id", trans.TransactionID).Msg("failed to dispatch withdrawal")
			continue
		}
		if claimed {
			dispatched++
			metrics.WithdrawalTransitionsTotal.WithLabelValues(string(model.StatusProcessing)).Inc()
			s.logger.Info().
				Str("withdrawal_id", trans.TransactionID).
				Int64("user_id", trans.UserID).
				Str("coins", trans.Amount.StringFixed(2)).
				Msg("withdrawal dispatched for payout")
		}
	}

	s.logger.Info().Int("eligible", len(transactions)).Int("dispatched", dispatched).Msg("payout dispatch completed")
	return nil
}
