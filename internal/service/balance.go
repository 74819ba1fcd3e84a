package service

import (
	"context"
	"fmt"
	"time"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BalanceCalculator derives balances from the ledger. The denormalized
// coin_balance column on the user row is never read here: the completed-line
// sum is the only authority (Balance), and in-flight withdrawals reduce what
// is spendable (Available).
type BalanceCalculator struct {
	ledgerRepo repository.LedgerRepository
}

func NewBalanceCalculator(ledgerRepo repository.LedgerRepository) *BalanceCalculator {
	return &BalanceCalculator{ledgerRepo: ledgerRepo}
}

// Balance is the signed sum of the user's completed ledger lines.
func (c *BalanceCalculator) Balance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	balance, err := c.ledgerRepo.CompletedBalance(ctx, userID, tx...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("completed balance: %w", err)
	}
	return balance, nil
}

// Available is the spendable balance: completed sum minus the coins held by
// pending/processing withdrawals.
func (c *BalanceCalculator) Available(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	balance, err := c.ledgerRepo.CompletedBalance(ctx, userID, tx...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("completed balance: %w", err)
	}
	hold, err := c.ledgerRepo.PendingWithdrawalHold(ctx, userID, tx...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("withdrawal hold: %w", err)
	}
	return balance.Sub(hold), nil
}

// CheckSufficiency is a pure balance-vs-cost decision over a snapshot.
func CheckSufficiency(required, available decimal.Decimal) *model.SufficiencyResult {
	shortfall := required.Sub(available)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}
	return &model.SufficiencyResult{
		Sufficient: !available.LessThan(required),
		Required:   required,
		Available:  available,
		Shortfall:  shortfall,
	}
}

type WalletServiceImpl struct {
	ledgerRepo repository.LedgerRepository
	calc       *BalanceCalculator
	logger     zerolog.Logger
}

func NewWalletService(ledgerRepo repository.LedgerRepository, logger zerolog.Logger) WalletService {
	return &WalletServiceImpl{
		ledgerRepo: ledgerRepo,
		calc:       NewBalanceCalculator(ledgerRepo),
		logger:     logger,
	}
}

// GetWalletSnapshot derives the wallet view straight from the ledger
func (s *WalletServiceImpl) GetWalletSnapshot(ctx context.Context, userID int64) (*model.WalletSnapshot, error) {
	balance, err := s.calc.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	hold, err := s.ledgerRepo.PendingWithdrawalHold(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("withdrawal hold: %w", err)
	}
	pending, err := s.ledgerRepo.CountPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}

	return &model.WalletSnapshot{
		Balance:             balance.StringFixed(2),
		Available:           balance.Sub(hold).StringFixed(2),
		HeldCoins:           hold.StringFixed(2),
		PendingTransactions: pending,
		LastUpdated:         time.Now().UTC(),
	}, nil
}

// ListTransactions returns filtered ledger history for a user
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, filter *model.LedgerFilter) ([]*model.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	transactions, err := s.ledgerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
