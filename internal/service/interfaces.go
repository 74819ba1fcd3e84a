package service

import (
	"context"

	"coin-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// WalletService exposes ledger-derived balance views and history
type WalletService interface {
	// GetWalletSnapshot derives balance, hold and pending count from the ledger
	GetWalletSnapshot(ctx context.Context, userID int64) (*model.WalletSnapshot, error)

	// ListTransactions returns filtered ledger history for a user
	ListTransactions(ctx context.Context, filter *model.LedgerFilter) ([]*model.Transaction, error)
}

// PurchaseService is the composite flow for buying a video or series
type PurchaseService interface {
	// PurchaseContent runs access checks, the sufficiency check and the
	// atomic debit+credit+record unit; idempotent per (user, content)
	PurchaseContent(ctx context.Context, userID, contentID int64) (*model.PurchaseResult, error)
}

// WithdrawalService converts available coin balance into payout requests
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, userID int64, coins decimal.Decimal, method model.PayoutMethod) (*model.WithdrawalReceipt, error)
	CancelWithdrawal(ctx context.Context, userID int64, withdrawalID string) error

	// SettleWithdrawal is the payout-processor callback: processing -> completed|failed
	SettleWithdrawal(ctx context.Context, withdrawalID string, success bool) error

	// DispatchPending claims aged pending withdrawals for payout (worker entry)
	DispatchPending(ctx context.Context) error
}

// BalanceNotifier fans balance-change events out to in-process subscribers
type BalanceNotifier interface {
	Notify(ctx context.Context, userID int64)
}
