package repository

import (
	"context"
	"time"

	"coin-ledger/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// LedgerRepository is the append-only transaction ledger, the single source
// of balance truth. Lines are never deleted, only their status moves.
type LedgerRepository interface {
	// Append creates a new ledger line with the status set by the caller
	Append(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetByTransactionID retrieves a line by its external uuid
	GetByTransactionID(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error)

	// UpdateStatus transitions status from -> to as a compare-and-set;
	// returns false when the line was not in the expected status
	UpdateStatus(ctx context.Context, id int64, from, to model.TransactionStatus, tx pgx.Tx) (bool, error)

	// List retrieves ledger lines matching the filter, newest first
	List(ctx context.Context, filter *model.LedgerFilter) ([]*model.Transaction, error)

	// CompletedBalance is the signed sum of completed lines for a user
	CompletedBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// PendingWithdrawalHold sums withdrawal lines in pending/processing,
	// the coins reserved against the spendable balance
	PendingWithdrawalHold(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// CountPending counts non-terminal lines for a user
	CountPending(ctx context.Context, userID int64) (int, error)

	// GetPendingWithdrawals retrieves pending withdrawal lines at least
	// minAge old, oldest first, for payout dispatch
	GetPendingWithdrawals(ctx context.Context, minAge time.Duration, limit int) ([]*model.Transaction, error)
}

// PurchaseRepository manages ownership records. The (user_id, content_id)
// uniqueness backing idempotent purchases lives here.
type PurchaseRepository interface {
	// Insert creates a purchase record; returns model.ErrDuplicatePurchase
	// when the (user, content) pair already owns one
	Insert(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error

	// GetByUserAndContent retrieves the completed purchase for a pair, if any
	GetByUserAndContent(ctx context.Context, userID, contentID int64, tx ...pgx.Tx) (*model.Purchase, error)

	// ListByUser retrieves paginated purchases for a user
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error)
}

// UserRepository manages the user row: the reconciled coin_balance cache and
// creator aggregate counters. Never the write-authority for balances.
type UserRepository interface {
	// GetForUpdate retrieves a user with a row-level lock (must be in transaction)
	GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error)

	// SyncCoinBalance rewrites the denormalized balance cache from the ledger sum
	SyncCoinBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error

	// AddCreatorAggregates bumps total_earnings and total_views caches
	AddCreatorAggregates(ctx context.Context, creatorID int64, earnings decimal.Decimal, views int64, tx pgx.Tx) error
}

// ContentCatalog supplies price, availability and creator of purchasable
// content. External boundary of the wallet core.
type ContentCatalog interface {
	// GetContent retrieves a catalog entry by id
	GetContent(ctx context.Context, contentID int64) (*model.Content, error)

	// IncrementViewCount bumps the denormalized view counter
	IncrementViewCount(ctx context.Context, contentID int64, tx pgx.Tx) error
}
