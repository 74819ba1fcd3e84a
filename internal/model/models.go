package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User carries the denormalized wallet cache and creator aggregates. The
// coin_balance column is a read optimization rebuilt from the ledger inside
// every mutating transaction, the ledger sum stays authoritative.
type User struct {
	ID            int64           `json:"id"`
	CoinBalance   decimal.Decimal `json:"coin_balance"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalViews    int64           `json:"total_views"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Transaction is a single signed line of the append-only ledger. Amount is a
// magnitude, Type implies the sign. Immutable after creation except for
// one-shot status transitions.
type Transaction struct {
	ID            int64             `json:"-"`
	TransactionID string            `json:"transaction_id"`
	UserID        int64             `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	ContentType   *ContentType      `json:"content_type,omitempty"`
	ContentID     *int64            `json:"content_id,omitempty"`
	CreatorID     *int64            `json:"creator_id,omitempty"`
	Metadata      Metadata          `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Metadata is the typed annotation attached to a ledger line. Exactly one
// variant is set, matching the line's type.
type Metadata struct {
	TopUp      *TopUpMetadata      `json:"top_up,omitempty"`
	Earning    *EarningMetadata    `json:"earning,omitempty"`
	Withdrawal *WithdrawalMetadata `json:"withdrawal,omitempty"`
}

// IsZero reports whether no variant is set, so empty metadata can be stored
// as SQL NULL instead of an empty JSON object.
func (m Metadata) IsZero() bool {
	return m.TopUp == nil && m.Earning == nil && m.Withdrawal == nil
}

type TopUpMetadata struct {
	Source    string `json:"source"`
	Reference string `json:"reference,omitempty"`
}

type EarningMetadata struct {
	// RelatedTransactionID links the earning credit to the buyer debit it
	// was paired with, for traceability.
	RelatedTransactionID string `json:"related_transaction_id"`
}

type WithdrawalMetadata struct {
	Rupees        decimal.Decimal `json:"rupees"`
	Method        PayoutMethod    `json:"method"`
	CoinsPerRupee int64           `json:"coins_per_rupee"`
}

// Purchase records ownership of a video or series, distinct from the ledger
// lines that funded it. Created once, never mutated.
type Purchase struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	ContentID     int64           `json:"content_id"`
	ContentType   ContentType     `json:"content_type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Status        string          `json:"status"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

// Content is the catalog view the orchestrator needs: price, availability,
// creator and, for videos, the parent series.
type Content struct {
	ID         int64           `json:"id"`
	Type       ContentType     `json:"type"`
	CreatorID  int64           `json:"creator_id"`
	PriceCoins decimal.Decimal `json:"price_coins"`
	IsActive   bool            `json:"is_active"`
	SeriesID   *int64          `json:"series_id,omitempty"`
	ViewCount  int64           `json:"view_count"`
}

// LedgerFilter narrows transaction history queries. Zero values mean "any".
type LedgerFilter struct {
	UserID    int64
	Type      TransactionType
	Status    TransactionStatus
	ContentID *int64
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// SufficiencyResult is the outcome of a balance-vs-cost check. Pure decision,
// never mutates state.
type SufficiencyResult struct {
	Sufficient bool
	Required   decimal.Decimal
	Available  decimal.Decimal
	Shortfall  decimal.Decimal
}

// WalletSnapshot is what balance readers and notifier subscribers see.
// Balance sums completed lines only, HeldCoins is the pending/processing
// withdrawal hold, Available = Balance - HeldCoins.
type WalletSnapshot struct {
	Balance             string    `json:"balance"`
	Available           string    `json:"available"`
	HeldCoins           string    `json:"held_coins"`
	PendingTransactions int       `json:"pending_transactions"`
	LastUpdated         time.Time `json:"last_updated"`
}

// PurchaseResult is the purchase endpoint response. CoinsSpent is "0" for
// idempotent re-entries (already owned, creator access, owned parent series).
type PurchaseResult struct {
	Success          bool       `json:"success"`
	CoinsSpent       string     `json:"coins_spent"`
	RemainingBalance string     `json:"remaining_balance"`
	HasAccess        bool       `json:"has_access"`
	AccessType       AccessType `json:"access_type"`
	PurchaseID       *int64     `json:"purchase_id,omitempty"`
}

// WithdrawalRequest is the payload for creating a payout request.
type WithdrawalRequest struct {
	Coins  string `json:"coins" binding:"required" example:"2000"`
	Method string `json:"method" binding:"required,oneof=upi bank_transfer" example:"upi" enums:"upi,bank_transfer"`
}

// WithdrawalReceipt is returned when a withdrawal request is accepted.
type WithdrawalReceipt struct {
	WithdrawalID            string            `json:"withdrawal_id"`
	Coins                   string            `json:"coins"`
	Rupees                  string            `json:"rupees"`
	Status                  TransactionStatus `json:"status"`
	EstimatedProcessingTime string            `json:"estimated_processing_time"`
}

// SettleRequest is the payout-processor callback payload.
type SettleRequest struct {
	Success bool `json:"success"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type ErrorResponse struct {
	Error          string `json:"error" example:"insufficient funds"`
	Code           string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details        string `json:"details,omitempty"`
	CoinsRequired  string `json:"coins_required,omitempty" example:"1500"`
	CoinsAvailable string `json:"coins_available,omitempty" example:"1000"`
	CoinsShortfall string `json:"coins_shortfall,omitempty" example:"500"`
}
