package model

// TransactionType is the business reason for a ledger line. The sign of a
// line is implied by its type, amounts are stored as magnitudes.
type TransactionType string

const (
	TypeCreditPurchase TransactionType = "credit_purchase"
	TypeVideoView      TransactionType = "video_view"
	TypeSeriesPurchase TransactionType = "series_purchase"
	TypeCreatorEarning TransactionType = "creator_earning"
	TypeWithdrawal     TransactionType = "withdrawal"
	TypeRefund         TransactionType = "refund"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeCreditPurchase, TypeVideoView, TypeSeriesPurchase, TypeCreatorEarning, TypeWithdrawal, TypeRefund:
		return TransactionType(s), nil
	default:
		return "", ErrInvalidType
	}
}

// IsDebit reports whether lines of this type reduce the owner's balance.
func (t TransactionType) IsDebit() bool {
	switch t {
	case TypeVideoView, TypeSeriesPurchase, TypeWithdrawal:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus is the lifecycle state of a ledger line. Only completed
// lines count toward the balance sum. Processing and cancelled are legal only
// for withdrawal lines.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return TransactionStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo is the status state machine: transitions are one-shot,
// pending may move to any other state, processing only to a terminal outcome.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusFailed || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

func (s TransactionStatus) String() string {
	return string(s)
}

// ContentType distinguishes the two purchasable catalog entities.
type ContentType string

const (
	ContentVideo  ContentType = "video"
	ContentSeries ContentType = "series"
)

func (c ContentType) String() string {
	return string(c)
}

// AccessType explains why a purchase response grants access.
type AccessType string

const (
	AccessPurchased    AccessType = "purchased"
	AccessAlreadyOwned AccessType = "already_owned"
	AccessCreator      AccessType = "creator_access"
	AccessSeries       AccessType = "series_purchase"
)

// PayoutMethod is the channel a withdrawal is settled through.
type PayoutMethod string

const (
	PayoutUPI          PayoutMethod = "upi"
	PayoutBankTransfer PayoutMethod = "bank_transfer"
)

func ParsePayoutMethod(s string) (PayoutMethod, error) {
	switch PayoutMethod(s) {
	case PayoutUPI, PayoutBankTransfer:
		return PayoutMethod(s), nil
	default:
		return "", ErrInvalidPayoutMethod
	}
}

func (m PayoutMethod) String() string {
	return string(m)
}
