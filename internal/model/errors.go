package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrBelowMinimum        = errors.New("withdrawal below minimum")
	ErrContentNotFound     = errors.New("content not found")
	ErrContentNotAvailable = errors.New("content not available")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicatePurchase   = errors.New("duplicate purchase")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidStatus       = errors.New("invalid transaction status")
	ErrInvalidPayoutMethod = errors.New("invalid payout method")
	ErrInvalidFilter       = errors.New("invalid filter")
)

// InsufficientFundsError carries the exact shortfall so callers can prompt a
// top-up for the missing amount.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, available %s, shortfall %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2), e.Shortfall().StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// Shortfall is max(0, required - available).
func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	s := e.Required.Sub(e.Available)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

// BelowMinimumError rejects withdrawal requests under the payout floor.
type BelowMinimumError struct {
	Requested decimal.Decimal
	Minimum   decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("withdrawal below minimum: requested %s coins, minimum is %s",
		e.Requested.StringFixed(0), e.Minimum.StringFixed(0))
}

func (e *BelowMinimumError) Unwrap() error {
	return ErrBelowMinimum
}
