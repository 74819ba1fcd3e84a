package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInsufficientFundsError(t *testing.T) {
	err := &InsufficientFundsError{
		Required:  decimal.NewFromInt(1500),
		Available: decimal.NewFromInt(1000),
	}

	assert.True(t, err.Shortfall().Equal(decimal.NewFromInt(500)))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "required 1500.00")
	assert.Contains(t, err.Error(), "available 1000.00")
	assert.Contains(t, err.Error(), "shortfall 500.00")
}

func TestInsufficientFundsError_ShortfallNeverNegative(t *testing.T) {
	err := &InsufficientFundsError{
		Required:  decimal.NewFromInt(100),
		Available: decimal.NewFromInt(200),
	}
	assert.True(t, err.Shortfall().IsZero())
}

func TestBelowMinimumError(t *testing.T) {
	err := &BelowMinimumError{
		Requested: decimal.NewFromInt(1500),
		Minimum:   decimal.NewFromInt(2000),
	}

	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Contains(t, err.Error(), "requested 1500")
	assert.Contains(t, err.Error(), "minimum is 2000")

	wrapped := fmt.Errorf("request withdrawal: %w", err)
	var target *BelowMinimumError
	assert.True(t, errors.As(wrapped, &target))
}
