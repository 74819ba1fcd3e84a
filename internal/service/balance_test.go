package service

import (
	"context"
	"testing"

	"coin-ledger/internal/model"
	"coin-ledger/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckSufficiency(t *testing.T) {
	tests := []struct {
		name       string
		required   string
		available  string
		sufficient bool
		shortfall  string
	}{
		{"exact balance", "500", "500", true, "0"},
		{"surplus", "500", "1000", true, "0"},
		{"shortfall", "1500", "1000", false, "500"},
		{"zero balance", "100", "0", false, "100"},
		{"free content", "0", "0", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckSufficiency(
				decimal.RequireFromString(tt.required),
				decimal.RequireFromString(tt.available),
			)
			assert.Equal(t, tt.sufficient, result.Sufficient)
			assert.True(t, result.Shortfall.Equal(decimal.RequireFromString(tt.shortfall)),
				"shortfall = %s, want %s", result.Shortfall, tt.shortfall)
		})
	}
}

func TestBalanceCalculator_Available_SubtractsHold(t *testing.T) {
	ctx := context.Background()
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("CompletedBalance", ctx, int64(1)).Return(decimal.NewFromInt(2000), nil)
	mockLedgerRepo.On("PendingWithdrawalHold", ctx, int64(1)).Return(decimal.NewFromInt(2000), nil)

	calc := NewBalanceCalculator(mockLedgerRepo)

	available, err := calc.Available(ctx, 1)

	require.NoError(t, err)
	assert.True(t, available.IsZero(), "available = %s, want 0", available)
}

func TestWalletService_GetWalletSnapshot(t *testing.T) {
	ctx := context.Background()
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("CompletedBalance", ctx, int64(1)).Return(decimal.NewFromInt(1000), nil)
	mockLedgerRepo.On("PendingWithdrawalHold", ctx, int64(1)).Return(decimal.NewFromInt(200), nil)
	mockLedgerRepo.On("CountPending", ctx, int64(1)).Return(1, nil)

	service := NewWalletService(mockLedgerRepo, zerolog.Nop())

	snapshot, err := service.GetWalletSnapshot(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "1000.00", snapshot.Balance)
	assert.Equal(t, "800.00", snapshot.Available)
	assert.Equal(t, "200.00", snapshot.HeldCoins)
	assert.Equal(t, 1, snapshot.PendingTransactions)
	assert.False(t, snapshot.LastUpdated.IsZero())
}

func TestWalletService_GetWalletSnapshot_NegativeAvailable(t *testing.T) {
	// A fully held balance must never go below zero in the completed sum, but
	// the snapshot reports whatever the ledger says without masking.
	ctx := context.Background()
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("CompletedBalance", ctx, int64(7)).Return(decimal.Zero, nil)
	mockLedgerRepo.On("PendingWithdrawalHold", ctx, int64(7)).Return(decimal.Zero, nil)
	mockLedgerRepo.On("CountPending", ctx, int64(7)).Return(0, nil)

	service := NewWalletService(mockLedgerRepo, zerolog.Nop())

	snapshot, err := service.GetWalletSnapshot(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "0.00", snapshot.Balance)
	assert.Equal(t, "0.00", snapshot.Available)
	assert.Equal(t, 0, snapshot.PendingTransactions)
}

func TestWalletService_ListTransactions_ClampsPagination(t *testing.T) {
	ctx := context.Background()
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("List", ctx, mock.MatchedBy(func(filter *model.LedgerFilter) bool {
		return filter.Limit == 10 && filter.Offset == 0
	})).Return([]*model.Transaction{}, nil).Once()

	service := NewWalletService(mockLedgerRepo, zerolog.Nop())

	_, err := service.ListTransactions(ctx, &model.LedgerFilter{UserID: 1, Limit: 0, Offset: -5})
	require.NoError(t, err)

	mockLedgerRepo.On("List", ctx, mock.MatchedBy(func(filter *model.LedgerFilter) bool {
		return filter.Limit == 100
	})).Return([]*model.Transaction{}, nil).Once()

	_, err = service.ListTransactions(ctx, &model.LedgerFilter{UserID: 1, Limit: 500})
	require.NoError(t, err)
}

func TestWalletService_ListTransactions_PassesFilterThrough(t *testing.T) {
	ctx := context.Background()
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	contentID := int64(42)
	transactions := []*model.Transaction{
		{TransactionID: "a", Type: model.TypeVideoView, Status: model.StatusCompleted},
	}
	mockLedgerRepo.On("List", ctx, mock.MatchedBy(func(filter *model.LedgerFilter) bool {
		return filter.UserID == 1 &&
			filter.Type == model.TypeVideoView &&
			filter.ContentID != nil && *filter.ContentID == 42
	})).Return(transactions, nil)

	service := NewWalletService(mockLedgerRepo, zerolog.Nop())

	got, err := service.ListTransactions(ctx, &model.LedgerFilter{
		UserID:    1,
		Type:      model.TypeVideoView,
		ContentID: &contentID,
		Limit:     10,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].TransactionID)
}
