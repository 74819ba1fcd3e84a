package service

import (
	"context"
	"testing"

	"coin-ledger/internal/model"
	"coin-ledger/mocks/repository"
	servicemocks "coin-ledger/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseMocks struct {
	catalog      *mocks.ContentCatalog
	ledgerRepo   *mocks.LedgerRepository
	purchaseRepo *mocks.PurchaseRepository
	userRepo     *mocks.UserRepository
	dbManager    *mocks.DBManager
	notifier     *servicemocks.BalanceNotifier
}

func newPurchaseMocks(t *testing.T) *purchaseMocks {
	return &purchaseMocks{
		catalog:      mocks.NewContentCatalog(t),
		ledgerRepo:   mocks.NewLedgerRepository(t),
		purchaseRepo: mocks.NewPurchaseRepository(t),
		userRepo:     mocks.NewUserRepository(t),
		dbManager:    mocks.NewDBManager(t),
		notifier:     servicemocks.NewBalanceNotifier(t),
	}
}

func (m *purchaseMocks) service() PurchaseService {
	return NewPurchaseService(m.catalog, m.ledgerRepo, m.purchaseRepo, m.userRepo, m.dbManager, m.notifier, zerolog.Nop())
}

func passthroughTx(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) }

func TestPurchaseContent_HappyPath(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	price := decimal.NewFromInt(500)
	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: price, IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.userRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(1000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	m.ledgerRepo.On("Append", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 1 &&
			trans.Type == model.TypeVideoView &&
			trans.Amount.Equal(price) &&
			trans.Status == model.StatusCompleted
	}), mock.Anything).Return(nil)
	m.ledgerRepo.On("Append", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 2 &&
			trans.Type == model.TypeCreatorEarning &&
			trans.Amount.Equal(price) &&
			trans.Status == model.StatusCompleted &&
			trans.Metadata.Earning != nil &&
			trans.Metadata.Earning.RelatedTransactionID != ""
	}), mock.Anything).Return(nil)

	m.userRepo.On("AddCreatorAggregates", ctx, int64(2), price, int64(1), mock.Anything).Return(nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(2), mock.Anything).Return(decimal.NewFromInt(500), nil)
	m.userRepo.On("SyncCoinBalance", ctx, int64(2), decimal.NewFromInt(500), mock.Anything).Return(nil)

	m.purchaseRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.UserID == 1 && p.ContentID == 10 && p.PurchasePrice.Equal(price)
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Purchase).ID = 77
	}).Return(nil)
	m.catalog.On("IncrementViewCount", ctx, int64(10), mock.Anything).Return(nil)
	m.userRepo.On("SyncCoinBalance", ctx, int64(1), decimal.NewFromInt(1000), mock.Anything).Return(nil)

	m.notifier.On("Notify", ctx, int64(1)).Return()
	m.notifier.On("Notify", ctx, int64(2)).Return()

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "500.00", result.CoinsSpent)
	assert.Equal(t, "500.00", result.RemainingBalance)
	assert.True(t, result.HasAccess)
	assert.Equal(t, model.AccessPurchased, result.AccessType)
	require.NotNil(t, result.PurchaseID)
	assert.Equal(t, int64(77), *result.PurchaseID)
}

func TestPurchaseContent_SeriesUsesSeriesPurchaseType(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	price := decimal.NewFromInt(1200)
	content := &model.Content{ID: 20, Type: model.ContentSeries, CreatorID: 3, PriceCoins: price, IsActive: true}

	m.catalog.On("GetContent", ctx, int64(20)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(20), mock.Anything).Return(nil, nil)
	m.userRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(2000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	m.ledgerRepo.On("Append", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 1 && trans.Type == model.TypeSeriesPurchase
	}), mock.Anything).Return(nil)
	m.ledgerRepo.On("Append", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == 3 && trans.Type == model.TypeCreatorEarning
	}), mock.Anything).Return(nil)

	m.userRepo.On("AddCreatorAggregates", ctx, int64(3), price, int64(1), mock.Anything).Return(nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(3), mock.Anything).Return(price, nil)
	m.userRepo.On("SyncCoinBalance", ctx, int64(3), price, mock.Anything).Return(nil)

	m.purchaseRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)
	m.catalog.On("IncrementViewCount", ctx, int64(20), mock.Anything).Return(nil)
	m.userRepo.On("SyncCoinBalance", ctx, int64(1), decimal.NewFromInt(2000), mock.Anything).Return(nil)

	m.notifier.On("Notify", ctx, int64(1)).Return()
	m.notifier.On("Notify", ctx, int64(3)).Return()

	result, err := m.service().PurchaseContent(ctx, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, "1200.00", result.CoinsSpent)
	assert.Equal(t, "800.00", result.RemainingBalance)
	assert.Equal(t, model.AccessPurchased, result.AccessType)
}

func TestPurchaseContent_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: decimal.NewFromInt(1500), IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.userRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(1000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	var insufficient *model.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(1500)))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(1000)))
	assert.True(t, insufficient.Shortfall().Equal(decimal.NewFromInt(500)))
}

func TestPurchaseContent_WithdrawalHoldReducesSpendable(t *testing.T) {
	// The completed sum covers the price but an in-flight withdrawal holds
	// most of it, so the purchase must be refused.
	ctx := context.Background()
	m := newPurchaseMocks(t)

	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: decimal.NewFromInt(500), IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.userRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(2200), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(2000), nil)

	_, err := m.service().PurchaseContent(ctx, 1, 10)

	var insufficient *model.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(200)))
}

func TestPurchaseContent_AlreadyOwned(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: decimal.NewFromInt(500), IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(&model.Purchase{ID: 5, UserID: 1, ContentID: 10}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(1000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "0", result.CoinsSpent)
	assert.Equal(t, "1000.00", result.RemainingBalance)
	assert.Equal(t, model.AccessAlreadyOwned, result.AccessType)
	m.ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseContent_CreatorOwnContent(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 1, PriceCoins: decimal.NewFromInt(500), IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(300), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "0", result.CoinsSpent)
	assert.Equal(t, model.AccessCreator, result.AccessType)
}

func TestPurchaseContent_SeriesAccessCoversEpisode(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	seriesID := int64(99)
	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: decimal.NewFromInt(500), IsActive: true, SeriesID: &seriesID}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(99), mock.Anything).Return(&model.Purchase{ID: 8, UserID: 1, ContentID: 99}, nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(1000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "0", result.CoinsSpent)
	assert.Equal(t, model.AccessSeries, result.AccessType)
}

func TestPurchaseContent_RaceLoserGetsExistingAccess(t *testing.T) {
	// Two concurrent purchases of the same content by the same user: the
	// loser's insert hits the unique constraint, the transaction rolls back
	// and the caller still gets a success response with no second charge.
	ctx := context.Background()
	m := newPurchaseMocks(t)

	price := decimal.NewFromInt(500)
	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: price, IsActive: true}

	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	m.purchaseRepo.On("GetByUserAndContent", ctx, int64(1), int64(10), mock.Anything).Return(nil, nil)
	m.userRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.User{ID: 1}, nil)

	// Post-rollback re-read runs outside the transaction. Registered before
	// the in-tx setups: mock.Anything also matches a call with no tx, and
	// testify returns the first registered match.
	m.ledgerRepo.On("CompletedBalance", ctx, int64(1)).Return(decimal.NewFromInt(500), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1)).Return(decimal.Zero, nil)

	m.ledgerRepo.On("CompletedBalance", ctx, int64(1), mock.Anything).Return(decimal.NewFromInt(1000), nil)
	m.ledgerRepo.On("PendingWithdrawalHold", ctx, int64(1), mock.Anything).Return(decimal.Zero, nil)
	m.ledgerRepo.On("Append", ctx, mock.Anything, mock.Anything).Return(nil)
	m.userRepo.On("AddCreatorAggregates", ctx, int64(2), price, int64(1), mock.Anything).Return(nil)
	m.ledgerRepo.On("CompletedBalance", ctx, int64(2), mock.Anything).Return(price, nil)
	m.userRepo.On("SyncCoinBalance", ctx, int64(2), price, mock.Anything).Return(nil)
	m.purchaseRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(model.ErrDuplicatePurchase)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "0", result.CoinsSpent)
	assert.Equal(t, "500.00", result.RemainingBalance)
	assert.Equal(t, model.AccessAlreadyOwned, result.AccessType)
}

func TestPurchaseContent_ContentNotFound(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	m.catalog.On("GetContent", ctx, int64(404)).Return(nil, model.ErrContentNotFound)

	result, err := m.service().PurchaseContent(ctx, 1, 404)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrContentNotFound)
}

func TestPurchaseContent_InactiveContent(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	content := &model.Content{ID: 10, Type: model.ContentVideo, CreatorID: 2, PriceCoins: decimal.NewFromInt(500), IsActive: false}
	m.catalog.On("GetContent", ctx, int64(10)).Return(content, nil)

	result, err := m.service().PurchaseContent(ctx, 1, 10)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrContentNotAvailable)
}
