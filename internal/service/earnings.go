package service

import (
	"context"
	"fmt"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// EarningsDistributor credits the creator side of a purchase. It only ever
// runs inside the purchase's database transaction so the buyer debit and the
// creator credit commit or roll back together.
type EarningsDistributor struct {
	ledgerRepo repository.LedgerRepository
	userRepo   repository.UserRepository
	logger     zerolog.Logger
}

func NewEarningsDistributor(
	ledgerRepo repository.LedgerRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) *EarningsDistributor {
	return &EarningsDistributor{
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RecordCreatorEarning appends the creator_earning line linked to the buyer
// debit and refreshes the creator's aggregate caches. The total_earnings and
// total_views columns are caches, the ledger line is the authority.
func (d *EarningsDistributor) RecordCreatorEarning(ctx context.Context, tx pgx.Tx, content *model.Content, amount decimal.Decimal, relatedTransactionID string) (*model.Transaction, error) {
	contentType := content.Type
	creatorID := content.CreatorID

	earning := &model.Transaction{
		TransactionID: uuid.New().String(),
		UserID:        creatorID,
		Type:          model.TypeCreatorEarning,
		Amount:        amount,
		Status:        model.StatusCompleted,
		ContentType:   &contentType,
		ContentID:     &content.ID,
		CreatorID:     &creatorID,
		Metadata: model.Metadata{
			Earning: &model.EarningMetadata{RelatedTransactionID: relatedTransactionID},
		},
	}

	if err := d.ledgerRepo.Append(ctx, earning, tx); err != nil {
		return nil, fmt.Errorf("append creator earning: %w", err)
	}

	if err := d.userRepo.AddCreatorAggregates(ctx, creatorID, amount, 1, tx); err != nil {
		return nil, fmt.Errorf("add creator aggregates: %w", err)
	}

	// Rebuild the creator's balance cache from the ledger in the same unit.
	creatorBalance, err := d.ledgerRepo.CompletedBalance(ctx, creatorID, tx)
	if err != nil {
		return nil, fmt.Errorf("creator completed balance: %w", err)
	}
	if err := d.userRepo.SyncCoinBalance(ctx, creatorID, creatorBalance, tx); err != nil {
		return nil, fmt.Errorf("sync creator balance: %w", err)
	}

	d.logger.Debug().
		Str("transaction_id", earning.TransactionID).
		Int64("creator_id", creatorID).
		Int64("content_id", content.ID).
		Str("amount", amount.StringFixed(2)).
		Msg("creator earning recorded")

	return earning, nil
}
