package service

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/metrics"
	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// rollback and resolve as already-owned outside the tx
var errPurchaseRace = errors.New("concurrent purchase race")

type PurchaseServiceImpl struct {
	catalog      repository.ContentCatalog
	ledgerRepo   repository.LedgerRepository
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	dbManager    repository.DBManager
	distributor  *EarningsDistributor
	calc         *BalanceCalculator
	notifier     BalanceNotifier
	logger       zerolog.Logger
}

func NewPurchaseService(
	catalog repository.ContentCatalog,
	ledgerRepo repository.LedgerRepository,
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	dbManager repository.DBManager,
	notifier BalanceNotifier,
	logger zerolog.Logger,
) PurchaseService {
	return &PurchaseServiceImpl{
		catalog:      catalog,
		ledgerRepo:   ledgerRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		dbManager:    dbManager,
		distributor:  NewEarningsDistributor(ledgerRepo, userRepo, logger),
		calc:         NewBalanceCalculator(ledgerRepo),
		notifier:     notifier,
		logger:       logger,
	}
}

// PurchaseContent buys a video or series for userID. Re-entry for content the
// user already has access to succeeds with zero coins spent, so retries and
// double-clicks are absorbed silently.
func (s *PurchaseServiceImpl) PurchaseContent(ctx context.Context, userID, contentID int64) (*model.PurchaseResult, error) {
	content, err := s.catalog.GetContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if !content.IsActive {
		metrics.PurchaseFailuresTotal.WithLabelValues("not_available").Inc()
		return nil, fmt.Errorf("%w: content %d is inactive", model.ErrContentNotAvailable, contentID)
	}

	var (
		result   *model.PurchaseResult
		notified bool
	)

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		access, err := s.existingAccess(ctx, tx, userID, content)
		if err != nil {
			return err
		}
		if access != "" {
			result, err = s.zeroSpendResult(ctx, tx, userID, access)
			return err
		}

		// Lock the buyer row so concurrent spends for this user serialize,
		// then re-check sufficiency inside the same transaction.
		if _, err := s.userRepo.GetForUpdate(ctx, userID, tx); err != nil {
			return fmt.Errorf("get user for update: %w", err)
		}

		available, err := s.calc.Available(ctx, userID, tx)
		if err != nil {
			return err
		}

		price := content.PriceCoins
		if sufficiency := CheckSufficiency(price, available); !sufficiency.Sufficient {
			return &model.InsufficientFundsError{Required: price, Available: available}
		}

		debitType := model.TypeVideoView
		if content.Type == model.ContentSeries {
			debitType = model.TypeSeriesPurchase
		}
		contentType := content.Type
		debit := &model.Transaction{
			TransactionID: uuid.New().String(),
			UserID:        userID,
			Type:          debitType,
			Amount:        price,
			Status:        model.StatusCompleted,
			ContentType:   &contentType,
			ContentID:     &content.ID,
			CreatorID:     &content.CreatorID,
		}
		if err := s.ledgerRepo.Append(ctx, debit, tx); err != nil {
			return fmt.Errorf("append debit: %w", err)
		}

		if _, err := s.distributor.RecordCreatorEarning(ctx, tx, content, price, debit.TransactionID); err != nil {
			return err
		}

		purchase := &model.Purchase{
			UserID:        userID,
			ContentID:     content.ID,
			ContentType:   content.Type,
			PurchasePrice: price,
			Status:        "completed",
		}
		if err := s.purchaseRepo.Insert(ctx, purchase, tx); err != nil {
			if errors.Is(err, model.ErrDuplicatePurchase) {
				// Another request won the (user, content) race, rollback
				return errPurchaseRace
			}
			return fmt.Errorf("insert purchase: %w", err)
		}

		if err := s.catalog.IncrementViewCount(ctx, content.ID, tx); err != nil {
			return err
		}

		buyerBalance, err := s.ledgerRepo.CompletedBalance(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("buyer completed balance: %w", err)
		}
		if err := s.userRepo.SyncCoinBalance(ctx, userID, buyerBalance, tx); err != nil {
			return fmt.Errorf("sync buyer balance: %w", err)
		}

		s.logger.Info().
			Str("transaction_id", debit.TransactionID).
			Int64("user_id", userID).
			Int64("content_id", content.ID).
			Int64("creator_id", content.CreatorID).
			Str("price", price.StringFixed(2)).
			Str("remaining", available.Sub(price).StringFixed(2)).
			Msg("content purchased")

		result = &model.PurchaseResult{
			Success:          true,
			CoinsSpent:       price.StringFixed(2),
			RemainingBalance: available.Sub(price).StringFixed(2),
			HasAccess:        true,
			AccessType:       model.AccessPurchased,
			PurchaseID:       &purchase.ID,
		}
		notified = true
		return nil
	})

	if errors.Is(err, errPurchaseRace) {
		// The loser observes the winner's record and returns success with no
		// second charge.
		s.logger.Info().Int64("user_id", userID).Int64("content_id", contentID).
			Msg("purchase race lost, returning existing access")
		available, availErr := s.calc.Available(ctx, userID)
		if availErr != nil {
			return nil, availErr
		}
		metrics.PurchasesTotal.WithLabelValues(string(model.AccessAlreadyOwned)).Inc()
		return &model.PurchaseResult{
			Success:          true,
			CoinsSpent:       "0",
			RemainingBalance: available.StringFixed(2),
			HasAccess:        true,
			AccessType:       model.AccessAlreadyOwned,
		}, nil
	}

	if err != nil {
		var insufficient *model.InsufficientFundsError
		if errors.As(err, &insufficient) {
			metrics.PurchaseFailuresTotal.WithLabelValues("insufficient_funds").Inc()
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues(string(result.AccessType)).Inc()
	if notified {
		s.notifier.Notify(ctx, userID)
		s.notifier.Notify(ctx, content.CreatorID)
	}
	return result, nil
}

// existingAccess implements the idempotent re-entry checks: a completed
// purchase record, creator self-access, or an owned parent series. Returns
// the empty access type when the user must pay.
func (s *PurchaseServiceImpl) existingAccess(ctx context.Context, tx pgx.Tx, userID int64, content *model.Content) (model.AccessType, error) {
	existing, err := s.purchaseRepo.GetByUserAndContent(ctx, userID, content.ID, tx)
	if err != nil {
		return "", fmt.Errorf("get purchase: %w", err)
	}
	if existing != nil {
		return model.AccessAlreadyOwned, nil
	}

	if content.CreatorID == userID {
		return model.AccessCreator, nil
	}

	if content.Type == model.ContentVideo && content.SeriesID != nil {
		seriesPurchase, err := s.purchaseRepo.GetByUserAndContent(ctx, userID, *content.SeriesID, tx)
		if err != nil {
			return "", fmt.Errorf("get series purchase: %w", err)
		}
		if seriesPurchase != nil {
			return model.AccessSeries, nil
		}
	}

	return "", nil
}

func (s *PurchaseServiceImpl) zeroSpendResult(ctx context.Context, tx pgx.Tx, userID int64, access model.AccessType) (*model.PurchaseResult, error) {
	available, err := s.calc.Available(ctx, userID, tx)
	if err != nil {
		return nil, err
	}
	return &model.PurchaseResult{
		Success:          true,
		CoinsSpent:       "0",
		RemainingBalance: available.StringFixed(2),
		HasAccess:        true,
		AccessType:       access,
	}, nil
}
