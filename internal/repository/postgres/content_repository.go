package postgres

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ContentCatalog = (*ContentRepositoryImpl)(nil)

// ContentRepositoryImpl reads the catalog tables the upstream content service
// owns. The wallet core only needs price, availability and creator.
type ContentRepositoryImpl struct {
	*TransactionManager
}

func NewContentRepository(pool *pgxpool.Pool) repository.ContentCatalog {
	return &ContentRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetContent retrieves a catalog entry by id
func (r *ContentRepositoryImpl) GetContent(ctx context.Context, contentID int64) (*model.Content, error) {
	query := `
        SELECT id, content_type, creator_id, price_coins, is_active, series_id, view_count
        FROM content WHERE id = $1`

	content := &model.Content{}
	err := r.pool.QueryRow(ctx, query, contentID).
		Scan(&content.ID, &content.Type, &content.CreatorID, &content.PriceCoins,
			&content.IsActive, &content.SeriesID, &content.ViewCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}

// IncrementViewCount bumps the denormalized view counter
func (r *ContentRepositoryImpl) IncrementViewCount(ctx context.Context, contentID int64, tx pgx.Tx) error {
	query := `UPDATE content SET view_count = view_count + 1, updated_at = NOW() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, contentID); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}
