package postgres

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PurchaseRepository = (*PurchaseRepositoryImpl)(nil)

// PurchaseRepositoryImpl is the PostgreSQL implementation of PurchaseRepository.
// The UNIQUE (user_id, content_id) constraint makes concurrent duplicate
// purchases lose the race at the storage layer.
type PurchaseRepositoryImpl struct {
	*TransactionManager
}

func NewPurchaseRepository(pool *pgxpool.Pool) repository.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Insert creates a purchase record
func (r *PurchaseRepositoryImpl) Insert(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error {
	query := `
        INSERT INTO purchases (user_id, content_id, content_type, purchase_price, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, purchased_at`

	err := tx.QueryRow(ctx, query,
		purchase.UserID, purchase.ContentID, purchase.ContentType, purchase.PurchasePrice, purchase.Status).
		Scan(&purchase.ID, &purchase.PurchasedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicatePurchase
		}
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

// GetByUserAndContent retrieves the completed purchase for a pair, if any
func (r *PurchaseRepositoryImpl) GetByUserAndContent(ctx context.Context, userID, contentID int64, tx ...pgx.Tx) (*model.Purchase, error) {
	query := `
        SELECT id, user_id, content_id, content_type, purchase_price, status, purchased_at
        FROM purchases
        WHERE user_id = $1 AND content_id = $2 AND status = 'completed'`

	purchase := &model.Purchase{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID, contentID).
		Scan(&purchase.ID, &purchase.UserID, &purchase.ContentID, &purchase.ContentType,
			&purchase.PurchasePrice, &purchase.Status, &purchase.PurchasedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return purchase, nil
}

// ListByUser retrieves paginated purchases for a user
func (r *PurchaseRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error) {
	query := `
        SELECT id, user_id, content_id, content_type, purchase_price, status, purchased_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY purchased_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*model.Purchase
	for rows.Next() {
		purchase := &model.Purchase{}
		if err := rows.Scan(&purchase.ID, &purchase.UserID, &purchase.ContentID, &purchase.ContentType,
			&purchase.PurchasePrice, &purchase.Status, &purchase.PurchasedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	return purchases, rows.Err()
}
