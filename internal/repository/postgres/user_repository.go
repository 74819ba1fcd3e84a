package postgres

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetForUpdate retrieves a user with a row-level lock. Locking the user row
// serializes concurrent balance mutations for the same user.
func (r *UserRepositoryImpl) GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.User, error) {
	query := `
        SELECT id, coin_balance, total_earnings, total_views, version, created_at, updated_at
        FROM users WHERE id = $1 FOR UPDATE`

	user := &model.User{}
	err := tx.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.CoinBalance, &user.TotalEarnings, &user.TotalViews,
			&user.Version, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user for update: %w", err)
	}
	return user, nil
}

// SyncCoinBalance rewrites the denormalized balance cache from the ledger sum
func (r *UserRepositoryImpl) SyncCoinBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET coin_balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		return fmt.Errorf("failed to sync coin balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// AddCreatorAggregates bumps total_earnings and total_views caches
func (r *UserRepositoryImpl) AddCreatorAggregates(ctx context.Context, creatorID int64, earnings decimal.Decimal, views int64, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET total_earnings = total_earnings + $1,
            total_views = total_views + $2,
            updated_at = NOW()
        WHERE id = $3`

	commandTag, err := tx.Exec(ctx, query, earnings, views, creatorID)
	if err != nil {
		return fmt.Errorf("failed to add creator aggregates: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
