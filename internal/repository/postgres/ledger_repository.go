package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coin-ledger/internal/model"
	"coin-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, transaction_id, user_id, type, amount, status, content_type, content_id, creator_id, metadata, created_at, updated_at`

// Append creates a new ledger line
func (r *LedgerRepositoryImpl) Append(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (transaction_id, user_id, type, amount, status, content_type, content_id, creator_id, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	metadata, err := metadataParam(trans.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	var contentType *string
	if trans.ContentType != nil {
		s := trans.ContentType.String()
		contentType = &s
	}

	err = tx.QueryRow(ctx, query,
		trans.TransactionID, trans.UserID, trans.Type, trans.Amount, trans.Status,
		contentType, trans.ContentID, trans.CreatorID, metadata).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// GetByTransactionID retrieves a ledger line by its external uuid
func (r *LedgerRepositoryImpl) GetByTransactionID(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	executor := r.getExecutor(tx...)
	trans, err := scanTransaction(executor.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return trans, nil
}

// UpdateStatus transitions a line's status as a compare-and-set
func (r *LedgerRepositoryImpl) UpdateStatus(ctx context.Context, id int64, from, to model.TransactionStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3`

	result, err := tx.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// List retrieves ledger lines matching the filter, newest first
func (r *LedgerRepositoryImpl) List(ctx context.Context, filter *model.LedgerFilter) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{filter.UserID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ContentID != nil {
		args = append(args, *filter.ContentID)
		query += fmt.Sprintf(" AND content_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CompletedBalance is the signed sum of completed lines for a user:
// credits minus debits, debit-ness decided by the type column.
func (r *LedgerRepositoryImpl) CompletedBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(
            CASE WHEN type IN ('video_view', 'series_purchase', 'withdrawal') THEN -amount ELSE amount END
        ), 0)
        FROM transactions
        WHERE user_id = $1 AND status = 'completed'`

	var balance decimal.Decimal
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed balance: %w", err)
	}
	return balance, nil
}

// PendingWithdrawalHold sums the coins reserved by in-flight withdrawals
func (r *LedgerRepositoryImpl) PendingWithdrawalHold(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE user_id = $1 AND type = 'withdrawal' AND status IN ('pending', 'processing')`

	var hold decimal.Decimal
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, userID).Scan(&hold); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum withdrawal hold: %w", err)
	}
	return hold, nil
}

// CountPending counts non-terminal lines for a user
func (r *LedgerRepositoryImpl) CountPending(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND status IN ('pending', 'processing')`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending transactions: %w", err)
	}
	return count, nil
}

// GetPendingWithdrawals retrieves dispatchable withdrawal lines, oldest first
func (r *LedgerRepositoryImpl) GetPendingWithdrawals(ctx context.Context, minAge time.Duration, limit int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = 'withdrawal' AND status = 'pending' AND created_at <= $1
        ORDER BY created_at ASC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, time.Now().Add(-minAge), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending withdrawals: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func metadataParam(m model.Metadata) ([]byte, error) {
	if m.IsZero() {
		return nil, nil
	}
	return json.Marshal(m)
}

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	trans := &model.Transaction{}
	var (
		contentType *string
		metadata    []byte
	)
	err := row.Scan(&trans.ID, &trans.TransactionID, &trans.UserID, &trans.Type, &trans.Amount, &trans.Status,
		&contentType, &trans.ContentID, &trans.CreatorID, &metadata, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if contentType != nil {
		ct := model.ContentType(*contentType)
		trans.ContentType = &ct
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &trans.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}
	return trans, nil
}

func scanTransactions(rows pgx.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, rows.Err()
}
