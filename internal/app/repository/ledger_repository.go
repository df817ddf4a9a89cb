package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

// LedgerRepository is append-only: entries are never updated or deleted.
type LedgerRepository interface {
	Append(ctx context.Context, tx *sqlx.Tx, entry *models.LedgerEntry) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.LedgerEntry, error)
	SumByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	GetDB() *sqlx.DB
}

type LedgerRepositoryImpl struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepositoryImpl {
	return &LedgerRepositoryImpl{db: db}
}

func (lr *LedgerRepositoryImpl) Append(ctx context.Context, tx *sqlx.Tx, entry *models.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, account_id, amount, reason, created_at) VALUES ($1, $2, $3, $4, $5);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return appErrors.NewStoreFailure("prepare statement", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, entry.ID, entry.AccountID, entry.Amount, entry.Reason, entry.CreatedAt)
	if err != nil {
		return appErrors.NewStoreFailure("append ledger entry", err)
	}
	return nil
}

func (lr *LedgerRepositoryImpl) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	query := `SELECT id, account_id, amount, reason, created_at FROM ledger_entries
			  WHERE account_id = $1 ORDER BY created_at DESC, id LIMIT $2;`
	entries := make([]models.LedgerEntry, 0)
	err := lr.db.SelectContext(ctx, &entries, query, accountID, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entries, nil
		}
		return nil, appErrors.NewStoreFailure("read ledger entries", err)
	}
	return entries, nil
}

func (lr *LedgerRepositoryImpl) SumByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE account_id = $1;`
	var sum int64
	err := lr.db.GetContext(ctx, &sum, query, accountID)
	if err != nil {
		return 0, appErrors.NewStoreFailure("sum ledger entries", err)
	}
	return sum, nil
}

func (lr *LedgerRepositoryImpl) GetDB() *sqlx.DB {
	return lr.db
}
