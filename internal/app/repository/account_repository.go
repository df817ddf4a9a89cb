package repository

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

const accountColumns = `id, phone, balance, tier, lifetime_spend, created_at, updated_at`

type AccountRepository interface {
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)
	GetByPhoneTx(ctx context.Context, tx *sqlx.Tx, phone string) (*models.Account, error)
	Upsert(ctx context.Context, tx *sqlx.Tx, account *models.Account) (*models.Account, error)
	ApplyDelta(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, delta int64, now time.Time) (*models.Account, error)
	RecordSpend(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, amount int64, now time.Time) (*models.Account, error)
	UpdateTier(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, tier models.Tier, now time.Time) error
	GetDB() *sqlx.DB
}

type AccountRepositoryImpl struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepositoryImpl {
	return &AccountRepositoryImpl{db: db}
}

func (ar *AccountRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE phone = $1;`
	account := models.Account{}
	err := ar.db.GetContext(ctx, &account, query, phone)
	if err != nil {
		return nil, accountLookupError(err)
	}
	return &account, nil
}

func (ar *AccountRepositoryImpl) GetByPhoneTx(ctx context.Context, tx *sqlx.Tx, phone string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE phone = $1;`
	account := models.Account{}
	err := tx.GetContext(ctx, &account, query, phone)
	if err != nil {
		return nil, accountLookupError(err)
	}
	return &account, nil
}

// Upsert inserts the account unless the phone is already known and returns the stored row.
func (ar *AccountRepositoryImpl) Upsert(ctx context.Context, tx *sqlx.Tx, account *models.Account) (*models.Account, error) {
	query := `INSERT INTO accounts (id, phone, balance, tier, lifetime_spend, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (phone) DO NOTHING;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, appErrors.NewStoreFailure("prepare statement", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, account.ID, account.Phone, account.Balance, account.Tier.String(),
		account.LifetimeSpend, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return nil, appErrors.NewStoreFailure("upsert account", err)
	}
	return ar.GetByPhoneTx(ctx, tx, account.Phone)
}

// ApplyDelta changes the balance only if it stays non-negative; the check and the
// write are one statement so concurrent writers serialize on the row.
func (ar *AccountRepositoryImpl) ApplyDelta(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, delta int64, now time.Time) (*models.Account, error) {
	query := `UPDATE accounts SET balance = balance + $1, updated_at = $2
			  WHERE id = $3 AND balance + $1 >= 0
			  RETURNING ` + accountColumns + `;`
	account := models.Account{}
	err := tx.GetContext(ctx, &account, query, delta, now, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, sql.ErrNoRows) ||
			(errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation) {
			return nil, appErrors.NewWithCode(appErrors.ErrInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)
		}
		if isOutOfRange(err) {
			return nil, amountOutOfRange()
		}
		return nil, appErrors.NewStoreFailure("apply delta", err)
	}
	return &account, nil
}

func (ar *AccountRepositoryImpl) RecordSpend(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, amount int64, now time.Time) (*models.Account, error) {
	query := `UPDATE accounts SET lifetime_spend = lifetime_spend + $1, updated_at = $2
			  WHERE id = $3
			  RETURNING ` + accountColumns + `;`
	account := models.Account{}
	err := tx.GetContext(ctx, &account, query, amount, now, accountID)
	if err != nil {
		if isOutOfRange(err) {
			return nil, amountOutOfRange()
		}
		return nil, accountLookupError(err)
	}
	return &account, nil
}

func (ar *AccountRepositoryImpl) UpdateTier(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, tier models.Tier, now time.Time) error {
	query := `UPDATE accounts SET tier = $1, updated_at = $2 WHERE id = $3;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return appErrors.NewStoreFailure("prepare statement", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, tier.String(), now, accountID)
	if err != nil {
		return appErrors.NewStoreFailure("update tier", err)
	}
	return nil
}

func (ar *AccountRepositoryImpl) GetDB() *sqlx.DB {
	return ar.db
}

func accountLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NewWithCode(appErrors.ErrAccountNotFound, "Account not found", http.StatusNotFound)
	}
	return appErrors.NewStoreFailure("get account", err)
}

// isOutOfRange reports a BIGINT overflow of balance or lifetime spend.
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NumericValueOutOfRange
}

func amountOutOfRange() error {
	return appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount out of range", http.StatusBadRequest)
}
