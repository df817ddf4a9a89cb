package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/lock"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/internal/app/metrics"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/phone"
	"github.com/ujwegh/keytoheart/internal/app/repository"
	"go.uber.org/zap"
)

const DefaultHistoryLimit = 50

type LedgerService interface {
	ApplyDelta(ctx context.Context, phone string, delta int64, reason string) (*models.Account, error)
	ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, phone string, delta int64, reason string) (*models.Account, error)
	EnsureAccountTx(ctx context.Context, tx *sqlx.Tx, phone string) (*models.Account, error)
	Redeem(ctx context.Context, phone string, amount int64, orderID int64) (*models.Account, error)
	GetAccount(ctx context.Context, phone string) (*models.Account, error)
	GetHistory(ctx context.Context, phone string, limit int) ([]models.LedgerEntry, error)
	Reconcile(ctx context.Context, phone string) (*models.Reconciliation, error)
}

type LedgerServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	locks       *lock.KeyLock
	now         func() time.Time
}

func NewLedgerService(accountRepo repository.AccountRepository, ledgerRepo repository.LedgerRepository, locks *lock.KeyLock) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		locks:       locks,
		now:         time.Now,
	}
}

// ApplyDelta changes the balance of the account behind phone by delta and records the
// change in the ledger. Both writes commit together or not at all.
func (ls *LedgerServiceImpl) ApplyDelta(ctx context.Context, rawPhone string, delta int64, reason string) (*models.Account, error) {
	p, reason, err := validateMutation(rawPhone, delta, reason)
	if err != nil {
		metrics.LedgerRejections.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	unlock, err := ls.locks.Lock(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("acquire account lock: %w", err)
	}
	defer unlock()

	tx, err := ls.accountRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.NewStoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	account, err := ls.applyDeltaTx(ctx, tx, p, delta, reason)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, appErrors.NewStoreFailure("commit transaction", err)
	}

	observeMutation(delta)
	logger.Log.Info("balance changed",
		zap.String("phone", p),
		zap.Int64("delta", delta),
		zap.Int64("balance", account.Balance),
		zap.String("reason", reason))
	return account, nil
}

// ApplyDeltaTx runs the mutation inside tx. The caller owns the transaction and must
// hold the lock for the phone.
func (ls *LedgerServiceImpl) ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, rawPhone string, delta int64, reason string) (*models.Account, error) {
	p, reason, err := validateMutation(rawPhone, delta, reason)
	if err != nil {
		metrics.LedgerRejections.WithLabelValues("invalid_input").Inc()
		return nil, err
	}
	return ls.applyDeltaTx(ctx, tx, p, delta, reason)
}

func (ls *LedgerServiceImpl) applyDeltaTx(ctx context.Context, tx *sqlx.Tx, p string, delta int64, reason string) (*models.Account, error) {
	account, err := ls.EnsureAccountTx(ctx, tx, p)
	if err != nil {
		return nil, err
	}

	if delta > 0 && account.Balance > math.MaxInt64-delta {
		metrics.LedgerRejections.WithLabelValues("invalid_input").Inc()
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount out of range", http.StatusBadRequest)
	}

	now := ls.now()
	updated, err := ls.accountRepo.ApplyDelta(ctx, tx, account.ID, delta, now)
	if err != nil {
		if errors.Is(err, appErrors.ErrInsufficientBalance) {
			metrics.LedgerRejections.WithLabelValues("insufficient_balance").Inc()
			logger.Log.Info("debit rejected",
				zap.String("phone", p),
				zap.Int64("delta", delta),
				zap.Int64("balance", account.Balance))
		}
		return nil, err
	}

	entry := &models.LedgerEntry{
		ID:        uuid.New(),
		AccountID: account.ID,
		Amount:    delta,
		Reason:    reason,
		CreatedAt: now,
	}
	if err = ls.ledgerRepo.Append(ctx, tx, entry); err != nil {
		return nil, err
	}
	return updated, nil
}

// EnsureAccountTx returns the account for phone, creating it with a zero balance in
// the bronze tier on first use.
func (ls *LedgerServiceImpl) EnsureAccountTx(ctx context.Context, tx *sqlx.Tx, p string) (*models.Account, error) {
	now := ls.now()
	return ls.accountRepo.Upsert(ctx, tx, &models.Account{
		ID:        uuid.New(),
		Phone:     p,
		Balance:   0,
		Tier:      models.Bronze,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Redeem spends amount bonus points at checkout. orderID is optional and only
// labels the ledger entry.
func (ls *LedgerServiceImpl) Redeem(ctx context.Context, p string, amount int64, orderID int64) (*models.Account, error) {
	if amount <= 0 {
		metrics.LedgerRejections.WithLabelValues("invalid_input").Inc()
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount must be positive", http.StatusBadRequest)
	}
	reason := "redemption"
	if orderID > 0 {
		reason = fmt.Sprintf("redemption for order #%d", orderID)
	}
	return ls.ApplyDelta(ctx, p, -amount, reason)
}

func (ls *LedgerServiceImpl) GetAccount(ctx context.Context, rawPhone string) (*models.Account, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return nil, err
	}
	return ls.accountRepo.GetByPhone(ctx, p)
}

func (ls *LedgerServiceImpl) GetHistory(ctx context.Context, rawPhone string, limit int) ([]models.LedgerEntry, error) {
	account, err := ls.GetAccount(ctx, rawPhone)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return ls.ledgerRepo.ListByAccount(ctx, account.ID, limit)
}

// Reconcile compares the stored balance with the sum of the account's ledger entries.
func (ls *LedgerServiceImpl) Reconcile(ctx context.Context, rawPhone string) (*models.Reconciliation, error) {
	account, err := ls.GetAccount(ctx, rawPhone)
	if err != nil {
		return nil, err
	}
	sum, err := ls.ledgerRepo.SumByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	r := &models.Reconciliation{Phone: account.Phone, Balance: account.Balance, LedgerSum: sum}
	if !r.Consistent() {
		logger.Log.Warn("ledger out of balance",
			zap.String("phone", account.Phone),
			zap.Int64("balance", account.Balance),
			zap.Int64("ledger_sum", sum))
	}
	return r, nil
}

func validateMutation(rawPhone string, delta int64, reason string) (string, string, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return "", "", err
	}
	if delta == 0 {
		return "", "", appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount must not be zero", http.StatusBadRequest)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", "", appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Reason is required", http.StatusBadRequest)
	}
	return p, reason, nil
}

func observeMutation(delta int64) {
	direction := metrics.Direction(delta)
	metrics.LedgerMutations.WithLabelValues(direction).Inc()
	if delta < 0 {
		delta = -delta
	}
	metrics.LedgerVolume.WithLabelValues(direction).Add(float64(delta))
}
