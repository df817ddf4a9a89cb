package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/lock"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/internal/app/loyalty"
	"github.com/ujwegh/keytoheart/internal/app/metrics"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/phone"
	"github.com/ujwegh/keytoheart/internal/app/repository"
	"go.uber.org/zap"
)

const (
	accrualGranted  = "granted"
	accrualRepeated = "already_granted"
	accrualZero     = "zero_amount"

	reversalFull    = "full"
	reversalClamped = "clamped"
	reversalNone    = "nothing_to_reverse"
)

type OrderService interface {
	CreateOrder(ctx context.Context, phone string, total int64) (*models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	GetOrders(ctx context.Context, phone string) (*[]models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type OrderServiceImpl struct {
	orderRepo     repository.OrderRepository
	accountRepo   repository.AccountRepository
	ledgerService LedgerService
	locks         *lock.KeyLock
	now           func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, accountRepo repository.AccountRepository,
	ledgerService LedgerService, locks *lock.KeyLock) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		accountRepo:   accountRepo,
		ledgerService: ledgerService,
		locks:         locks,
		now:           time.Now,
	}
}

func (os *OrderServiceImpl) CreateOrder(ctx context.Context, rawPhone string, total int64) (*models.Order, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Order total must not be negative", http.StatusBadRequest)
	}

	now := os.now()
	order := &models.Order{
		Phone:     p,
		Total:     total,
		Status:    models.PENDING,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = os.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	logger.Log.Info("order created", zap.Int64("order", order.ID), zap.String("phone", p), zap.Int64("total", total))
	return order, nil
}

func (os *OrderServiceImpl) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return os.orderRepo.GetOrderByID(ctx, orderID)
}

func (os *OrderServiceImpl) GetOrders(ctx context.Context, rawPhone string) (*[]models.Order, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return nil, err
	}
	return os.orderRepo.GetOrdersByPhone(ctx, p)
}

// UpdateStatus moves the order to status. Delivery grants the cashback once per order;
// cancellation takes a granted cashback back. The bonus change, the marker on the
// order and the new status commit in one transaction.
func (os *OrderServiceImpl) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidStatus, "Invalid order status", http.StatusBadRequest)
	}

	var (
		accrualOutcome, reversalOutcome string
		delta                           int64
	)
	err := os.withOrderTx(ctx, orderID, func(tx *sqlx.Tx, order *models.Order) error {
		var err error
		switch status {
		case models.DELIVERED:
			accrualOutcome, delta, err = os.accrueTx(ctx, tx, order)
		case models.CANCELED:
			reversalOutcome, delta, err = os.reverseTx(ctx, tx, order)
		}
		if err != nil {
			return err
		}
		return os.orderRepo.UpdateStatus(ctx, tx, order.ID, status, os.now())
	})
	if err != nil {
		return nil, err
	}

	if delta != 0 {
		observeMutation(delta)
	}
	if accrualOutcome != "" {
		metrics.OrderAccruals.WithLabelValues(accrualOutcome).Inc()
	}
	if reversalOutcome != "" {
		metrics.OrderReversals.WithLabelValues(reversalOutcome).Inc()
	}
	logger.Log.Info("order status updated", zap.Int64("order", orderID), zap.String("status", status.String()))
	return os.orderRepo.GetOrderByID(ctx, orderID)
}

// DeleteOrder removes the order after taking back any cashback it granted.
func (os *OrderServiceImpl) DeleteOrder(ctx context.Context, orderID int64) error {
	var (
		reversalOutcome string
		delta           int64
	)
	err := os.withOrderTx(ctx, orderID, func(tx *sqlx.Tx, order *models.Order) error {
		var err error
		reversalOutcome, delta, err = os.reverseTx(ctx, tx, order)
		if err != nil {
			return err
		}
		return os.orderRepo.DeleteOrder(ctx, tx, order.ID)
	})
	if err != nil {
		return err
	}
	if delta != 0 {
		observeMutation(delta)
	}
	metrics.OrderReversals.WithLabelValues(reversalOutcome).Inc()
	logger.Log.Info("order deleted", zap.Int64("order", orderID))
	return nil
}

// withOrderTx holds the lock of the order's customer and runs fn in a transaction
// with a fresh copy of the order read inside it.
func (os *OrderServiceImpl) withOrderTx(ctx context.Context, orderID int64, fn func(tx *sqlx.Tx, order *models.Order) error) error {
	order, err := os.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	unlock, err := os.locks.Lock(ctx, order.Phone)
	if err != nil {
		return fmt.Errorf("acquire account lock: %w", err)
	}
	defer unlock()

	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.NewStoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	order, err = os.orderRepo.GetOrderByIDTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if err = fn(tx, order); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return appErrors.NewStoreFailure("commit transaction", err)
	}
	return nil
}

// accrueTx grants the cashback for a delivered order at the tier the customer had
// before this order counted towards lifetime spend.
func (os *OrderServiceImpl) accrueTx(ctx context.Context, tx *sqlx.Tx, order *models.Order) (string, int64, error) {
	if order.BonusAccrued {
		return accrualRepeated, 0, nil
	}
	account, err := os.ledgerService.EnsureAccountTx(ctx, tx, order.Phone)
	if err != nil {
		return "", 0, err
	}

	now := os.now()
	amount := loyalty.AccrualAmount(order.Total, account.Tier)
	claimed, err := os.orderRepo.MarkAccrued(ctx, tx, order.ID, amount, now)
	if err != nil {
		return "", 0, err
	}
	if !claimed {
		return accrualRepeated, 0, nil
	}

	outcome := accrualZero
	if amount > 0 {
		reason := fmt.Sprintf("accrual for order #%d", order.ID)
		if _, err = os.ledgerService.ApplyDeltaTx(ctx, tx, order.Phone, amount, reason); err != nil {
			return "", 0, err
		}
		outcome = accrualGranted
	}

	if err = os.recordSpendTx(ctx, tx, order, account, now); err != nil {
		return "", 0, err
	}

	logger.Log.Info("order accrual granted",
		zap.Int64("order", order.ID),
		zap.String("phone", order.Phone),
		zap.String("tier", account.Tier.String()),
		zap.Int64("amount", amount))
	return outcome, amount, nil
}

// recordSpendTx counts the order's total towards lifetime spend once per order and
// moves the customer to the tier the new spend earns.
func (os *OrderServiceImpl) recordSpendTx(ctx context.Context, tx *sqlx.Tx, order *models.Order,
	account *models.Account, now time.Time) error {
	claimed, err := os.orderRepo.MarkSpendRecorded(ctx, tx, order.ID, now)
	if err != nil {
		return err
	}
	if !claimed {
		logger.Log.Debug("order spend already recorded", zap.Int64("order", order.ID))
		return nil
	}

	updated, err := os.accountRepo.RecordSpend(ctx, tx, account.ID, order.Total, now)
	if err != nil {
		return err
	}
	if tier := loyalty.TierFor(updated.LifetimeSpend); tier != updated.Tier {
		if err = os.accountRepo.UpdateTier(ctx, tx, updated.ID, tier, now); err != nil {
			return err
		}
		logger.Log.Info("tier changed",
			zap.String("phone", updated.Phone),
			zap.String("from", updated.Tier.String()),
			zap.String("to", tier.String()))
	}
	return nil
}

// reverseTx takes back the cashback granted for the order, never below a zero
// balance, and releases the accrual marker.
func (os *OrderServiceImpl) reverseTx(ctx context.Context, tx *sqlx.Tx, order *models.Order) (string, int64, error) {
	if !order.BonusAccrued {
		return reversalNone, 0, nil
	}

	outcome := reversalNone
	var reversed int64
	if order.BonusAmount > 0 {
		account, err := os.accountRepo.GetByPhoneTx(ctx, tx, order.Phone)
		if err != nil && !errors.Is(err, appErrors.ErrAccountNotFound) {
			return "", 0, err
		}
		var balance int64
		if account != nil {
			balance = account.Balance
		}

		amount := min(order.BonusAmount, balance)
		reversed = -amount
		if amount > 0 {
			reason := fmt.Sprintf("reversal for order #%d", order.ID)
			if _, err = os.ledgerService.ApplyDeltaTx(ctx, tx, order.Phone, -amount, reason); err != nil {
				return "", 0, err
			}
		}

		outcome = reversalFull
		if amount < order.BonusAmount {
			outcome = reversalClamped
			logger.Log.Warn("order reversal clamped to balance",
				zap.Int64("order", order.ID),
				zap.String("phone", order.Phone),
				zap.Int64("granted", order.BonusAmount),
				zap.Int64("reversed", amount))
		}
	}

	if _, err := os.orderRepo.ReleaseAccrual(ctx, tx, order.ID, os.now()); err != nil {
		return "", 0, err
	}
	return outcome, reversed, nil
}
