package repository

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

const orderColumns = `id, phone, total, status, bonus_accrued, bonus_amount, spend_recorded, created_at, updated_at`

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	GetOrderByIDTx(ctx context.Context, tx *sqlx.Tx, orderID int64) (*models.Order, error)
	GetOrdersByPhone(ctx context.Context, phone string) (*[]models.Order, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, orderID int64, status models.OrderStatus, now time.Time) error
	MarkAccrued(ctx context.Context, tx *sqlx.Tx, orderID int64, amount int64, now time.Time) (bool, error)
	ReleaseAccrual(ctx context.Context, tx *sqlx.Tx, orderID int64, now time.Time) (bool, error)
	MarkSpendRecorded(ctx context.Context, tx *sqlx.Tx, orderID int64, now time.Time) (bool, error)
	DeleteOrder(ctx context.Context, tx *sqlx.Tx, orderID int64) error
	GetDB() *sqlx.DB
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

// CreateOrder stores the order and fills in the id assigned by the database.
func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `INSERT INTO orders (phone, total, status, bonus_accrued, bonus_amount, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`
	err := or.db.GetContext(ctx, &order.ID, query, order.Phone, order.Total, order.Status.String(),
		order.BonusAccrued, order.BonusAmount, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return appErrors.NewStoreFailure("create order", err)
	}
	return nil
}

func (or *OrderRepositoryImpl) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`
	order := &models.Order{}
	err := or.db.GetContext(ctx, order, query, orderID)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrderByIDTx(ctx context.Context, tx *sqlx.Tx, orderID int64) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`
	order := &models.Order{}
	err := tx.GetContext(ctx, order, query, orderID)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrdersByPhone(ctx context.Context, phone string) (*[]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE phone = $1 ORDER BY created_at DESC, id DESC;`
	orders := make([]models.Order, 0)
	err := or.db.SelectContext(ctx, &orders, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, appErrors.NewStoreFailure("read orders", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) UpdateStatus(ctx context.Context, tx *sqlx.Tx, orderID int64, status models.OrderStatus, now time.Time) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3;`
	res, err := tx.ExecContext(ctx, query, status.String(), now, orderID)
	if err != nil {
		return appErrors.NewStoreFailure("update order status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return appErrors.NewStoreFailure("update order status", err)
	}
	if n == 0 {
		return orderNotFound()
	}
	return nil
}

// MarkAccrued claims the accrual marker. It reports false when another transaction
// already claimed it, in which case nothing must be credited.
func (or *OrderRepositoryImpl) MarkAccrued(ctx context.Context, tx *sqlx.Tx, orderID int64, amount int64, now time.Time) (bool, error) {
	query := `UPDATE orders SET bonus_accrued = TRUE, bonus_amount = $1, updated_at = $2
			  WHERE id = $3 AND bonus_accrued = FALSE;`
	return or.execClaim(ctx, tx, "mark order accrued", query, amount, now, orderID)
}

// ReleaseAccrual clears the marker after a reversal; false means there was nothing to release.
func (or *OrderRepositoryImpl) ReleaseAccrual(ctx context.Context, tx *sqlx.Tx, orderID int64, now time.Time) (bool, error) {
	query := `UPDATE orders SET bonus_accrued = FALSE, bonus_amount = 0, updated_at = $1
			  WHERE id = $2 AND bonus_accrued = TRUE;`
	return or.execClaim(ctx, tx, "release order accrual", query, now, orderID)
}

// MarkSpendRecorded claims the order's total for lifetime spend. The flag is never
// cleared, so a re-delivered order is not counted twice.
func (or *OrderRepositoryImpl) MarkSpendRecorded(ctx context.Context, tx *sqlx.Tx, orderID int64, now time.Time) (bool, error) {
	query := `UPDATE orders SET spend_recorded = TRUE, updated_at = $1
			  WHERE id = $2 AND spend_recorded = FALSE;`
	return or.execClaim(ctx, tx, "mark order spend recorded", query, now, orderID)
}

func (or *OrderRepositoryImpl) DeleteOrder(ctx context.Context, tx *sqlx.Tx, orderID int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1;`, orderID)
	if err != nil {
		return appErrors.NewStoreFailure("delete order", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return appErrors.NewStoreFailure("delete order", err)
	}
	if n == 0 {
		return orderNotFound()
	}
	return nil
}

func (or *OrderRepositoryImpl) GetDB() *sqlx.DB {
	return or.db
}

func (or *OrderRepositoryImpl) execClaim(ctx context.Context, tx *sqlx.Tx, op, query string, args ...any) (bool, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, appErrors.NewStoreFailure(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, appErrors.NewStoreFailure(op, err)
	}
	return n == 1, nil
}

func orderNotFound() error {
	return appErrors.NewWithCode(appErrors.ErrOrderNotFound, "Order not found", http.StatusNotFound)
}

func orderLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return orderNotFound()
	}
	return appErrors.NewStoreFailure("get order", err)
}
