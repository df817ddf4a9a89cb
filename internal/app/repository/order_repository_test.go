package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/testutil"
)

func createOrder(t *testing.T, repo *OrderRepositoryImpl, phone string, total int64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		Phone:     phone,
		Total:     total,
		Status:    models.PENDING,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))
	return order
}

func inTx(t *testing.T, db *sqlx.DB, fn func(tx *sqlx.Tx)) {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)
	fn(tx)
	require.NoError(t, tx.Commit())
}

func TestOrderRepositoryImpl_CreateOrder(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)

	first := createOrder(t, repo, "+79180000001", 20_000, testTime)
	second := createOrder(t, repo, "+79180000001", 1_000, testTime)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID, "ids are assigned by the database")

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM orders"))
	assert.Equal(t, 2, count)
}

func TestOrderRepositoryImpl_GetOrderByID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	order := createOrder(t, repo, "+79180000001", 20_000, testTime)

	tests := []struct {
		name    string
		orderID int64
		wantErr bool
	}{
		{
			name:    "Successful Order Retrieval by ID",
			orderID: order.ID,
		},
		{
			name:    "Order Not Found by ID",
			orderID: order.ID + 100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetOrderByID(context.Background(), tt.orderID)
			if tt.wantErr {
				assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)
				assert.Nil(t, got, "Expected no order to be returned")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.Phone, got.Phone)
			assert.Equal(t, order.Total, got.Total)
			assert.Equal(t, models.PENDING, got.Status)
			assert.False(t, got.BonusAccrued)
		})
	}
}

func TestOrderRepositoryImpl_GetOrdersByPhone(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	older := createOrder(t, repo, "+79180000001", 100, testTime)
	newer := createOrder(t, repo, "+79180000001", 200, testTime.Add(time.Hour))
	createOrder(t, repo, "+79180000002", 300, testTime)

	tests := []struct {
		name    string
		phone   string
		wantIDs []int64
	}{
		{
			name:    "Orders Newest First",
			phone:   "+79180000001",
			wantIDs: []int64{newer.ID, older.ID},
		},
		{
			name:    "No Orders Found for Phone",
			phone:   "+79180000009",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetOrdersByPhone(context.Background(), tt.phone)
			require.NoError(t, err)
			ids := make([]int64, 0, len(*got))
			for _, o := range *got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOrderRepositoryImpl_UpdateStatus(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	order := createOrder(t, repo, "+79180000001", 100, testTime)

	inTx(t, db, func(tx *sqlx.Tx) {
		require.NoError(t, repo.UpdateStatus(context.Background(), tx, order.ID, models.DELIVERING, testTime))
	})
	got, err := repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DELIVERING, got.Status)

	inTx(t, db, func(tx *sqlx.Tx) {
		err := repo.UpdateStatus(context.Background(), tx, order.ID+1, models.DELIVERED, testTime)
		assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)
	})
}

func TestOrderRepositoryImpl_AccrualMarker(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	order := createOrder(t, repo, "+79180000001", 20_000, testTime)
	ctx := context.Background()

	inTx(t, db, func(tx *sqlx.Tx) {
		claimed, err := repo.MarkAccrued(ctx, tx, order.ID, 500, testTime)
		require.NoError(t, err)
		assert.True(t, claimed, "first claim wins")

		claimed, err = repo.MarkAccrued(ctx, tx, order.ID, 500, testTime)
		require.NoError(t, err)
		assert.False(t, claimed, "second claim is a no-op")
	})

	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.BonusAccrued)
	assert.Equal(t, int64(500), got.BonusAmount)

	inTx(t, db, func(tx *sqlx.Tx) {
		released, err := repo.ReleaseAccrual(ctx, tx, order.ID, testTime)
		require.NoError(t, err)
		assert.True(t, released)

		released, err = repo.ReleaseAccrual(ctx, tx, order.ID, testTime)
		require.NoError(t, err)
		assert.False(t, released)
	})

	got, err = repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, got.BonusAccrued)
	assert.Zero(t, got.BonusAmount)
}

func TestOrderRepositoryImpl_MarkSpendRecorded(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	order := createOrder(t, repo, "+79180000001", 10_000, testTime)
	ctx := context.Background()

	inTx(t, db, func(tx *sqlx.Tx) {
		claimed, err := repo.MarkSpendRecorded(ctx, tx, order.ID, testTime)
		require.NoError(t, err)
		assert.True(t, claimed)

		_, err = repo.MarkAccrued(ctx, tx, order.ID, 250, testTime)
		require.NoError(t, err)
		_, err = repo.ReleaseAccrual(ctx, tx, order.ID, testTime)
		require.NoError(t, err)

		claimed, err = repo.MarkSpendRecorded(ctx, tx, order.ID, testTime)
		require.NoError(t, err)
		assert.False(t, claimed, "releasing the accrual keeps the spend flag")
	})

	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.SpendRecorded)
	assert.False(t, got.BonusAccrued)
}

func TestOrderRepositoryImpl_DeleteOrder(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewOrderRepository(db)
	order := createOrder(t, repo, "+79180000001", 100, testTime)

	inTx(t, db, func(tx *sqlx.Tx) {
		require.NoError(t, repo.DeleteOrder(context.Background(), tx, order.ID))
	})
	_, err := repo.GetOrderByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)

	inTx(t, db, func(tx *sqlx.Tx) {
		err := repo.DeleteOrder(context.Background(), tx, order.ID)
		assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)
	})
}
