package repository

import (
	"context"
	"math"
	"os/exec"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/migrations"
)

func checkDockerAvailable() bool {
	return exec.Command("docker", "info").Run() == nil
}

// setupPostgres starts PostgreSQL in a container and applies the embedded migrations.
// Skips the test if Docker is not available.
func setupPostgres(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkDockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("keytoheart"),
		postgres.WithUsername("keytoheart"),
		postgres.WithPassword("keytoheart"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, MigrateFS(db, migrations.FS, "."))
	return db
}

func TestPostgres_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)
	ledger := NewLedgerRepository(db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	account, err := accounts.Upsert(ctx, tx, &models.Account{
		ID: uuid.New(), Phone: "+79180000001", Tier: models.Bronze, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = accounts.ApplyDelta(ctx, tx, account.ID, 500, time.Now())
	require.NoError(t, err)
	require.NoError(t, ledger.Append(ctx, tx, &models.LedgerEntry{
		ID: uuid.New(), AccountID: account.ID, Amount: 500, Reason: "seed", CreatedAt: time.Now(),
	}))
	require.NoError(t, tx.Commit())

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := db.BeginTxx(ctx, nil)
			if !assert.NoError(t, err) {
				return
			}
			defer tx.Rollback()
			_, err = accounts.ApplyDelta(ctx, tx, account.ID, -100, time.Now())
			if err != nil {
				assert.ErrorIs(t, err, appErrors.ErrInsufficientBalance)
				rejected.Add(1)
				return
			}
			err = ledger.Append(ctx, tx, &models.LedgerEntry{
				ID: uuid.New(), AccountID: account.ID, Amount: -100, Reason: "debit", CreatedAt: time.Now(),
			})
			if assert.NoError(t, err) && assert.NoError(t, tx.Commit()) {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())
	assert.Equal(t, int32(5), rejected.Load())

	got, err := accounts.GetByPhone(ctx, "+79180000001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Balance)

	sum, err := ledger.SumByAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Balance, sum, "ledger sum matches balance")
}

func TestPostgres_LedgerEntriesAreImmutable(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)
	ledger := NewLedgerRepository(db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	account, err := accounts.Upsert(ctx, tx, &models.Account{
		ID: uuid.New(), Phone: "+79180000002", Tier: models.Bronze, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	entry := &models.LedgerEntry{ID: uuid.New(), AccountID: account.ID, Amount: 42, Reason: "seed", CreatedAt: time.Now()}
	require.NoError(t, ledger.Append(ctx, tx, entry))
	require.NoError(t, tx.Commit())

	_, err = db.ExecContext(ctx, `UPDATE ledger_entries SET amount = 1000 WHERE id = $1`, entry.ID)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = $1`, entry.ID)
	require.NoError(t, err)

	entries, err := ledger.ListByAccount(ctx, account.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].Amount)
}

func TestPostgres_InvalidPhoneRejectedBySchema(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()
	_, err = accounts.Upsert(ctx, tx, &models.Account{
		ID: uuid.New(), Phone: "+12345", Tier: models.Bronze, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, appErrors.ErrStoreFailure)
}

func TestPostgres_OverflowIsInvalidAmount(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()
	account, err := accounts.Upsert(ctx, tx, &models.Account{
		ID: uuid.New(), Phone: "+79180000003", Tier: models.Bronze, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = accounts.ApplyDelta(ctx, tx, account.ID, 500, time.Now())
	require.NoError(t, err)

	_, err = accounts.ApplyDelta(ctx, tx, account.ID, math.MaxInt64, time.Now())
	assert.ErrorIs(t, err, appErrors.ErrInvalidAmount)
	assert.NotErrorIs(t, err, appErrors.ErrStoreFailure)
}

func TestPostgres_SpendOverflowIsInvalidAmount(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()
	account, err := accounts.Upsert(ctx, tx, &models.Account{
		ID: uuid.New(), Phone: "+79180000004", Tier: models.Bronze, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = accounts.RecordSpend(ctx, tx, account.ID, math.MaxInt64, time.Now())
	require.NoError(t, err)

	_, err = accounts.RecordSpend(ctx, tx, account.ID, 1, time.Now())
	assert.ErrorIs(t, err, appErrors.ErrInvalidAmount)
}
