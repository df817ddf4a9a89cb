// Package testutil provides an in-memory SQLite database with the ledger schema for
// repository and service tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors the goose migrations with SQLite column types. The ledger entry
// immutability rules only exist in PostgreSQL.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts
(
    id             TEXT PRIMARY KEY,
    phone          VARCHAR(12) UNIQUE NOT NULL,
    balance        INTEGER     NOT NULL DEFAULT 0,
    tier           VARCHAR(16) NOT NULL DEFAULT 'bronze',
    lifetime_spend INTEGER     NOT NULL DEFAULT 0,
    created_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (balance >= 0),
    CHECK (lifetime_spend >= 0)
);

CREATE TABLE IF NOT EXISTS ledger_entries
(
    id         TEXT PRIMARY KEY,
    account_id TEXT      NOT NULL REFERENCES accounts (id),
    amount     INTEGER   NOT NULL,
    reason     TEXT      NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (amount <> 0),
    CHECK (length(trim(reason)) > 0)
);

CREATE TABLE IF NOT EXISTS orders
(
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    phone          VARCHAR(12) NOT NULL,
    total          INTEGER     NOT NULL,
    status         VARCHAR(16) NOT NULL DEFAULT 'pending',
    bonus_accrued  BOOLEAN     NOT NULL DEFAULT FALSE,
    bonus_amount   INTEGER     NOT NULL DEFAULT 0,
    spend_recorded BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (total >= 0),
    CHECK (bonus_amount >= 0)
);
`

// NewSQLiteDB opens a private in-memory database and closes it when the test ends.
// A single connection keeps every query on the same database and serializes
// transactions the way row locks do in PostgreSQL.
func NewSQLiteDB(t testing.TB) *sqlx.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(Schema); err != nil {
		t.Fatalf("could not create schema: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
