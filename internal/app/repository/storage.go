package repository

import (
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/ujwegh/keytoheart/internal/app/config"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/migrations"
	"go.uber.org/zap"
)

type DBStorage struct {
	DBConn *sqlx.DB
}

func NewDBStorage(cfg config.AppConfig) *DBStorage {
	db, err := Open(cfg.DatabaseDSN)
	if err != nil {
		panic(err)
	}
	// Migrate the database
	err = MigrateFS(db, migrations.FS, ".")
	if err != nil {
		panic(err)
	}

	return &DBStorage{DBConn: db}
}

func (s *DBStorage) Close() error {
	return s.DBConn.Close()
}

// Open connects through the pgx stdlib driver so driver errors surface as *pgconn.PgError.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func MigrateFS(db *sqlx.DB, migrationsFS fs.FS, dir string) error {
	goose.SetBaseFS(migrationsFS)
	defer func() {
		goose.SetBaseFS(nil)
	}()
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	version, err := goose.GetDBVersion(db.DB)
	if err == nil {
		logger.Log.Info("database migrated", zap.Int64("version", version))
	}
	return nil
}
