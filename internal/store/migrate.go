package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/store/migrations"
	"github.com/pressly/goose/v3"
)

// Dialect names accepted by Migrate.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Migrate applies the embedded migrations for dialect. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	var gooseDialect string
	switch dialect {
	case DialectSQLite:
		gooseDialect = "sqlite3"
	case DialectPostgres:
		gooseDialect = "postgres"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dialect); err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return nil
}
