package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/letstalk/internal/filex"
	_ "modernc.org/sqlite"
)

// Driver names understood by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Options selects and configures a backend for Open.
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	S3          S3Options
	S3Bucket    string
	S3Prefix    string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the Store selected by o.Driver, running migrations for SQL
// backends. The returned closer releases the underlying connection.
func Open(ctx context.Context, o Options) (Store, io.Closer, error) {
	switch o.Driver {
	case DriverMemory:
		return NewMemoryStore(), nopCloser{}, nil

	case DriverSQLite, "":
		if _, err := filex.EnsureParentDir(o.SQLitePath); err != nil {
			return nil, nil, err
		}
		db, err := sql.Open("sqlite", o.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := Migrate(ctx, db, DialectSQLite); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return NewSQLiteStore(db), db, nil

	case DriverPostgres:
		db, err := sql.Open("pgx", o.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := Migrate(ctx, db, DialectPostgres); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return NewPostgresStore(db), db, nil

	case DriverS3:
		client, err := NewS3Client(ctx, o.S3)
		if err != nil {
			return nil, nil, err
		}
		return NewS3Store(client, o.S3Bucket, o.S3Prefix), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", o.Driver)
	}
}
