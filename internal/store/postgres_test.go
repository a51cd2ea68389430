package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresStore_Get(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	v, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestPostgresStore_GetError(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv`)).
		WillReturnError(errors.New("conn reset"))

	_, err := s.Get(context.Background(), "users")
	require.ErrorContains(t, err, "db error")
}

func TestPostgresStore_SetAndRemove(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv (key, value, updated_at)`)).
		WithArgs("posts", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = $1`)).
		WithArgs("posts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(ctx, "posts", []byte(`[]`)))
	require.NoError(t, s.Remove(ctx, "posts"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_BatchCommit(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Batch(context.Background(), func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "posts", []byte("p")); err != nil {
			return err
		}
		return tx.Set(ctx, "users", []byte("u"))
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_BatchRollback(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv`)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Batch(context.Background(), func(ctx context.Context, tx Store) error {
		return tx.Set(ctx, "posts", []byte("p"))
	})
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
