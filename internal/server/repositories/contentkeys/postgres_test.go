package contentkeys

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	mock.ExpectQuery(`SELECT\s+pointer,\s*owner,\s*key,\s*created_at\s+FROM\s+content_keys\s+WHERE\s+pointer\s*=\s*\$1`).
		WithArgs("bafy").
		WillReturnRows(sqlmock.NewRows([]string{"pointer", "owner", "key", "created_at"}).
			AddRow("bafy", "alice", []byte{1, 2, 3}, ts))

	got, err := repo.Get(context.Background(), "bafy")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, []byte{1, 2, 3}, got.Key)
	assert.Equal(t, ts, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+content_keys`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+content_keys\s*\(pointer,\s*owner,\s*key\).*ON\s+CONFLICT\s+\(pointer\)\s+DO\s+NOTHING.*RETURNING\s+created_at\s*$`).
		WithArgs("bafy", "alice", []byte{9}).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(ts))

	got, err := repo.Create(context.Background(), &models.ContentKey{Pointer: "bafy", Owner: "alice", Key: []byte{9}})
	require.NoError(t, err)
	assert.Equal(t, ts, got.CreatedAt)
}

func TestCreate_Conflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+content_keys`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), &models.ContentKey{Pointer: "bafy", Owner: "mallory", Key: []byte{1}})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+content_keys`).WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), &models.ContentKey{Pointer: "bafy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}
