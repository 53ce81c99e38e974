package member

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	memberdomain "gym-membership-go/internal/domain/member"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       conn,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewStore(gormDB), mock
}

func TestPostgresInsertReturnsID(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "members"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	m := memberdomain.NewMember(memberFields("pg"))
	require.NoError(t, store.Insert(context.Background(), &m))
	assert.Equal(t, int64(12), m.ID)
	assert.False(t, m.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertFailure(t *testing.T) {
	store, mock := setupMockStore(t)
	engineErr := errors.New("could not extend file")

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "members"`)).
		WillReturnError(engineErr)

	svc := memberdomain.NewService(store)
	_, err := svc.Create(context.Background(), memberFields("pg"))
	assert.ErrorIs(t, err, memberdomain.ErrInsertFailed)
	assert.ErrorIs(t, err, engineErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSelectAllOrdersByID(t *testing.T) {
	store, mock := setupMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "members" ORDER BY id desc`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(2, "second", "b@example.com", now).
			AddRow(1, "first", "a@example.com", now))

	items, err := store.SelectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "first", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateReportsRowsAffected(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "members" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changes, err := store.Update(context.Background(), 5, memberFields("nobody"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "members"`)).
		WillReturnError(errors.New("connection reset"))

	svc := memberdomain.NewService(store)
	_, err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, memberdomain.ErrDeleteFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
