package counter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestGetNextValueUpsertsAndReturns(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery("INSERT INTO sequence_counters").
		WithArgs("employee", "employee_code").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	next, err := repo.GetNextValue(context.Background(), "employee", "employee_code")
	require.NoError(t, err)
	assert.Equal(t, int64(7), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNextValueScopesKeysIndependently(t *testing.T) {
	gdb, mock := newGormWithMock(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery("INSERT INTO sequence_counters").
		WithArgs("employee", "employee_code").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(12)))
	mock.ExpectQuery("INSERT INTO sequence_counters").
		WithArgs("invoice", "invoice_number").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1)))

	empSeq, err := repo.GetNextValue(context.Background(), "employee", "employee_code")
	require.NoError(t, err)
	invSeq, err := repo.GetNextValue(context.Background(), "invoice", "invoice_number")
	require.NoError(t, err)

	assert.Equal(t, int64(12), empSeq)
	assert.Equal(t, int64(1), invSeq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCounterIncrements(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := NewRedisRepository(rdb)

	mock.ExpectIncr("seq:employee:employee_code").SetVal(43)

	next, err := repo.GetNextValue(context.Background(), "employee", "employee_code")
	require.NoError(t, err)
	assert.Equal(t, int64(43), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}
