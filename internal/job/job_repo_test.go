package job

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

func newRepoWithMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewRepository(gdb), mock
}

// sort_by is attacker-controlled query input; anything outside the
// whitelist must collapse to the default column instead of reaching the
// SQL text.
func TestListRejectsUnknownSortColumn(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`ORDER BY created_at desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, _, err := repo.List(context.Background(), listquery.Params{
		Page:      1,
		Limit:     10,
		SortBy:    "(SELECT pg_sleep(10))--",
		SortOrder: "desc",
	}, ListJobsFilter{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllowsWhitelistedSortColumn(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`ORDER BY view_count asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, _, err := repo.List(context.Background(), listquery.Params{
		Page:      1,
		Limit:     10,
		SortBy:    "view_count",
		SortOrder: "asc",
	}, ListJobsFilter{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
