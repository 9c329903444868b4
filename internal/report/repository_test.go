package report

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func TestCountLate(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE delivery_datetime IS NOT NULL AND delivery_datetime < \$1 AND status != 'paid'`).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountLate(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountNoDeposit_NullSafe(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	mock.ExpectQuery(`\(deposit_amount IS NULL OR deposit_amount = 0\) AND status != 'paid'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountNoDeposit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaidRevenueBetween_EmptyTableYieldsZero(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(order_total\), 0\) FROM orders`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))

	revenue, err := repo.PaidRevenueBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(0), revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaidRevenueAndCountBetween(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`status = 'paid' AND order_total IS NOT NULL`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(125000, 17))

	revenue, count, err := repo.PaidRevenueAndCountBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), revenue)
	assert.Equal(t, 17, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyPaidRevenue(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	from := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery(`SELECT DATE\(created_at\), COALESCE\(SUM\(order_total\), 0\) FROM orders`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"date", "sum"}).
			AddRow(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), 4200).
			AddRow(time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC), 800))

	revenues, err := repo.DailyPaidRevenue(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), revenues["2026-08-15"])
	assert.Equal(t, int64(800), revenues["2026-08-18"])
	assert.NotContains(t, revenues, "2026-08-16")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusCounts(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("preparing", 4).
			AddRow("paid", 11))

	dist, err := repo.StatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, dist.Preparing)
	assert.Equal(t, 0, dist.Ready)
	assert.Equal(t, 11, dist.Paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPeriodSummary(t *testing.T) {
	repo, mock, closeDB := newTestRepo(t)
	defer closeDB()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(order_total\), 0\), COALESCE\(SUM\(deposit_amount\), 0\), COALESCE\(SUM\(remaining_amount\), 0\) FROM orders`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total", "deposit", "remaining"}).
			AddRow(12, 90000, 20000, 70000))

	summary, err := repo.PeriodSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalOrders)
	assert.Equal(t, int64(90000), summary.TotalRevenue)
	assert.Equal(t, int64(20000), summary.TotalDeposit)
	assert.Equal(t, int64(70000), summary.TotalRemaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}
