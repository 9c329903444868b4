package report

import (
	"context"
	"database/sql"
	"time"
)

// Repository answers aggregate queries over the orders table. Every
// date filter excludes null rows instead of letting them count as zero.
type Repository interface {
	CountLate(ctx context.Context, now time.Time) (int, error)
	CountDueSoon(ctx context.Context, from, to time.Time) (int, error)
	CountNoDeposit(ctx context.Context) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CountDeliveriesBetween(ctx context.Context, from, to time.Time) (int, error)
	PaidRevenueBetween(ctx context.Context, from, to time.Time) (int64, error)
	PaidRevenueAndCountBetween(ctx context.Context, from, to time.Time) (int64, int, error)
	DailyPaidRevenue(ctx context.Context, from, to time.Time) (map[string]int64, error)
	StatusCounts(ctx context.Context) (*StatusDistribution, error)
	PeriodSummary(ctx context.Context, from, to time.Time) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountLate(ctx context.Context, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE delivery_datetime IS NOT NULL AND delivery_datetime < $1 AND status != 'paid'`

	var count int
	err := r.db.QueryRowContext(ctx, query, now).Scan(&count)
	return count, err
}

func (r *repository) CountDueSoon(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE delivery_datetime IS NOT NULL AND delivery_datetime BETWEEN $1 AND $2 AND status != 'paid'`

	var count int
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&count)
	return count, err
}

func (r *repository) CountNoDeposit(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE (deposit_amount IS NULL OR deposit_amount = 0) AND status != 'paid'`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE created_at IS NOT NULL AND created_at >= $1 AND created_at < $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&count)
	return count, err
}

func (r *repository) CountDeliveriesBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE delivery_datetime IS NOT NULL AND delivery_datetime >= $1 AND delivery_datetime < $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&count)
	return count, err
}

func (r *repository) PaidRevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(order_total), 0) FROM orders WHERE created_at IS NOT NULL AND created_at >= $1 AND created_at < $2 AND status = 'paid'`

	var revenue int64
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&revenue)
	return revenue, err
}

func (r *repository) PaidRevenueAndCountBetween(ctx context.Context, from, to time.Time) (int64, int, error) {
	query := `SELECT COALESCE(SUM(order_total), 0), COUNT(*) FROM orders WHERE created_at IS NOT NULL AND created_at >= $1 AND created_at <= $2 AND status = 'paid' AND order_total IS NOT NULL`

	var revenue int64
	var count int
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&revenue, &count)
	return revenue, count, err
}

func (r *repository) DailyPaidRevenue(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	query := `SELECT DATE(created_at), COALESCE(SUM(order_total), 0) FROM orders WHERE created_at IS NOT NULL AND created_at >= $1 AND created_at < $2 AND status = 'paid' GROUP BY DATE(created_at)`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenues := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var revenue int64
		if err := rows.Scan(&day, &revenue); err != nil {
			return nil, err
		}
		revenues[day.Format("2006-01-02")] = revenue
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return revenues, nil
}

func (r *repository) StatusCounts(ctx context.Context) (*StatusDistribution, error) {
	query := `SELECT status, COUNT(*) FROM orders WHERE status IN ('preparing', 'ready', 'paid') GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dist StatusDistribution
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case "preparing":
			dist.Preparing = count
		case "ready":
			dist.Ready = count
		case "paid":
			dist.Paid = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &dist, nil
}

func (r *repository) PeriodSummary(ctx context.Context, from, to time.Time) (*Summary, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(order_total), 0), COALESCE(SUM(deposit_amount), 0), COALESCE(SUM(remaining_amount), 0) FROM orders WHERE created_at IS NOT NULL AND created_at >= $1 AND created_at <= $2`

	var s Summary
	err := r.db.QueryRowContext(ctx, query, from, to).
		Scan(&s.TotalOrders, &s.TotalRevenue, &s.TotalDeposit, &s.TotalRemaining)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
