package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bakery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	MarkReady(ctx context.Context, id uint, actingRole string) (*Order, error)
	CollectPayment(ctx context.Context, id uint) (*Order, error)

	ProductionToday(ctx context.Context, dayStart, dayEnd time.Time) ([]*Order, error)
	ProductionLate(ctx context.Context, now time.Time) ([]*Order, error)
	ProductionUpcoming(ctx context.Context, after time.Time) ([]*Order, error)
	ProductionHistory(ctx context.Context, limit int) ([]*Order, error)

	CashierActive(ctx context.Context) ([]*Order, error)
	CashierHistory(ctx context.Context, from, to *time.Time) ([]*Order, error)

	AdminAlerts(ctx context.Context, typ AlertType, now time.Time) ([]*Order, error)
	AdminActive(ctx context.Context, limit, offset int) ([]*Order, int, error)
	AdminHistory(ctx context.Context, limit, offset int) ([]*Order, int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, order_no, customer_name, customer_phone, order_details, image_url, order_total, deposit_amount, remaining_amount, delivery_datetime, status, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNo,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.OrderDetails,
		&o.ImageURL,
		&o.OrderTotal,
		&o.DepositAmount,
		&o.RemainingAmount,
		&o.DeliveryDatetime,
		&o.Status,
		&o.CreatedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_no", o.OrderNo),
	)

	query := `
		INSERT INTO orders (
			order_no, customer_name, customer_phone, order_details, image_url,
			order_total, deposit_amount, remaining_amount, delivery_datetime,
			status, created_by
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		o.OrderNo,
		o.CustomerName,
		o.CustomerPhone,
		o.OrderDetails,
		o.ImageURL,
		o.OrderTotal,
		o.DepositAmount,
		o.RemainingAmount,
		o.DeliveryDatetime,
		o.Status,
		o.CreatedBy,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	log.Debug("order inserted", zap.Uint("order_id", o.ID))
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

// MarkReady advances an order to ready inside a transaction. The row is
// locked first so concurrent status writes cannot race. The transition
// guard runs against the locked row state.
func (r *repository) MarkReady(ctx context.Context, id uint, actingRole string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "MarkReady"),
		zap.Uint("order_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	o, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Status == StatusReady {
		return o, ErrAlreadyReady
	}

	if !CanChange(o.Status, StatusReady, actingRole) {
		log.Warn("illegal status transition",
			zap.String("from", string(o.Status)),
			zap.String("role", actingRole),
		)
		return nil, ErrIllegalTransition
	}

	err = tx.QueryRowContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`,
		StatusReady, id,
	).Scan(&o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	o.Status = StatusReady
	log.Info("order marked ready", zap.String("order_no", o.OrderNo))
	return o, nil
}

// CollectPayment zeroes the remaining amount and force-sets paid. This
// is a privileged write that deliberately bypasses the transition
// guard. A row with no outstanding balance (zero or still unpriced) is
// treated as already paid and left untouched, so retries are safe.
func (r *repository) CollectPayment(ctx context.Context, id uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CollectPayment"),
		zap.Uint("order_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	o, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.RemainingAmount == nil || *o.RemainingAmount <= 0 {
		return nil, ErrAlreadyPaid
	}

	err = tx.QueryRowContext(ctx,
		`UPDATE orders SET remaining_amount = 0, status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`,
		StatusPaid, id,
	).Scan(&o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var zero int64
	o.RemainingAmount = &zero
	o.Status = StatusPaid
	log.Info("payment collected", zap.String("order_no", o.OrderNo))
	return o, nil
}

func (r *repository) ProductionToday(ctx context.Context, dayStart, dayEnd time.Time) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 AND delivery_datetime >= $2 AND delivery_datetime < $3 ORDER BY delivery_datetime ASC`
	return r.queryOrders(ctx, query, StatusPreparing, dayStart, dayEnd)
}

func (r *repository) ProductionLate(ctx context.Context, now time.Time) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 AND delivery_datetime IS NOT NULL AND delivery_datetime < $2 ORDER BY delivery_datetime ASC`
	return r.queryOrders(ctx, query, StatusPreparing, now)
}

func (r *repository) ProductionUpcoming(ctx context.Context, after time.Time) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 AND delivery_datetime > $2 ORDER BY delivery_datetime ASC`
	return r.queryOrders(ctx, query, StatusPreparing, after)
}

func (r *repository) ProductionHistory(ctx context.Context, limit int) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status IN ($1, $2) ORDER BY delivery_datetime DESC LIMIT $3`
	return r.queryOrders(ctx, query, StatusReady, StatusPaid, limit)
}

func (r *repository) CashierActive(ctx context.Context) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status IN ($1, $2, $3) ORDER BY delivery_datetime ASC`
	return r.queryOrders(ctx, query, StatusPending, StatusPreparing, StatusReady)
}

func (r *repository) CashierHistory(ctx context.Context, from, to *time.Time) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status IN ($1, $2)`
	args := []any{StatusPaid, StatusDelivered}
	argIndex := 3

	if from != nil {
		query += fmt.Sprintf(" AND updated_at >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}
	if to != nil {
		query += fmt.Sprintf(" AND updated_at < $%d", argIndex)
		args = append(args, *to)
		argIndex++
	}

	query += " ORDER BY delivery_datetime DESC"
	return r.queryOrders(ctx, query, args...)
}

// AdminAlerts lists orders needing attention. An unknown type applies
// no filter and returns every order, matching the admin listing
// endpoint's permissive behavior.
func (r *repository) AdminAlerts(ctx context.Context, typ AlertType, now time.Time) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argIndex := 1

	switch typ {
	case AlertLate:
		query += fmt.Sprintf(" AND delivery_datetime IS NOT NULL AND delivery_datetime < $%d AND status != $%d", argIndex, argIndex+1)
		args = append(args, now, StatusPaid)
	case AlertSoon:
		query += fmt.Sprintf(" AND delivery_datetime IS NOT NULL AND delivery_datetime BETWEEN $%d AND $%d AND status != $%d", argIndex, argIndex+1, argIndex+2)
		args = append(args, now, now.Add(time.Hour), StatusPaid)
	case AlertNoDeposit:
		query += fmt.Sprintf(" AND (deposit_amount IS NULL OR deposit_amount = 0) AND status != $%d", argIndex)
		args = append(args, StatusPaid)
	}

	query += " ORDER BY delivery_datetime ASC"
	return r.queryOrders(ctx, query, args...)
}

func (r *repository) AdminActive(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE status != $1`, StatusPaid).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE status != $1 ORDER BY delivery_datetime ASC LIMIT $2 OFFSET $3`
	orders, err := r.queryOrders(ctx, query, StatusPaid, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *repository) AdminHistory(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = $1`, StatusPaid).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY delivery_datetime DESC LIMIT $2 OFFSET $3`
	orders, err := r.queryOrders(ctx, query, StatusPaid, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
