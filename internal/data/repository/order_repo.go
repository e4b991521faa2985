package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// UpdateStatus touches only order_status and updated_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, user_id, products, total, tax, grand_total,
	payment_type, order_status, created_at, updated_at`

func scanOrder(row rowScanner) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.Products,
		&o.Total,
		&o.Tax,
		&o.GrandTotal,
		&o.PaymentType,
		&o.OrderStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, user_id, products, total, tax, grand_total,
		                    payment_type, order_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.UserID,
		order.Products,
		order.Total,
		order.Tax,
		order.GrandTotal,
		order.PaymentType,
		order.OrderStatus,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, mapError(err))
	}

	r.log.Info("Order created",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("grand_total", order.GrandTotal),
	)
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryOrders(ctx, query, limit, offset)
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		r.log.Error("Database error counting orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}
	return count, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, userID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET order_status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("update order %s status: %w", id.String(), mapError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s status: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(status)),
	)
	return nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
