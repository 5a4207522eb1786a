package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/feriago/orders/internal/domain/errors"
	"github.com/feriago/orders/internal/domain/model"
	"github.com/feriago/orders/internal/domain/repository"
)

// pgxPool is the pool surface Storage relies on. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Orders returns the order repository backed by this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            customer_id UUID NOT NULL,
            seller_id UUID,
            state TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            delivery_date TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id UUID NOT NULL,
            quantity_ordered INTEGER NOT NULL,
            amount DOUBLE PRECISION NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_due ON orders(state, delivery_date)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction runs fn inside a transaction with automatic rollback on error.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --- OrderRepository implementation ---

// Create persists the order and all its line items in a single
// transaction. Either everything is stored or nothing is.
func (r *orderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderLineItem) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (id, customer_id, seller_id, state, total_amount, delivery_date)
                         VALUES ($1, $2, $3, $4, $5, $6)
                         RETURNING created_at, updated_at`
	const insertItem = `INSERT INTO order_items (id, order_id, product_id, quantity_ordered, amount)
                        VALUES ($1, $2, $3, $4, $5)`

	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.CustomerID, order.SellerID, order.State, order.TotalAmount, order.DeliveryDate).
			Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem,
				item.ID, item.OrderID, item.ProductID, item.QuantityOrdered, item.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created.Items = items
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT id, customer_id, seller_id, state, total_amount, delivery_date, created_at, updated_at
                   FROM orders WHERE id=$1`
	var order model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.SellerID, &order.State,
		&order.TotalAmount, &order.DeliveryDate, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.NotFound("order not found")
		}
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	const query = `SELECT id, customer_id, seller_id, state, total_amount, delivery_date, created_at, updated_at
                   FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.SellerID, &o.State,
			&o.TotalAmount, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.itemsForOrder(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) itemsForOrder(ctx context.Context, orderID string) ([]model.OrderLineItem, error) {
	const query = `SELECT id, order_id, product_id, quantity_ordered, amount
                   FROM order_items WHERE order_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderLineItem
	for rows.Next() {
		var item model.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.QuantityOrdered, &item.Amount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkDeliveredDueBefore transitions orders whose delivery date has
// passed the cutoff. Re-running the statement matches zero rows.
func (r *orderRepository) MarkDeliveredDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `UPDATE orders SET state=$1, updated_at=NOW()
                   WHERE state <> $1 AND delivery_date <= $2`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStateDelivered, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
