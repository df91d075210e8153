package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/orderdesk/orderdesk/internal/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (
			customer_name, phone, address, quantity, color,
			payment_method, total_amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, customer_name, phone, address, quantity, color,
		          payment_method, total_amount, status, created_at`

	row := r.pool.QueryRow(ctx, query,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.Quantity,
		order.Color,
		order.PaymentMethod,
		order.TotalAmount,
		order.Status,
	)

	return scanOrder(row)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_name, phone, address, quantity, color,
		       payment_method, total_amount, status, created_at
		FROM orders
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) StatsSince(ctx context.Context, since time.Time) (repository.OrderStats, error) {
	var stats repository.OrderStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders WHERE created_at >= $1`, since).
		Scan(&stats.Count, &stats.TotalAmount)
	if err != nil {
		return repository.OrderStats{}, fmt.Errorf("order stats: %w", err)
	}
	return stats, nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Quantity,
		&o.Color, &o.PaymentMethod, &o.TotalAmount, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}
