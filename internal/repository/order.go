package repository

import (
	"context"
	"time"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// OrderStats aggregates submissions over a window, used by the daily summary.
type OrderStats struct {
	Count       int
	TotalAmount float64
}

// Usecases depend on this interface, not on the pgx implementation, so the
// store can be swapped and tests can pass fakes.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	StatsSince(ctx context.Context, since time.Time) (OrderStats, error)
}
