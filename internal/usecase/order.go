package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/orderdesk/orderdesk/internal/email"
	"github.com/orderdesk/orderdesk/internal/metrics"
	"github.com/orderdesk/orderdesk/internal/repository"
)

type OrderUsecase struct {
	repo        repository.OrderRepository
	sender      email.Sender
	notifyEmail string
	logger      *slog.Logger
}

func NewOrderUsecase(repo repository.OrderRepository, sender email.Sender, notifyEmail string, logger *slog.Logger) *OrderUsecase {
	return &OrderUsecase{
		repo:        repo,
		sender:      sender,
		notifyEmail: notifyEmail,
		logger:      logger.With("component", "order_usecase"),
	}
}

type SubmitOrderInput struct {
	CustomerName  string
	Phone         string
	Address       string
	Quantity      int
	Color         string
	PaymentMethod string
	TotalAmount   float64
}

// SubmitOrder persists a new order with status "pending" and notifies the
// shop admin. The notification is best-effort: a send failure is logged and
// never surfaced to the customer.
func (u *OrderUsecase) SubmitOrder(ctx context.Context, input SubmitOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Address:       input.Address,
		Quantity:      input.Quantity,
		Color:         input.Color,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   input.TotalAmount,
		Status:        domain.StatusPending,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersSubmittedTotal.Inc()

	subject := fmt.Sprintf("New order #%d from %s", created.ID, created.CustomerName)
	body := fmt.Sprintf(
		"<p>Order #%d</p><ul><li>Customer: %s (%s)</li><li>Address: %s</li><li>Quantity: %d, color: %s</li><li>Payment: %s, total: %.2f</li></ul>",
		created.ID, created.CustomerName, created.Phone, created.Address,
		created.Quantity, created.Color, created.PaymentMethod, created.TotalAmount,
	)
	if err := u.sender.Send(ctx, u.notifyEmail, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "order notification", "order_id", created.ID, "error", err)
	}

	return created, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
