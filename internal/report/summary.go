package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/orderdesk/orderdesk/internal/email"
	"github.com/orderdesk/orderdesk/internal/repository"
	"github.com/robfig/cron/v3"
)

// Reporter emails the admin a periodic order summary. The schedule is a
// standard 5-field cron expression, parsed once at construction.
type Reporter struct {
	orders repository.OrderRepository
	sender email.Sender
	logger *slog.Logger
	sched  cron.Schedule
	to     string
}

func NewReporter(orders repository.OrderRepository, sender email.Sender, logger *slog.Logger, cronExpr, to string) (*Reporter, error) {
	sched, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse summary cron %q: %w", cronExpr, err)
	}
	return &Reporter{
		orders: orders,
		sender: sender,
		logger: logger.With("component", "reporter"),
		sched:  sched,
		to:     to,
	}, nil
}

func (r *Reporter) Start(ctx context.Context) {
	last := time.Now()
	r.logger.Info("reporter started", "next_run", r.sched.Next(last))

	for {
		next := r.sched.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("reporter shut down")
			return
		case <-timer.C:
			r.run(ctx, last)
			last = next
		}
	}
}

func (r *Reporter) run(ctx context.Context, since time.Time) {
	stats, err := r.orders.StatsSince(ctx, since)
	if err != nil {
		r.logger.Error("summary stats", "error", err)
		return
	}

	subject := fmt.Sprintf("Order summary: %d new orders", stats.Count)
	body := fmt.Sprintf(
		"<p>Since %s:</p><ul><li>Orders: %d</li><li>Revenue: %.2f</li></ul>",
		since.Format(time.RFC1123), stats.Count, stats.TotalAmount,
	)
	if err := r.sender.Send(ctx, r.to, subject, body); err != nil {
		r.logger.Error("summary email", "error", err)
		return
	}
	r.logger.Info("summary sent", "orders", stats.Count, "revenue", stats.TotalAmount)
}
