package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id             BIGSERIAL PRIMARY KEY,
	customer_name  TEXT          NOT NULL,
	phone          TEXT          NOT NULL,
	address        TEXT          NOT NULL,
	quantity       INTEGER       NOT NULL CHECK (quantity > 0),
	color          TEXT          NOT NULL,
	payment_method TEXT          NOT NULL,
	total_amount   NUMERIC(12,2) NOT NULL CHECK (total_amount >= 0),
	status         TEXT          NOT NULL DEFAULT 'pending',
	created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the orders table if it does not exist yet. There is
// no separate migration tool; the schema is a single table.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, ordersSchema); err != nil {
		return fmt.Errorf("ensure orders schema: %w", err)
	}
	return nil
}
