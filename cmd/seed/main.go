// seed inserts a handful of sample orders into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/orderdesk/orderdesk/internal/infrastructure/postgres"
)

var samples = []domain.Order{
	{CustomerName: "Ann Harper", Phone: "555-0101", Address: "1 Maple Rd", Quantity: 2, Color: "red", PaymentMethod: "cash", TotalAmount: 19.98, Status: domain.StatusPending},
	{CustomerName: "Boris Lang", Phone: "555-0102", Address: "42 Birch Ave", Quantity: 1, Color: "navy", PaymentMethod: "card", TotalAmount: 9.99, Status: domain.StatusPending},
	{CustomerName: "Carla Reyes", Phone: "555-0103", Address: "7 Oak St", Quantity: 5, Color: "green", PaymentMethod: "transfer", TotalAmount: 49.95, Status: domain.StatusPending},
	{CustomerName: "Deniz Aksoy", Phone: "555-0104", Address: "9 Pine Ct", Quantity: 3, Color: "black", PaymentMethod: "cash", TotalAmount: 29.97, Status: domain.StatusPending},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	repo := postgres.NewOrderRepository(pool)
	for i := range samples {
		created, err := repo.Create(ctx, &samples[i])
		if err != nil {
			log.Fatalf("seed order %d: %v", i, err)
		}
		fmt.Printf("seeded order #%d (%s)\n", created.ID, created.CustomerName)
	}
}
