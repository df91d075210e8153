package domain

import "time"

const StatusPending = "pending"

// Order is one customer purchase request. ID and CreatedAt are assigned by
// the store at insertion and never change afterwards.
type Order struct {
	ID            int64
	CustomerName  string
	Phone         string
	Address       string
	Quantity      int
	Color         string
	PaymentMethod string
	TotalAmount   float64
	Status        string
	CreatedAt     time.Time
}
