package repository

import (
	"context"
	"time"

	"github.com/feriago/orders/internal/domain/model"
)

// OrderRepository provides durable persistence for orders and their line
// items.
type OrderRepository interface {
	// Create inserts the order and all its line items in one transaction.
	Create(ctx context.Context, order *model.Order, items []model.OrderLineItem) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	// MarkDeliveredDueBefore advances every non-delivered order whose
	// delivery date is not after cutoff to DELIVERED in a single statement.
	// Returns the number of affected rows.
	MarkDeliveredDueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
