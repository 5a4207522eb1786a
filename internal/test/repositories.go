package test

import (
	"context"
	"time"

	"github.com/feriago/orders/internal/domain/model"
)

// OrderRepositoryStub provides controllable persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, *model.Order, []model.OrderLineItem) (*model.Order, error)
	GetFn    func(context.Context, string) (*model.Order, error)
	ListFn   func(context.Context, string) ([]model.Order, error)
	MarkFn   func(context.Context, time.Time) (int64, error)
}

// Create delegates to the provided function or echoes the order back.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, items []model.OrderLineItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, items)
	}
	created := *order
	created.Items = items
	created.CreatedAt = time.Unix(0, 0)
	created.UpdatedAt = time.Unix(0, 0)
	return &created, nil
}

// GetByID delegates to the provided function or returns a minimal order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, State: model.OrderStatePreparing}, nil
}

// ListByCustomer delegates to the provided function or returns nothing.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	return nil, nil
}

// MarkDeliveredDueBefore delegates to the provided function or reports no rows.
func (s *OrderRepositoryStub) MarkDeliveredDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, cutoff)
	}
	return 0, nil
}

// CatalogClientStub simulates the remote catalog service.
type CatalogClientStub struct {
	ProductFn func(context.Context, string, string) (*model.CatalogProduct, error)
	UpdateFn  func(context.Context, string, string, int) error
}

// Product delegates to the provided function or returns a stocked product.
func (s CatalogClientStub) Product(ctx context.Context, token, id string) (*model.CatalogProduct, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, token, id)
	}
	return &model.CatalogProduct{ID: id, Name: "Product", Quantity: 10, UnitAmount: 1}, nil
}

// UpdateQuantity delegates to the provided function or accepts the change.
func (s CatalogClientStub) UpdateQuantity(ctx context.Context, token, id string, quantity int) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, token, id, quantity)
	}
	return nil
}

// HealthCheckerStub reports configurable storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
