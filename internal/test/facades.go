package test

import (
	"context"
	"sync"

	"github.com/feriago/orders/internal/domain/model"
	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
)

// MarketFacadeStub provides controllable behaviour for order endpoints.
type MarketFacadeStub struct {
	ParseFn          func(string) (pkgAuth.Identity, error)
	CreateFn         func(context.Context, string, string, model.NewOrder) (*model.OrderReceipt, error)
	CreateSellerFn   func(context.Context, string, string, model.NewOrder) (*model.OrderReceipt, error)
	OrderFn          func(context.Context, string) (*model.Order, error)
	CustomerOrdersFn func(context.Context, string, string) ([]model.OrderReceipt, error)
	HealthFn         func(context.Context) error
}

// ParseToken delegates to the provided function or returns a customer identity.
func (s MarketFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "00000000-0000-4000-8000-000000000000", Role: pkgAuth.RoleCustomer}, nil
}

// HealthCheck delegates to the provided function or reports healthy.
func (s MarketFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// CreateOrder delegates to the provided function or returns a default receipt.
func (s MarketFacadeStub) CreateOrder(ctx context.Context, token, customerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, token, customerID, req)
	}
	return &model.OrderReceipt{OrderID: "00000000-0000-4000-8000-000000000000", Status: string(model.OrderStatePreparing)}, nil
}

// CreateSellerOrder delegates to the provided function or returns a default receipt.
func (s MarketFacadeStub) CreateSellerOrder(ctx context.Context, token, sellerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	if s.CreateSellerFn != nil {
		return s.CreateSellerFn(ctx, token, sellerID, req)
	}
	return &model.OrderReceipt{OrderID: "00000000-0000-4000-8000-000000000000", Status: string(model.OrderStatePreparing)}, nil
}

// Order returns the configured order lookup result.
func (s MarketFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, State: model.OrderStatePreparing}, nil
}

// CustomerOrders returns predefined receipts for the given customer.
func (s MarketFacadeStub) CustomerOrders(ctx context.Context, token, customerID string) ([]model.OrderReceipt, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, token, customerID)
	}
	return []model.OrderReceipt{{OrderID: "00000000-0000-4000-8000-000000000000"}}, nil
}

// ReconcilerFacadeStub mimics worker interactions with the delivery facade.
type ReconcilerFacadeStub struct {
	ReconcileFn func(context.Context) (int64, error)
	mu          sync.Mutex
	calls       int
}

// Lock exposes internal mutex for external synchronization.
func (s *ReconcilerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *ReconcilerFacadeStub) Unlock() { s.mu.Unlock() }

// Calls returns the number of reconciliation passes observed. Callers must
// hold the lock.
func (s *ReconcilerFacadeStub) Calls() int { return s.calls }

// ReconcileDeliveries records the pass and delegates to the provided function.
func (s *ReconcilerFacadeStub) ReconcileDeliveries(ctx context.Context) (int64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx)
	}
	return 0, nil
}
