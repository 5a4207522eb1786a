package app

import (
	"context"

	"github.com/feriago/orders/internal/domain/model"
	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/usecase"
)

// HealthChecker reports readiness of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MarketFacade aggregates the use cases behind the surface the HTTP
// handlers and the reconciliation worker consume.
type MarketFacade struct {
	strategy     pkgAuth.Strategy
	orchestrator *usecase.OrderOrchestrator
	orders       *usecase.OrderUseCase
	health       HealthChecker
}

// NewMarketFacade constructs MarketFacade.
func NewMarketFacade(strategy pkgAuth.Strategy, orchestrator *usecase.OrderOrchestrator, orders *usecase.OrderUseCase, health HealthChecker) *MarketFacade {
	return &MarketFacade{strategy: strategy, orchestrator: orchestrator, orders: orders, health: health}
}

func (f *MarketFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.strategy.ParseToken(token)
}

func (f *MarketFacade) CreateOrder(ctx context.Context, token, customerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	return f.orchestrator.CreateForCustomer(ctx, token, customerID, req)
}

func (f *MarketFacade) CreateSellerOrder(ctx context.Context, token, sellerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	return f.orchestrator.CreateForSeller(ctx, token, sellerID, req)
}

func (f *MarketFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Order(ctx, id)
}

func (f *MarketFacade) CustomerOrders(ctx context.Context, token, customerID string) ([]model.OrderReceipt, error) {
	return f.orders.CustomerOrders(ctx, token, customerID)
}

func (f *MarketFacade) ReconcileDeliveries(ctx context.Context) (int64, error) {
	return f.orders.ReconcileDeliveries(ctx)
}

func (f *MarketFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
