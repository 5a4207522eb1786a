package handlers

import (
	"context"

	"github.com/feriago/orders/internal/domain/model"
	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	ParseToken(token string) (pkgAuth.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP. The token
// is the caller's raw bearer token, forwarded to the catalog service.
type OrderFacade interface {
	CreateOrder(ctx context.Context, token, customerID string, req model.NewOrder) (*model.OrderReceipt, error)
	CreateSellerOrder(ctx context.Context, token, sellerID string, req model.NewOrder) (*model.OrderReceipt, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	CustomerOrders(ctx context.Context, token, customerID string) ([]model.OrderReceipt, error)
}

// HealthFacade reports readiness of the backing store.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	OrderFacade
	HealthFacade
}
