package usecase

import (
	"context"
	"time"

	domainErrors "github.com/feriago/orders/internal/domain/errors"
	"github.com/feriago/orders/internal/domain/model"
	"github.com/feriago/orders/internal/domain/repository"
)

// OrderUseCase serves order queries and the periodic delivery
// reconciliation.
type OrderUseCase struct {
	orders  repository.OrderRepository
	catalog CatalogGateway
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, catalog CatalogGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog}
}

// Order returns a single order by id.
func (u *OrderUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	if !IsUUID(id) {
		return nil, domainErrors.BadRequest("the order id format is not valid")
	}
	return u.orders.GetByID(ctx, id)
}

// CustomerOrders returns the customer's orders as receipts, re-enriched
// against the catalog. Line items whose product can no longer be fetched
// are left out, matching what the caller could still be shown.
func (u *OrderUseCase) CustomerOrders(ctx context.Context, token, customerID string) ([]model.OrderReceipt, error) {
	if !IsUUID(customerID) {
		return nil, domainErrors.BadRequest("the customer id is not valid")
	}

	orders, err := u.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	receipts := make([]model.OrderReceipt, 0, len(orders))
	for _, order := range orders {
		items := make([]model.ReceiptItem, 0, len(order.Items))
		names := make([]string, 0, len(order.Items))
		for _, line := range order.Items {
			product, err := u.catalog.Product(ctx, token, line.ProductID)
			if err != nil {
				continue
			}
			items = append(items, model.ReceiptItem{
				Title:    product.Name,
				Quantity: line.QuantityOrdered,
				Price:    line.Amount,
				ImageURL: product.ImageURL,
			})
			if product.Name != "" {
				names = append(names, product.Name)
			}
		}

		receipts = append(receipts, model.OrderReceipt{
			OrderID: order.ID,
			Summary: Summarize(names),
			Date:    order.DeliveryDate.Format(deliveryDateLayout),
			Total:   order.TotalAmount,
			Status:  string(order.State),
			Items:   items,
		})
	}

	return receipts, nil
}

// ReconcileDeliveries transitions every order due on or before today's
// midnight (UTC) to DELIVERED. Idempotent; returns the number of orders
// transitioned.
func (u *OrderUseCase) ReconcileDeliveries(ctx context.Context) (int64, error) {
	return u.orders.MarkDeliveredDueBefore(ctx, midnightUTC(time.Now()))
}

func midnightUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
