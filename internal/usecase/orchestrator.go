package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/feriago/orders/internal/domain/errors"
	"github.com/feriago/orders/internal/domain/model"
	"github.com/feriago/orders/internal/domain/repository"
)

// InventoryNotifier broadcasts inventory changes to connected sellers.
// Dispatch must not block the caller.
type InventoryNotifier interface {
	Notify(updates []model.ProductUpdate)
}

// OrderOrchestrator coordinates validation, atomic local persistence,
// catalog stock decrements, and response assembly for the two order
// creation flows.
type OrderOrchestrator struct {
	orders    repository.OrderRepository
	validator *OrderValidator
	catalog   CatalogGateway
	notifier  InventoryNotifier
	logger    *slog.Logger
}

// NewOrderOrchestrator constructs OrderOrchestrator.
func NewOrderOrchestrator(orders repository.OrderRepository, validator *OrderValidator, catalog CatalogGateway, notifier InventoryNotifier, logger *slog.Logger) *OrderOrchestrator {
	return &OrderOrchestrator{
		orders:    orders,
		validator: validator,
		catalog:   catalog,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateForCustomer creates an order placed by the customer directly.
func (o *OrderOrchestrator) CreateForCustomer(ctx context.Context, token, customerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	if err := checkCreatePreconditions(req); err != nil {
		return nil, err
	}
	return o.create(ctx, token, customerID, nil, req, false)
}

// CreateForSeller creates an order placed by a seller on behalf of a
// customer. Connected sellers are notified of the resulting inventory
// changes.
func (o *OrderOrchestrator) CreateForSeller(ctx context.Context, token, sellerID string, req model.NewOrder) (*model.OrderReceipt, error) {
	if err := checkCreatePreconditions(req); err != nil {
		return nil, err
	}
	if req.CustomerID == "" {
		return nil, domainErrors.BadRequest("the 'customer_id' field is required")
	}
	if !IsUUID(req.CustomerID) {
		return nil, domainErrors.BadRequest("the customer id is not valid")
	}
	return o.create(ctx, token, req.CustomerID, &sellerID, req, true)
}

// checkCreatePreconditions runs before any catalog call is made.
func checkCreatePreconditions(req model.NewOrder) error {
	if req.Date == "" {
		return domainErrors.BadRequest("the 'date' field is required")
	}
	if len(req.Items) == 0 {
		return domainErrors.BadRequest("the request must contain a non-empty list of items")
	}
	return nil
}

func (o *OrderOrchestrator) create(ctx context.Context, token, customerID string, sellerID *string, req model.NewOrder, notifySellers bool) (*model.OrderReceipt, error) {
	validated, total, names, err := o.validator.Validate(ctx, token, req.Items)
	if err != nil {
		return nil, err
	}

	deliveryDate, err := DeliveryDate(req.Date, DefaultDeliveryBusinessDays)
	if err != nil {
		return nil, domainErrors.BadRequestf("the 'date' field must use the %s format", deliveryDateLayout)
	}

	order := &model.Order{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		SellerID:     sellerID,
		State:        model.OrderStatePreparing,
		TotalAmount:  total,
		DeliveryDate: deliveryDate,
	}
	items := make([]model.OrderLineItem, 0, len(validated))
	for _, item := range validated {
		items = append(items, model.OrderLineItem{
			ID:              uuid.NewString(),
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			QuantityOrdered: item.QuantityOrdered,
			Amount:          item.Amount,
		})
	}

	created, err := o.orders.Create(ctx, order, items)
	if err != nil {
		o.logger.Error("order persistence failed",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()))
		return nil, domainErrors.BadRequest("order creation failed, retry")
	}

	// The catalog lives in a separate system, so the decrements run after
	// the local commit, outside the transaction. A failure here leaves the
	// order committed and the catalog partially updated; a retry could
	// double-apply a decrement, so the divergence is logged and accepted.
	updates := make([]model.ProductUpdate, 0, len(validated))
	allDecremented := true
	for _, item := range validated {
		newQuantity := item.Available - item.QuantityOrdered
		if err := o.catalog.UpdateQuantity(ctx, token, item.ProductID, newQuantity); err != nil {
			o.logger.Error("catalog decrement failed after local commit",
				slog.String("order_id", created.ID),
				slog.String("product_id", item.ProductID),
				slog.String("error", err.Error()))
			allDecremented = false
			continue
		}
		updates = append(updates, model.ProductUpdate{
			ProductID:   item.ProductID,
			Name:        item.Name,
			NewQuantity: newQuantity,
			Category:    item.Category,
		})
	}

	if notifySellers && allDecremented && len(updates) > 0 {
		o.notifier.Notify(updates)
	}

	receipt := &model.OrderReceipt{
		OrderID: created.ID,
		Summary: Summarize(names),
		Date:    created.DeliveryDate.Format(deliveryDateLayout),
		Total:   total,
		Status:  string(created.State),
		Items:   make([]model.ReceiptItem, 0, len(validated)),
	}
	for _, item := range validated {
		receiptItem := model.ReceiptItem{
			Title:    item.Name,
			Quantity: item.QuantityOrdered,
			Price:    item.Amount,
			ImageURL: item.ImageURL,
		}
		if notifySellers {
			receiptItem.Description = item.Description
		}
		receipt.Items = append(receipt.Items, receiptItem)
	}

	return receipt, nil
}
