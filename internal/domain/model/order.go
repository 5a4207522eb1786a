package model

import "time"

// OrderState describes the delivery lifecycle.
type OrderState string

const (
	OrderStatePreparing OrderState = "PREPARING"
	OrderStateOnRoute   OrderState = "ON_ROUTE"
	OrderStateDelivered OrderState = "DELIVERED"
)

// Order describes a purchase order placed for a customer, optionally on
// behalf of a seller.
type Order struct {
	ID           string
	CustomerID   string
	SellerID     *string
	State        OrderState
	TotalAmount  float64
	DeliveryDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []OrderLineItem
}

// OrderLineItem is one priced product position inside an order. Immutable
// after creation.
type OrderLineItem struct {
	ID              string
	OrderID         string
	ProductID       string
	QuantityOrdered int
	Amount          float64
}

// NewOrder is a creation request as accepted by the orchestrator.
type NewOrder struct {
	Date       string
	CustomerID string
	Items      []NewOrderItem
}

// NewOrderItem keeps Quantity a pointer so an absent field stays
// distinguishable from an explicit zero.
type NewOrderItem struct {
	ProductID string
	Quantity  *int
}

// OrderReceipt is the caller-facing summary of a created or listed order.
type OrderReceipt struct {
	OrderID string
	Summary string
	Date    string
	Total   float64
	Status  string
	Items   []ReceiptItem
}

// ReceiptItem is one order position enriched with catalog details.
// Description is populated only on the seller flow.
type ReceiptItem struct {
	Title       string
	Quantity    int
	Price       float64
	ImageURL    string
	Description string
}
