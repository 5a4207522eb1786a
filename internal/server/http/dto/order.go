package dto

import "time"

// OrderItemRequest is a single requested line item. Quantity is a
// pointer so a missing field can be told apart from zero.
type OrderItemRequest struct {
	ID       string `json:"id"`
	Quantity *int   `json:"quantity"`
}

// CreateOrderRequest is the body of both order creation endpoints.
// CustomerID is only honoured on the seller endpoint.
type CreateOrderRequest struct {
	Date       string             `json:"date"`
	CustomerID string             `json:"customer_id,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

// ReceiptItemResponse describes one line of an order receipt.
type ReceiptItemResponse struct {
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description,omitempty"`
}

// OrderReceiptResponse is the customer-facing order representation.
type OrderReceiptResponse struct {
	OrderID string                `json:"order_id"`
	Summary string                `json:"summary"`
	Date    string                `json:"date"`
	Total   float64               `json:"total"`
	Status  string                `json:"status"`
	Items   []ReceiptItemResponse `json:"items"`
}

// OrderLineItemResponse is a persisted line item as stored.
type OrderLineItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// OrderResponse is the raw order returned by the lookup endpoint.
type OrderResponse struct {
	ID           string                  `json:"id"`
	CustomerID   string                  `json:"customer_id"`
	SellerID     *string                 `json:"seller_id,omitempty"`
	State        string                  `json:"state"`
	TotalAmount  float64                 `json:"total_amount"`
	DeliveryDate string                  `json:"delivery_date"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Items        []OrderLineItemResponse `json:"items"`
}
