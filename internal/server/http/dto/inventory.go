package dto

// ProductUpdateRequest is one product change in a seller-initiated
// inventory broadcast.
type ProductUpdateRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	NewQuantity int    `json:"new_quantity"`
	Category    string `json:"category"`
}

// InventoryFrame is an inbound websocket message from a seller.
type InventoryFrame struct {
	Type     string                 `json:"type"`
	Products []ProductUpdateRequest `json:"products"`
}
