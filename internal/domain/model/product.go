package model

// CatalogProduct mirrors the product record served by the catalog system.
type CatalogProduct struct {
	ID          string
	Name        string
	Quantity    int
	UnitAmount  float64
	ImageURL    string
	Description string
	CategoryID  string
}

// ProductUpdate is the transient inventory-change payload broadcast to
// connected sellers. Not persisted.
type ProductUpdate struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	NewQuantity int    `json:"new_quantity"`
	Category    string `json:"category"`
}
