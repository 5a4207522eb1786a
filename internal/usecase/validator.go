package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/feriago/orders/internal/adapter/catalog"
	domainErrors "github.com/feriago/orders/internal/domain/errors"
	"github.com/feriago/orders/internal/domain/model"
)

// CatalogGateway is the subset of catalog operations the use cases need.
type CatalogGateway interface {
	Product(ctx context.Context, token, id string) (*model.CatalogProduct, error)
	UpdateQuantity(ctx context.Context, token, id string, quantity int) error
}

// ValidatedItem is a requested line item enriched and priced against the
// catalog record it was validated with.
type ValidatedItem struct {
	ProductID       string
	Available       int // catalog stock before this order
	QuantityOrdered int
	Amount          float64
	UnitPrice       float64
	Name            string
	ImageURL        string
	Description     string
	Category        string
}

// OrderValidator validates and prices requested line items against the
// catalog.
type OrderValidator struct {
	catalog CatalogGateway
}

// NewOrderValidator constructs OrderValidator.
func NewOrderValidator(catalog CatalogGateway) *OrderValidator {
	return &OrderValidator{catalog: catalog}
}

// Validate checks every requested item against the catalog and returns the
// enriched items, the order total, and the collected product names. An
// empty input is not an error.
func (v *OrderValidator) Validate(ctx context.Context, token string, items []model.NewOrderItem) ([]ValidatedItem, float64, []string, error) {
	var total float64
	validated := make([]ValidatedItem, 0, len(items))
	names := make([]string, 0, len(items))

	for _, item := range items {
		if item.ProductID == "" || item.Quantity == nil {
			return nil, 0, nil, domainErrors.BadRequest("each item must include 'id' and 'quantity'")
		}
		if !IsUUID(item.ProductID) {
			return nil, 0, nil, domainErrors.BadRequest("the product id is not a valid identifier")
		}
		quantity := *item.Quantity
		if quantity <= 0 {
			return nil, 0, nil, domainErrors.BadRequest("the quantity must be a positive integer")
		}

		product, err := v.catalog.Product(ctx, token, item.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				return nil, 0, nil, domainErrors.NotFoundf("product with id %s not found", item.ProductID)
			}
			return nil, 0, nil, domainErrors.BadRequestf("could not fetch product %s from the catalog", item.ProductID)
		}

		if product.Quantity-quantity < 0 {
			return nil, 0, nil, domainErrors.BadRequestf("not enough stock for product %s", product.Name)
		}

		amount := product.UnitAmount * float64(quantity)
		total += amount

		validated = append(validated, ValidatedItem{
			ProductID:       item.ProductID,
			Available:       product.Quantity,
			QuantityOrdered: quantity,
			Amount:          amount,
			UnitPrice:       product.UnitAmount,
			Name:            product.Name,
			ImageURL:        product.ImageURL,
			Description:     product.Description,
			Category:        product.CategoryID,
		})

		if product.Name != "" {
			names = append(names, product.Name)
		}
	}

	return validated, total, names, nil
}

// Summarize joins the first three product names, appending an ellipsis when
// more exist.
func Summarize(names []string) string {
	if len(names) > 3 {
		return strings.Join(names[:3], ", ") + "..."
	}
	return strings.Join(names, ", ")
}

// IsUUID reports whether s is a syntactically valid v4 UUID.
func IsUUID(s string) bool {
	parsed, err := uuid.Parse(s)
	return err == nil && parsed.Version() == 4
}
