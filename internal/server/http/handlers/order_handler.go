package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feriago/orders/internal/domain/model"
	"github.com/feriago/orders/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade MarketFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade MarketFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders for customers ordering for themselves.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(http.StatusBadRequest, "the request body is not valid JSON"))
		return
	}

	identity := CurrentIdentity(c)
	receipt, err := h.facade.CreateOrder(c.Request.Context(), CurrentToken(c), identity.UserID, toNewOrder(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(http.StatusCreated, "order created", toReceiptResponse(receipt)))
}

// CreateAsSeller handles POST /orders/seller, where a seller places an
// order on behalf of a customer.
func (h *OrderHandler) CreateAsSeller(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(http.StatusBadRequest, "the request body is not valid JSON"))
		return
	}

	identity := CurrentIdentity(c)
	receipt, err := h.facade.CreateSellerOrder(c.Request.Context(), CurrentToken(c), identity.UserID, toNewOrder(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(http.StatusCreated, "order created", toReceiptResponse(receipt)))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "", toOrderResponse(order)))
}

// ListMine handles GET /orders/customer for the authenticated customer.
func (h *OrderHandler) ListMine(c *gin.Context) {
	identity := CurrentIdentity(c)
	h.listForCustomer(c, identity.UserID)
}

// ListForCustomer handles GET /orders/customer/:customer_id for sellers.
func (h *OrderHandler) ListForCustomer(c *gin.Context) {
	h.listForCustomer(c, c.Param("customer_id"))
}

func (h *OrderHandler) listForCustomer(c *gin.Context, customerID string) {
	receipts, err := h.facade.CustomerOrders(c.Request.Context(), CurrentToken(c), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderReceiptResponse, 0, len(receipts))
	for i := range receipts {
		response = append(response, toReceiptResponse(&receipts[i]))
	}
	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "", response))
}

// Ping handles GET /orders/ping.
func (h *OrderHandler) Ping(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusInternalServerError, "storage unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "pong", nil))
}

func toNewOrder(req dto.CreateOrderRequest) model.NewOrder {
	items := make([]model.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.NewOrderItem{ProductID: item.ID, Quantity: item.Quantity})
	}
	return model.NewOrder{Date: req.Date, CustomerID: req.CustomerID, Items: items}
}

func toReceiptResponse(receipt *model.OrderReceipt) dto.OrderReceiptResponse {
	items := make([]dto.ReceiptItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, dto.ReceiptItemResponse{
			Title:       item.Title,
			Quantity:    item.Quantity,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
			Description: item.Description,
		})
	}
	return dto.OrderReceiptResponse{
		OrderID: receipt.OrderID,
		Summary: receipt.Summary,
		Date:    receipt.Date,
		Total:   receipt.Total,
		Status:  receipt.Status,
		Items:   items,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderLineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderLineItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.QuantityOrdered,
			Amount:    item.Amount,
		})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		SellerID:     order.SellerID,
		State:        string(order.State),
		TotalAmount:  order.TotalAmount,
		DeliveryDate: order.DeliveryDate.Format("2006-01-02"),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		Items:        items,
	}
}
