package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/feriago/orders/internal/domain/model"
	"github.com/feriago/orders/internal/notifier"
	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/server/http/dto"
)

// InventoryHub is the session registry the websocket endpoint feeds.
type InventoryHub interface {
	Register(sellerID string, conn notifier.Conn)
	Unregister(sellerID string)
	NotifyFrom(origin string, updates []model.ProductUpdate)
}

// InventoryHandler upgrades seller connections and relays their
// inventory broadcasts.
type InventoryHandler struct {
	facade   AuthFacade
	hub      InventoryHub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(facade AuthFacade, hub InventoryHub, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		facade: facade,
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws/inventory. Browsers cannot set headers on
// websocket handshakes, so the token is also accepted as a query
// parameter.
func (h *InventoryHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if header := c.GetHeader("Authorization"); strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[7:])
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "authorization required"))
		return
	}

	identity, err := h.facade.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "the token is invalid or expired"))
		return
	}
	if identity.Role != pkgAuth.RoleSeller {
		c.JSON(http.StatusForbidden, dto.Failure(http.StatusForbidden, "only sellers receive inventory updates"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	h.hub.Register(identity.UserID, conn)
	go h.readLoop(identity.UserID, conn)
}

// readLoop relays seller-initiated broadcasts until the connection
// drops, then removes the session.
func (h *InventoryHandler) readLoop(sellerID string, conn *websocket.Conn) {
	defer h.hub.Unregister(sellerID)

	for {
		var frame dto.InventoryFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if frame.Type != "update_inventory" || len(frame.Products) == 0 {
			continue
		}

		updates := make([]model.ProductUpdate, 0, len(frame.Products))
		for _, p := range frame.Products {
			updates = append(updates, model.ProductUpdate{
				ProductID:   p.ProductID,
				Name:        p.Name,
				NewQuantity: p.NewQuantity,
				Category:    p.Category,
			})
		}
		h.hub.NotifyFrom(sellerID, updates)
	}
}
