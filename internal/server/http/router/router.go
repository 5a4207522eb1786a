package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/server/http/handlers"
	"github.com/feriago/orders/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, hub handlers.InventoryHub, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	inventoryHandler := handlers.NewInventoryHandler(facade, hub, logger)

	engine.GET("/orders/ping", orderHandler.Ping)

	// The websocket handshake authenticates via query parameter, so the
	// endpoint stays outside the auth middleware.
	engine.GET("/ws/inventory", inventoryHandler.Serve)

	orders := engine.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))

	customer := orders.Group("")
	customer.Use(middleware.RequireRole(pkgAuth.RoleCustomer))
	customer.POST("", orderHandler.Create)
	customer.GET("/customer", orderHandler.ListMine)

	seller := orders.Group("")
	seller.Use(middleware.RequireRole(pkgAuth.RoleSeller))
	seller.POST("/seller", orderHandler.CreateAsSeller)
	seller.GET("/customer/:customer_id", orderHandler.ListForCustomer)

	orders.GET("/:id", orderHandler.Get)

	return engine
}
