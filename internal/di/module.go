package di

import (
	"go.uber.org/fx"

	"github.com/feriago/orders/internal/adapter/catalog"
	"github.com/feriago/orders/internal/app"
	"github.com/feriago/orders/internal/config"
	"github.com/feriago/orders/internal/logger"
	"github.com/feriago/orders/internal/notifier"
	"github.com/feriago/orders/internal/pkg/auth"
	"github.com/feriago/orders/internal/server/http/handlers"
	"github.com/feriago/orders/internal/server/http/router"
	"github.com/feriago/orders/internal/storage/postgres"
	"github.com/feriago/orders/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		catalog.Module,
		notifier.Module,
		usecase.Module,
		fx.Provide(
			func(client catalog.Client) usecase.CatalogGateway { return client },
			func(hub *notifier.Hub) usecase.InventoryNotifier { return hub },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(facade *app.MarketFacade) handlers.MarketFacade { return facade },
			func(hub *notifier.Hub) handlers.InventoryHub { return hub },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
