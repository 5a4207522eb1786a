package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/feriago/orders/internal/config"
)

type hubParams struct {
	fx.In
	Config *config.Config
	Logger *slog.Logger
}

func newHub(p hubParams) *Hub {
	return NewHub(p.Config.NotifyQueueSize, p.Logger)
}

var Module = fx.Provide(newHub)
