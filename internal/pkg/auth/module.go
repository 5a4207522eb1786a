package auth

import (
	"go.uber.org/fx"

	"github.com/feriago/orders/internal/config"
)

// Module provides identity-check primitives via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.AuthSecret, Options{})
}
