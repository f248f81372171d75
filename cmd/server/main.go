package main

import (
	"go.uber.org/fx"

	"github.com/bitebranch/ordering/internal/components/auth"
	"github.com/bitebranch/ordering/internal/components/order"
	"github.com/bitebranch/ordering/internal/server"
	"github.com/bitebranch/ordering/internal/shared/config"
	"github.com/bitebranch/ordering/internal/shared/database"
	"github.com/bitebranch/ordering/internal/shared/logging"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			order.RatesFromConfig,
			auth.NewRepo,
			auth.NewService,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"authRouter"`)),
			order.NewRepo,
			order.NewService,
			fx.Annotate(order.NewRouter, fx.ResultTags(`name:"orderRouter"`)),
		),
		fx.Invoke((*server.Server).Start),
	).Run()
}
