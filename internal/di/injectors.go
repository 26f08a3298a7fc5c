//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"newsd/internal"
	"newsd/internal/controllers"
	"newsd/internal/monitor"
	"newsd/internal/providers"
	"newsd/internal/publish"
	"newsd/internal/render"
	"newsd/internal/services"
	"newsd/internal/store"
	"newsd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,
		providers.NewSessionProvider,

		store.NewCardStore,
		store.NewVisitorStore,
		services.NewCardService,
		services.NewVisitorService,
		services.NewChatService,
		render.NewRenderer,
		publish.NewGitDriver,
		publish.NewPublisher,
		monitor.NewScheduler,

		controllers.NewCardController,
		controllers.NewVisitController,
		controllers.NewAuthController,
		controllers.NewChatController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
