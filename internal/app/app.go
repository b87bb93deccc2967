// Package app assembles the dependency graph shared by the CLI and the HTTP server.
package app

import (
	"context"
	"log/slog"

	"addressconv/config"
	"addressconv/internal/delivery"
	"addressconv/internal/delivery/http"
	"addressconv/internal/delivery/http/middleware"
	"addressconv/internal/delivery/http/router/handler"
	"addressconv/internal/domain/repository"
	logs "addressconv/internal/infra/log"
	"addressconv/internal/infra/persistence/database"
	"addressconv/internal/infra/persistence/jsonfile"
	"addressconv/internal/infra/persistence/memory"
	"addressconv/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the address repository, injected by Fx.
type RepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// Module provides configuration, logging, storage and the address use cases.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		injectInfra(cfg),
		injectRepo(),
		injectUsecase(),
	)
}

// ServerModule adds the HTTP API on top of Module and starts it with the app.
func ServerModule() fx.Option {
	return fx.Options(
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(startServer),
	)
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(logs.New),
	)
}

func injectRepo() fx.Option {
	return fx.Provide(NewAddressRepository)
}

func injectUsecase() fx.Option {
	return fx.Provide(impl.NewAddressService)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewErrorMiddleware,
		middleware.NewLoggerMiddleware,
		middleware.NewRequestIDMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(handler.NewAddressHandler)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// NewAddressRepository selects the storage backend named by storage.driver.
func NewAddressRepository(params RepositoryParams) (repository.AddressRepository, error) {
	storage := params.Config.Storage

	switch storage.Driver {
	case config.DriverJSON, "":
		params.Logger.Debug("using JSON file storage", slog.String("dir", storage.Dir))

		return jsonfile.NewAddressRepository(storage.Dir)
	case config.DriverMemory:
		return memory.NewAddressRepository(), nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.New(database.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return database.NewAddressRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", storage.Driver)
	}
}

func startServer(params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(context.Background()); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
