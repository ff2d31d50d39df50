// Package app builds and runs the service: DI container, logger, stats
// worker and graceful shutdown.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"logistics-dashboard-service/internal/config"
	"logistics-dashboard-service/internal/http/handlers"
	"logistics-dashboard-service/internal/http/middleware/ratelimit"
	"logistics-dashboard-service/internal/http/pprofserver"
	"logistics-dashboard-service/internal/http/router"
	"logistics-dashboard-service/internal/logx"
	"logistics-dashboard-service/internal/storage"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{logFatalf: log.Fatalf}
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerAssistant(container); err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		provideMetrics,
	)
}

func registerStore(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) *storage.Store {
			s := storage.New()
			if cfg.SeedDemo {
				storage.SeedDemoData(s)
				logger.Info("demo data seeded")
			}
			return s
		},
		func(s *storage.Store, m metricsBundle, logger logx.Logger, cfg *config.Config) *StatsWorker {
			return NewStatsWorker(s, m.EntityCounts, logger, cfg.Stats.Interval)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      90 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	pprofProvider := func(cfg *config.Config) pprofServerOut {
		if !cfg.Pprof.Enabled {
			return pprofServerOut{}
		}
		return pprofServerOut{Server: &http.Server{
			Addr: cfg.Pprof.Addr,
			Handler: pprofserver.Handler(pprofserver.Config{
				User: cfg.Pprof.User,
				Pass: cfg.Pprof.Pass,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}}
	}
	return provideAll(container,
		handlers.New,
		func(s *storage.Store) *handlers.UserHandler { return handlers.NewUserHandler(s) },
		func(s *storage.Store) *handlers.PackageHandler { return handlers.NewPackageHandler(s) },
		func(s *storage.Store) *handlers.TruckHandler { return handlers.NewTruckHandler(s) },
		func(s *storage.Store) *handlers.InventoryHandler { return handlers.NewInventoryHandler(s) },
		func(s *storage.Store) *handlers.RouteHandler { return handlers.NewRouteHandler(s) },
		func(s *storage.Store) *handlers.EventHandler { return handlers.NewEventHandler(s) },
		newAssistantHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		pprofProvider,
	)
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

type routerIn struct {
	dig.In

	Logger    logx.Logger
	Base      *handlers.Handlers
	Users     *handlers.UserHandler
	Packages  *handlers.PackageHandler
	Trucks    *handlers.TruckHandler
	Inventory *handlers.InventoryHandler
	Routes    *handlers.RouteHandler
	Events    *handlers.EventHandler
	Assistant *handlers.AssistantHandler
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:    in.Logger,
		Base:      in.Base,
		Users:     in.Users,
		Packages:  in.Packages,
		Trucks:    in.Trucks,
		Inventory: in.Inventory,
		Routes:    in.Routes,
		Events:    in.Events,
		Assistant: in.Assistant,
		RateLimit: in.RateLimit,
	})
}
