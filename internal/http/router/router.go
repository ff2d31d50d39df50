// Package router wires every endpoint of the dashboard API into one
// chi handler.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"logistics-dashboard-service/internal/http/handlers"
	"logistics-dashboard-service/internal/http/middleware"
	"logistics-dashboard-service/internal/http/middleware/ratelimit"
	"logistics-dashboard-service/internal/logx"
)

// Deps carries everything the router mounts.
type Deps struct {
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

// New constructs the chi-based http.Handler with base middleware and all
// resource routes under /api. The assistant endpoints get a longer timeout
// than the storage-only ones.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger))
	r.Use(chimw.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Route("/api", func(api chi.Router) {
		api.Group(func(g chi.Router) {
			g.Use(chimw.Timeout(5 * time.Second))

			g.Get("/users/{id}", d.Users.GetByID)
			g.Get("/users/by-username/{username}", d.Users.GetByUsername)
			g.Post("/users", d.Users.Create)

			g.Get("/packages", d.Packages.List)
			g.Post("/packages", d.Packages.Create)
			g.Get("/packages/by-truck/{truckId}", d.Packages.ListByTruck)
			g.Get("/packages/{packageId}", d.Packages.GetByPackageID)
			g.Put("/packages/{packageId}", d.Packages.Update)
			g.Delete("/packages/{packageId}", d.Packages.Delete)

			g.Get("/trucks", d.Trucks.List)
			g.Post("/trucks", d.Trucks.Create)
			g.Get("/trucks/by-driver/{driverId}", d.Trucks.ListByDriver)
			g.Get("/trucks/{truckId}", d.Trucks.GetByTruckID)
			g.Put("/trucks/{truckId}", d.Trucks.Update)
			g.Delete("/trucks/{truckId}", d.Trucks.Delete)

			g.Get("/inventory", d.Inventory.List)
			g.Post("/inventory", d.Inventory.Create)
			g.Get("/inventory/expiring", d.Inventory.ListExpiring)
			g.Get("/inventory/{itemId}", d.Inventory.GetByItemID)
			g.Put("/inventory/{itemId}", d.Inventory.Update)
			g.Delete("/inventory/{itemId}", d.Inventory.Delete)

			g.Get("/routes", d.Routes.List)
			g.Post("/routes", d.Routes.Create)
			g.Get("/routes/by-truck/{truckId}", d.Routes.ListByTruck)
			g.Get("/routes/{routeId}", d.Routes.GetByRouteID)
			g.Put("/routes/{routeId}", d.Routes.Update)
			g.Delete("/routes/{routeId}", d.Routes.Delete)

			g.Get("/events", d.Events.List)
			g.Post("/events", d.Events.Create)
			g.Get("/events/by-date", d.Events.ListByDateRange)
			g.Get("/events/{id}", d.Events.GetByID)
			g.Put("/events/{id}", d.Events.Update)
			g.Delete("/events/{id}", d.Events.Delete)
		})

		api.Group(func(g chi.Router) {
			g.Use(chimw.Timeout(60 * time.Second))

			g.Post("/routes/optimize", d.Assistant.OptimizeRoutes)
			g.Post("/emails/organize", d.Assistant.OrganizeEmails)
		})
	})

	return r
}
