package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"logistics-dashboard-service/internal/http/handlers"
	"logistics-dashboard-service/internal/http/router"
	"logistics-dashboard-service/internal/logx"
	"logistics-dashboard-service/internal/storage"
)

func newTestHandler() http.Handler {
	store := storage.New()
	storage.SeedDemoData(store)

	return router.New(router.Deps{
		Logger:    logx.Nop(),
		Base:      handlers.New(logx.Nop()),
		Users:     handlers.NewUserHandler(store),
		Packages:  handlers.NewPackageHandler(store),
		Trucks:    handlers.NewTruckHandler(store),
		Inventory: handlers.NewInventoryHandler(store),
		Routes:    handlers.NewRouteHandler(store),
		Events:    handlers.NewEventHandler(store),
		Assistant: handlers.NewAssistantHandler(store, nil),
	})
}

func TestRouter_Smoke(t *testing.T) {
	t.Parallel()

	h := newTestHandler()

	cases := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodHead, "/healthcheck", http.StatusNoContent},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/users/1", http.StatusOK},
		{http.MethodGet, "/api/users/by-username/driver1", http.StatusOK},
		{http.MethodGet, "/api/packages", http.StatusOK},
		{http.MethodGet, "/api/packages/PKG-001", http.StatusOK},
		{http.MethodGet, "/api/packages/by-truck/TRUCK-001", http.StatusOK},
		{http.MethodGet, "/api/trucks", http.StatusOK},
		{http.MethodGet, "/api/trucks/TRUCK-002", http.StatusOK},
		{http.MethodGet, "/api/inventory", http.StatusOK},
		{http.MethodGet, "/api/inventory/expiring", http.StatusOK},
		{http.MethodGet, "/api/routes", http.StatusOK},
		{http.MethodGet, "/api/routes/ROUTE-001", http.StatusOK},
		{http.MethodGet, "/api/events", http.StatusOK},
		{http.MethodGet, "/api/events/1", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.target)
	}
}
