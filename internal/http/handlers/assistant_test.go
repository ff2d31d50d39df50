package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"logistics-dashboard-service/internal/apperr"
	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/storage"
)

type stubGateway struct {
	optimizeErr error
	organizeErr error
}

func (s *stubGateway) OptimizeRoutes(_ context.Context, routes []domain.Route) ([]domain.RouteSuggestion, error) {
	if s.optimizeErr != nil {
		return nil, s.optimizeErr
	}
	out := make([]domain.RouteSuggestion, 0, len(routes))
	for i, r := range routes {
		out = append(out, domain.RouteSuggestion{RouteID: r.RouteID, Position: i + 1})
	}
	return out, nil
}

func (s *stubGateway) OrganizeEmails(_ context.Context, emails []domain.Email) ([]domain.OrganizedEmail, error) {
	if s.organizeErr != nil {
		return nil, s.organizeErr
	}
	out := make([]domain.OrganizedEmail, 0, len(emails))
	for i := range emails {
		out = append(out, domain.OrganizedEmail{
			Index:    i,
			Category: domain.CategoryOther,
			Priority: domain.EmailPriorityLow,
		})
	}
	return out, nil
}

func newAssistantRouter(s *storage.Store, gw *stubGateway) http.Handler {
	h := NewAssistantHandler(s, gw)
	r := chi.NewRouter()
	r.Post("/routes/optimize", h.OptimizeRoutes)
	r.Post("/emails/organize", h.OrganizeEmails)
	return r
}

func seedRoute(s *storage.Store, routeID string) {
	_ = s.CreateRoute(domain.InsertRoute{
		RouteID:       routeID,
		StartLocation: "Hub",
		EndLocation:   "Mall",
		Status:        domain.RoutePlanned,
	})
}

func TestOptimizeRoutes_OK(t *testing.T) {
	t.Parallel()

	s := storage.New()
	seedRoute(s, "ROUTE-1")
	seedRoute(s, "ROUTE-2")
	r := newAssistantRouter(s, &stubGateway{})

	rec := doJSON(t, r, http.MethodPost, "/routes/optimize",
		`{"routeIds":["ROUTE-1","ROUTE-2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Suggestions []domain.RouteSuggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Suggestions, 2)
}

func TestOptimizeRoutes_UnknownRouteIs404(t *testing.T) {
	t.Parallel()

	s := storage.New()
	seedRoute(s, "ROUTE-1")
	r := newAssistantRouter(s, &stubGateway{})

	rec := doJSON(t, r, http.MethodPost, "/routes/optimize",
		`{"routeIds":["ROUTE-1","ROUTE-404"]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "ROUTE-404")
}

func TestOptimizeRoutes_EmptyInputIs400(t *testing.T) {
	t.Parallel()

	r := newAssistantRouter(storage.New(), &stubGateway{})

	rec := doJSON(t, r, http.MethodPost, "/routes/optimize", `{"routeIds":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/routes/optimize", `{"routeIds":["", "ROUTE-1"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimizeRoutes_GarbledOutputIs502(t *testing.T) {
	t.Parallel()

	s := storage.New()
	seedRoute(s, "ROUTE-1")
	r := newAssistantRouter(s, &stubGateway{
		optimizeErr: fmt.Errorf("no JSON array in assistant output: %w", apperr.ErrUnavailable),
	})

	rec := doJSON(t, r, http.MethodPost, "/routes/optimize", `{"routeIds":["ROUTE-1"]}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestOptimizeRoutes_TimeoutIs504(t *testing.T) {
	t.Parallel()

	s := storage.New()
	seedRoute(s, "ROUTE-1")
	r := newAssistantRouter(s, &stubGateway{optimizeErr: context.DeadlineExceeded})

	rec := doJSON(t, r, http.MethodPost, "/routes/optimize", `{"routeIds":["ROUTE-1"]}`)
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestOrganizeEmails_OK(t *testing.T) {
	t.Parallel()

	r := newAssistantRouter(storage.New(), &stubGateway{})

	rec := doJSON(t, r, http.MethodPost, "/emails/organize",
		`{"emails":[{"subject":"PKG-001 delivered","content":"Confirmed at 10:00","sender":"ops@fleet.example","date":"2025-03-01"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Organized []domain.OrganizedEmail `json:"organized"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Organized, 1)
	require.Equal(t, domain.CategoryOther, body.Organized[0].Category)
}

func TestOrganizeEmails_FieldErrorsCarryIndex(t *testing.T) {
	t.Parallel()

	r := newAssistantRouter(storage.New(), &stubGateway{})

	rec := doJSON(t, r, http.MethodPost, "/emails/organize",
		`{"emails":[{"subject":"ok","content":"ok","sender":"a@b"},{"subject":"","content":"","sender":""}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "emails[1].subject")
}

func TestOrganizeEmails_EmptyListIs400(t *testing.T) {
	t.Parallel()

	r := newAssistantRouter(storage.New(), &stubGateway{})
	rec := doJSON(t, r, http.MethodPost, "/emails/organize", `{"emails":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
