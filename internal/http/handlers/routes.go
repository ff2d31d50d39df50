package handlers

import (
	"net/http"

	"logistics-dashboard-service/internal/domain"
)

// RouteHandler serves HTTP endpoints for route resources. Path IDs are
// business keys (routeId).
type RouteHandler struct{ store routeStore }

// NewRouteHandler wires a route store into HTTP handlers.
func NewRouteHandler(store routeStore) *RouteHandler { return &RouteHandler{store: store} }

// List handles GET /routes with an optional ?status= filter.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.RouteStatus(s)
		if !status.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		writeJSON(w, r, http.StatusOK, h.store.ListRoutesByStatus(status))
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListRoutes())
}

// GetByRouteID handles GET /routes/{routeId}.
func (h *RouteHandler) GetByRouteID(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "routeId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid routeId")
		return
	}
	rt, ok := h.store.GetRouteByRouteID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	writeJSON(w, r, http.StatusOK, rt)
}

// ListByTruck handles GET /routes/by-truck/{truckId}.
func (h *RouteHandler) ListByTruck(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "truckId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid truckId")
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListRoutesByTruck(key))
}

// Create handles POST /routes.
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertRoute
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	if _, ok := h.store.GetRouteByRouteID(in.RouteID); ok {
		writeError(w, r, http.StatusConflict, "routeId already exists")
		return
	}
	rt := h.store.CreateRoute(in)
	w.Header().Set("Location", "/api/routes/"+rt.RouteID)
	writeJSON(w, r, http.StatusCreated, rt)
}

// Update handles PUT /routes/{routeId} with partial update semantics.
func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "routeId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid routeId")
		return
	}
	var u domain.PartialRouteUpdate
	if ok := decodeJSON(w, r, &u); !ok {
		return
	}
	if err := u.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	rt, ok := h.store.GetRouteByRouteID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	updated, ok := h.store.UpdateRoute(rt.ID, u)
	if !ok {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /routes/{routeId}.
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "routeId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid routeId")
		return
	}
	rt, ok := h.store.GetRouteByRouteID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	if !h.store.DeleteRoute(rt.ID) {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
