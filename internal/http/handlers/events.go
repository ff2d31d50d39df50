package handlers

import (
	"net/http"
	"strconv"
	"time"

	"logistics-dashboard-service/internal/domain"
)

// EventHandler serves HTTP endpoints for calendar events. Events use
// numeric path IDs, unlike the fleet resources.
type EventHandler struct{ store eventStore }

// NewEventHandler wires an event store into HTTP handlers.
func NewEventHandler(store eventStore) *EventHandler { return &EventHandler{store: store} }

// List handles GET /events with optional ?type= and ?relatedId= filters.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if s := q.Get("type"); s != "" {
		t := domain.EventType(s)
		if !t.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid type filter")
			return
		}
		writeJSON(w, r, http.StatusOK, h.store.ListEventsByType(t))
		return
	}
	if rel := q.Get("relatedId"); rel != "" {
		writeJSON(w, r, http.StatusOK, h.store.ListEventsByRelatedID(rel))
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListEvents())
}

// ListByDateRange handles GET /events/by-date?startDate=&endDate= with
// RFC 3339 timestamps. Both bounds are inclusive.
func (h *EventHandler) ListByDateRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := time.Parse(time.RFC3339, q.Get("startDate"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("endDate"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid endDate")
		return
	}
	if end.Before(start) {
		writeError(w, r, http.StatusBadRequest, "endDate before startDate")
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListEventsByDateRange(start, end))
}

// GetByID handles GET /events/{id}.
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	e, ok := h.store.GetEvent(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, r, http.StatusOK, e)
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertEvent
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	e := h.store.CreateEvent(in)
	w.Header().Set("Location", "/api/events/"+strconv.FormatInt(e.ID, 10))
	writeJSON(w, r, http.StatusCreated, e)
}

// Update handles PUT /events/{id} with partial update semantics.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var u domain.PartialEventUpdate
	if ok := decodeJSON(w, r, &u); !ok {
		return
	}
	if err := u.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	e, ok := h.store.UpdateEvent(id, u)
	if !ok {
		writeError(w, r, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, r, http.StatusOK, e)
}

// Delete handles DELETE /events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if !h.store.DeleteEvent(id) {
		writeError(w, r, http.StatusNotFound, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
