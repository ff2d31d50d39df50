package handlers

import (
	"net/http"

	"logistics-dashboard-service/internal/domain"
)

// TruckHandler serves HTTP endpoints for truck resources. Path IDs are
// business keys (truckId).
type TruckHandler struct{ store truckStore }

// NewTruckHandler wires a truck store into HTTP handlers.
func NewTruckHandler(store truckStore) *TruckHandler { return &TruckHandler{store: store} }

// List handles GET /trucks with an optional ?status= filter.
func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.TruckStatus(s)
		if !status.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		writeJSON(w, r, http.StatusOK, h.store.ListTrucksByStatus(status))
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListTrucks())
}

// GetByTruckID handles GET /trucks/{truckId}.
func (h *TruckHandler) GetByTruckID(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "truckId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid truckId")
		return
	}
	t, ok := h.store.GetTruckByTruckID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "truck not found")
		return
	}
	writeJSON(w, r, http.StatusOK, t)
}

// ListByDriver handles GET /trucks/by-driver/{driverId}.
func (h *TruckHandler) ListByDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromURL(r, "driverId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid driverId")
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListTrucksByDriver(driverID))
}

// Create handles POST /trucks.
func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertTruck
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	if _, ok := h.store.GetTruckByTruckID(in.TruckID); ok {
		writeError(w, r, http.StatusConflict, "truckId already exists")
		return
	}
	t := h.store.CreateTruck(in)
	w.Header().Set("Location", "/api/trucks/"+t.TruckID)
	writeJSON(w, r, http.StatusCreated, t)
}

// Update handles PUT /trucks/{truckId} with partial update semantics.
func (h *TruckHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "truckId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid truckId")
		return
	}
	var u domain.PartialTruckUpdate
	if ok := decodeJSON(w, r, &u); !ok {
		return
	}
	if err := u.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	t, ok := h.store.GetTruckByTruckID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "truck not found")
		return
	}
	updated, ok := h.store.UpdateTruck(t.ID, u)
	if !ok {
		writeError(w, r, http.StatusNotFound, "truck not found")
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /trucks/{truckId}. Packages and routes pointing at
// the truck keep their dangling reference.
func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "truckId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid truckId")
		return
	}
	t, ok := h.store.GetTruckByTruckID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "truck not found")
		return
	}
	if !h.store.DeleteTruck(t.ID) {
		writeError(w, r, http.StatusNotFound, "truck not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
