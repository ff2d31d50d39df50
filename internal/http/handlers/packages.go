package handlers

import (
	"net/http"

	"logistics-dashboard-service/internal/domain"
)

// PackageHandler serves HTTP endpoints for package resources. Path IDs are
// business keys (packageId), not surrogate IDs.
type PackageHandler struct{ store packageStore }

// NewPackageHandler wires a package store into HTTP handlers.
func NewPackageHandler(store packageStore) *PackageHandler {
	return &PackageHandler{store: store}
}

// List handles GET /packages with an optional ?status= filter.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.PackageStatus(s)
		if !status.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		writeJSON(w, r, http.StatusOK, h.store.ListPackagesByStatus(status))
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListPackages())
}

// GetByPackageID handles GET /packages/{packageId}.
func (h *PackageHandler) GetByPackageID(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "packageId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid packageId")
		return
	}
	p, ok := h.store.GetPackageByPackageID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// ListByTruck handles GET /packages/by-truck/{truckId}.
func (h *PackageHandler) ListByTruck(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "truckId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid truckId")
		return
	}
	writeJSON(w, r, http.StatusOK, h.store.ListPackagesByTruck(key))
}

// Create handles POST /packages.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertPackage
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	if _, ok := h.store.GetPackageByPackageID(in.PackageID); ok {
		writeError(w, r, http.StatusConflict, "packageId already exists")
		return
	}
	p := h.store.CreatePackage(in)
	w.Header().Set("Location", "/api/packages/"+p.PackageID)
	writeJSON(w, r, http.StatusCreated, p)
}

// Update handles PUT /packages/{packageId} with partial update semantics.
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "packageId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid packageId")
		return
	}
	var u domain.PartialPackageUpdate
	if ok := decodeJSON(w, r, &u); !ok {
		return
	}
	if err := u.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	p, ok := h.store.GetPackageByPackageID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	}
	updated, ok := h.store.UpdatePackage(p.ID, u)
	if !ok {
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /packages/{packageId}.
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "packageId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid packageId")
		return
	}
	p, ok := h.store.GetPackageByPackageID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	}
	if !h.store.DeletePackage(p.ID) {
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
