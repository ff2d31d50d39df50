package handlers

import (
	"net/http"

	"logistics-dashboard-service/internal/domain"
)

// InventoryHandler serves HTTP endpoints for inventory resources. Path IDs
// are business keys (itemId).
type InventoryHandler struct{ store inventoryStore }

// NewInventoryHandler wires an inventory store into HTTP handlers.
func NewInventoryHandler(store inventoryStore) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// List handles GET /inventory with optional ?status= and ?location=
// filters. When both are present the result is their intersection.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	statusParam := q.Get("status")
	location := q.Get("location")

	var items []domain.InventoryItem
	switch {
	case statusParam != "":
		status := domain.InventoryStatus(statusParam)
		if !status.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		items = h.store.ListInventoryByStatus(status)
		if location != "" {
			filtered := items[:0]
			for _, it := range items {
				if it.Location == location {
					filtered = append(filtered, it)
				}
			}
			items = filtered
		}
	case location != "":
		items = h.store.ListInventoryByLocation(location)
	default:
		items = h.store.ListInventory()
	}
	writeJSON(w, r, http.StatusOK, items)
}

// ListExpiring handles GET /inventory/expiring. Membership is driven purely
// by the stored status, never derived from expiryDate.
func (h *InventoryHandler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.store.ListExpiringInventory())
}

// GetByItemID handles GET /inventory/{itemId}.
func (h *InventoryHandler) GetByItemID(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "itemId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid itemId")
		return
	}
	it, ok := h.store.GetInventoryItemByItemID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "inventory item not found")
		return
	}
	writeJSON(w, r, http.StatusOK, it)
}

// Create handles POST /inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertInventoryItem
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	if _, ok := h.store.GetInventoryItemByItemID(in.ItemID); ok {
		writeError(w, r, http.StatusConflict, "itemId already exists")
		return
	}
	it := h.store.CreateInventoryItem(in)
	w.Header().Set("Location", "/api/inventory/"+it.ItemID)
	writeJSON(w, r, http.StatusCreated, it)
}

// Update handles PUT /inventory/{itemId} with partial update semantics.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "itemId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid itemId")
		return
	}
	var u domain.PartialInventoryUpdate
	if ok := decodeJSON(w, r, &u); !ok {
		return
	}
	if err := u.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	it, ok := h.store.GetInventoryItemByItemID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "inventory item not found")
		return
	}
	updated, ok := h.store.UpdateInventoryItem(it.ID, u)
	if !ok {
		writeError(w, r, http.StatusNotFound, "inventory item not found")
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /inventory/{itemId}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := keyFromURL(r, "itemId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid itemId")
		return
	}
	it, ok := h.store.GetInventoryItemByItemID(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "inventory item not found")
		return
	}
	if !h.store.DeleteInventoryItem(it.ID) {
		writeError(w, r, http.StatusNotFound, "inventory item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
