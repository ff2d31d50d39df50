package storage

import "logistics-dashboard-service/internal/domain"

// GetInventoryItem returns an inventory item by surrogate ID.
func (s *Store) GetInventoryItem(id int64) (domain.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.inventory[id]
	return it, ok
}

// GetInventoryItemByItemID returns an inventory item by its business key.
func (s *Store) GetInventoryItemByItemID(itemID string) (domain.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.inventory {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return domain.InventoryItem{}, false
}

// ListInventory returns all live inventory items, order not guaranteed.
func (s *Store) ListInventory() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryItem, 0, len(s.inventory))
	for _, it := range s.inventory {
		out = append(out, it)
	}
	return out
}

// ListInventoryByLocation returns items stored at the given location.
func (s *Store) ListInventoryByLocation(location string) []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryItem, 0)
	for _, it := range s.inventory {
		if it.Location == location {
			out = append(out, it)
		}
	}
	return out
}

// ListInventoryByStatus returns items with the given status.
func (s *Store) ListInventoryByStatus(status domain.InventoryStatus) []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryItem, 0)
	for _, it := range s.inventory {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

// ListExpiringInventory returns items whose status is expiring_soon. The
// status is caller-set; the store does not recompute it from expiryDate.
func (s *Store) ListExpiringInventory() []domain.InventoryItem {
	return s.ListInventoryByStatus(domain.InventoryExpiringSoon)
}

// CreateInventoryItem assigns the next ID, stamps createdAt and updatedAt,
// and stores the record.
func (s *Store) CreateInventoryItem(in domain.InsertInventoryItem) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventorySeq++
	now := s.now()
	qty := 0
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	it := domain.InventoryItem{
		ID:         s.inventorySeq,
		ItemID:     in.ItemID,
		Name:       in.Name,
		Category:   in.Category,
		Quantity:   qty,
		Location:   in.Location,
		Status:     in.Status,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.inventory[it.ID] = it
	return it
}

// UpdateInventoryItem merges set fields onto the existing record and
// re-stamps updatedAt. The second return is false when the ID is absent.
func (s *Store) UpdateInventoryItem(id int64, u domain.PartialInventoryUpdate) (domain.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.inventory[id]
	if !ok {
		return domain.InventoryItem{}, false
	}
	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.Category != nil {
		it.Category = *u.Category
	}
	if u.Quantity != nil {
		it.Quantity = *u.Quantity
	}
	if u.Location != nil {
		it.Location = *u.Location
	}
	if u.Status != nil {
		it.Status = *u.Status
	}
	if u.ExpiryDate != nil {
		it.ExpiryDate = u.ExpiryDate
	}
	it.UpdatedAt = s.now()
	s.inventory[id] = it
	return it, true
}

// DeleteInventoryItem removes an item and reports whether it existed.
func (s *Store) DeleteInventoryItem(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[id]; !ok {
		return false
	}
	delete(s.inventory, id)
	return true
}
