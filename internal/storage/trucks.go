package storage

import "logistics-dashboard-service/internal/domain"

// GetTruck returns a truck by surrogate ID.
func (s *Store) GetTruck(id int64) (domain.Truck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trucks[id]
	return t, ok
}

// GetTruckByTruckID returns a truck by its business key.
func (s *Store) GetTruckByTruckID(truckID string) (domain.Truck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trucks {
		if t.TruckID == truckID {
			return t, true
		}
	}
	return domain.Truck{}, false
}

// ListTrucks returns all live trucks, order not guaranteed.
func (s *Store) ListTrucks() []domain.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		out = append(out, t)
	}
	return out
}

// ListTrucksByStatus returns trucks with the given status.
func (s *Store) ListTrucksByStatus(status domain.TruckStatus) []domain.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Truck, 0)
	for _, t := range s.trucks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// ListTrucksByDriver returns trucks whose assignedDriver equals driverID.
func (s *Store) ListTrucksByDriver(driverID int64) []domain.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Truck, 0)
	for _, t := range s.trucks {
		if t.AssignedDriver != nil && *t.AssignedDriver == driverID {
			out = append(out, t)
		}
	}
	return out
}

// CreateTruck assigns the next ID, stamps lastMaintenance, and stores the
// record.
func (s *Store) CreateTruck(in domain.InsertTruck) domain.Truck {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.truckSeq++
	now := s.now()
	t := domain.Truck{
		ID:              s.truckSeq,
		TruckID:         in.TruckID,
		Model:           in.Model,
		License:         in.License,
		Status:          in.Status,
		AssignedDriver:  in.AssignedDriver,
		Capacity:        in.Capacity,
		CurrentCapacity: in.CurrentCapacity,
		LastMaintenance: &now,
	}
	s.trucks[t.ID] = t
	return t
}

// UpdateTruck merges set fields onto the existing record. The second return
// is false when the ID is absent.
func (s *Store) UpdateTruck(id int64, u domain.PartialTruckUpdate) (domain.Truck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trucks[id]
	if !ok {
		return domain.Truck{}, false
	}
	if u.Model != nil {
		t.Model = u.Model
	}
	if u.License != nil {
		t.License = u.License
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.AssignedDriver != nil {
		t.AssignedDriver = u.AssignedDriver
	}
	if u.Capacity != nil {
		t.Capacity = u.Capacity
	}
	if u.CurrentCapacity != nil {
		t.CurrentCapacity = u.CurrentCapacity
	}
	if u.LastMaintenance != nil {
		t.LastMaintenance = u.LastMaintenance
	}
	s.trucks[id] = t
	return t, true
}

// DeleteTruck removes a truck and reports whether it existed. Packages and
// routes referencing its truckId keep their dangling reference.
func (s *Store) DeleteTruck(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trucks[id]; !ok {
		return false
	}
	delete(s.trucks, id)
	return true
}
