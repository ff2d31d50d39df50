package storage

import "logistics-dashboard-service/internal/domain"

// GetPackage returns a package by surrogate ID.
func (s *Store) GetPackage(id int64) (domain.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.packages[id]
	return p, ok
}

// GetPackageByPackageID returns a package by its business key.
func (s *Store) GetPackageByPackageID(packageID string) (domain.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.packages {
		if p.PackageID == packageID {
			return p, true
		}
	}
	return domain.Package{}, false
}

// ListPackages returns all live packages, order not guaranteed.
func (s *Store) ListPackages() []domain.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Package, 0, len(s.packages))
	for _, p := range s.packages {
		out = append(out, p)
	}
	return out
}

// ListPackagesByTruck returns packages whose assignedTruck equals truckID.
// An identifier with zero matches yields an empty slice, not an error.
func (s *Store) ListPackagesByTruck(truckID string) []domain.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Package, 0)
	for _, p := range s.packages {
		if p.AssignedTruck != nil && *p.AssignedTruck == truckID {
			out = append(out, p)
		}
	}
	return out
}

// ListPackagesByStatus returns packages with the given status.
func (s *Store) ListPackagesByStatus(status domain.PackageStatus) []domain.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Package, 0)
	for _, p := range s.packages {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// CreatePackage assigns the next ID, stamps createdAt and updatedAt, and
// stores the record.
func (s *Store) CreatePackage(in domain.InsertPackage) domain.Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packageSeq++
	now := s.now()
	p := domain.Package{
		ID:            s.packageSeq,
		PackageID:     in.PackageID,
		Description:   in.Description,
		Destination:   in.Destination,
		Status:        in.Status,
		Priority:      in.Priority,
		AssignedTruck: in.AssignedTruck,
		StopNumber:    in.StopNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.packages[p.ID] = p
	return p
}

// UpdatePackage merges set fields onto the existing record and re-stamps
// updatedAt. The second return is false when the ID is absent.
func (s *Store) UpdatePackage(id int64, u domain.PartialPackageUpdate) (domain.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packages[id]
	if !ok {
		return domain.Package{}, false
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Destination != nil {
		p.Destination = *u.Destination
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Priority != nil {
		p.Priority = *u.Priority
	}
	if u.AssignedTruck != nil {
		p.AssignedTruck = u.AssignedTruck
	}
	if u.StopNumber != nil {
		p.StopNumber = u.StopNumber
	}
	p.UpdatedAt = s.now()
	s.packages[id] = p
	return p, true
}

// DeletePackage removes a package and reports whether it existed.
func (s *Store) DeletePackage(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.packages[id]; !ok {
		return false
	}
	delete(s.packages, id)
	return true
}
