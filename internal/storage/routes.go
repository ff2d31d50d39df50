package storage

import (
	"slices"

	"logistics-dashboard-service/internal/domain"
)

// cloneRoute copies the stops slice so callers never alias stored state.
func cloneRoute(r domain.Route) domain.Route {
	r.Stops = slices.Clone(r.Stops)
	return r
}

// GetRoute returns a route by surrogate ID.
func (s *Store) GetRoute(id int64) (domain.Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.routes[id]
	if !ok {
		return domain.Route{}, false
	}
	return cloneRoute(r), true
}

// GetRouteByRouteID returns a route by its business key.
func (s *Store) GetRouteByRouteID(routeID string) (domain.Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routes {
		if r.RouteID == routeID {
			return cloneRoute(r), true
		}
	}
	return domain.Route{}, false
}

// ListRoutes returns all live routes, order not guaranteed.
func (s *Store) ListRoutes() []domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, cloneRoute(r))
	}
	return out
}

// ListRoutesByTruck returns routes whose assignedTruck equals truckID.
func (s *Store) ListRoutesByTruck(truckID string) []domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Route, 0)
	for _, r := range s.routes {
		if r.AssignedTruck != nil && *r.AssignedTruck == truckID {
			out = append(out, cloneRoute(r))
		}
	}
	return out
}

// ListRoutesByStatus returns routes with the given status.
func (s *Store) ListRoutesByStatus(status domain.RouteStatus) []domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Route, 0)
	for _, r := range s.routes {
		if r.Status == status {
			out = append(out, cloneRoute(r))
		}
	}
	return out
}

// CreateRoute assigns the next ID and stores the record. ActualDuration and
// EndTime start nil; completing a route is the caller's responsibility.
func (s *Store) CreateRoute(in domain.InsertRoute) domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routeSeq++
	r := domain.Route{
		ID:                s.routeSeq,
		RouteID:           in.RouteID,
		StartLocation:     in.StartLocation,
		EndLocation:       in.EndLocation,
		Stops:             slices.Clone(in.Stops),
		AssignedTruck:     in.AssignedTruck,
		Status:            in.Status,
		EstimatedDuration: in.EstimatedDuration,
		Distance:          in.Distance,
		StartTime:         in.StartTime,
		CreatedAt:         s.now(),
	}
	s.routes[r.ID] = r
	return cloneRoute(r)
}

// UpdateRoute merges set fields onto the existing record. The second return
// is false when the ID is absent.
func (s *Store) UpdateRoute(id int64, u domain.PartialRouteUpdate) (domain.Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.routes[id]
	if !ok {
		return domain.Route{}, false
	}
	if u.StartLocation != nil {
		r.StartLocation = *u.StartLocation
	}
	if u.EndLocation != nil {
		r.EndLocation = *u.EndLocation
	}
	if u.Stops != nil {
		r.Stops = slices.Clone(*u.Stops)
	}
	if u.AssignedTruck != nil {
		r.AssignedTruck = u.AssignedTruck
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.EstimatedDuration != nil {
		r.EstimatedDuration = u.EstimatedDuration
	}
	if u.ActualDuration != nil {
		r.ActualDuration = u.ActualDuration
	}
	if u.Distance != nil {
		r.Distance = u.Distance
	}
	if u.StartTime != nil {
		r.StartTime = u.StartTime
	}
	if u.EndTime != nil {
		r.EndTime = u.EndTime
	}
	s.routes[id] = r
	return cloneRoute(r), true
}

// DeleteRoute removes a route and reports whether it existed.
func (s *Store) DeleteRoute(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[id]; !ok {
		return false
	}
	delete(s.routes, id)
	return true
}
