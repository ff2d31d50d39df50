package storage

import (
	"time"

	"logistics-dashboard-service/internal/domain"
)

// GetEvent returns an event by surrogate ID.
func (s *Store) GetEvent(id int64) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	return e, ok
}

// ListEvents returns all live events, order not guaranteed.
func (s *Store) ListEvents() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out
}

// ListEventsByType returns events of the given type.
func (s *Store) ListEventsByType(t domain.EventType) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// ListEventsByRelatedID returns events referencing the given business key.
func (s *Store) ListEventsByRelatedID(relatedID string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.RelatedID != nil && *e.RelatedID == relatedID {
			out = append(out, e)
		}
	}
	return out
}

// ListEventsByDateRange returns events with start >= rangeStart and
// end <= rangeEnd. Both bounds are inclusive.
func (s *Store) ListEventsByDateRange(rangeStart, rangeEnd time.Time) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if !e.Start.Before(rangeStart) && !e.End.After(rangeEnd) {
			out = append(out, e)
		}
	}
	return out
}

// CreateEvent assigns the next ID and stores the record.
func (s *Store) CreateEvent(in domain.InsertEvent) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventSeq++
	allDay := false
	if in.AllDay != nil {
		allDay = *in.AllDay
	}
	e := domain.Event{
		ID:          s.eventSeq,
		Title:       in.Title,
		Description: in.Description,
		Start:       *in.Start,
		End:         *in.End,
		AllDay:      allDay,
		Type:        in.Type,
		RelatedID:   in.RelatedID,
	}
	s.events[e.ID] = e
	return e
}

// UpdateEvent merges set fields onto the existing record. The second return
// is false when the ID is absent.
func (s *Store) UpdateEvent(id int64, u domain.PartialEventUpdate) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return domain.Event{}, false
	}
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = u.Description
	}
	if u.Start != nil {
		e.Start = *u.Start
	}
	if u.End != nil {
		e.End = *u.End
	}
	if u.AllDay != nil {
		e.AllDay = *u.AllDay
	}
	if u.Type != nil {
		e.Type = *u.Type
	}
	if u.RelatedID != nil {
		e.RelatedID = u.RelatedID
	}
	s.events[id] = e
	return e, true
}

// DeleteEvent removes an event and reports whether it existed.
func (s *Store) DeleteEvent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	return true
}
