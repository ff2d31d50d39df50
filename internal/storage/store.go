// Package storage implements the in-memory storage engine behind the
// resource API: six collections keyed by surrogate ID with a monotonic
// counter per entity type. Records live only as long as the process.
//
// The engine never reports absence through errors; reads, updates and
// deletes signal a missing ID via their boolean return. Validation and
// business-key uniqueness are the API layer's job.
package storage

import (
	"sync"
	"time"

	"logistics-dashboard-service/internal/domain"
)

// Store owns the six entity collections. All access goes through one
// RWMutex; a record mutation is last-write-wins, there is no cross-entity
// transactionality.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users     map[int64]domain.User
	packages  map[int64]domain.Package
	trucks    map[int64]domain.Truck
	inventory map[int64]domain.InventoryItem
	routes    map[int64]domain.Route
	events    map[int64]domain.Event

	userSeq      int64
	packageSeq   int64
	truckSeq     int64
	inventorySeq int64
	routeSeq     int64
	eventSeq     int64
}

// New creates an empty store stamping records with time.Now.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty store with an injected clock.
func NewWithClock(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:       now,
		users:     make(map[int64]domain.User),
		packages:  make(map[int64]domain.Package),
		trucks:    make(map[int64]domain.Truck),
		inventory: make(map[int64]domain.InventoryItem),
		routes:    make(map[int64]domain.Route),
		events:    make(map[int64]domain.Event),
	}
}

// Counts reports the number of live records per entity type.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":     len(s.users),
		"packages":  len(s.packages),
		"trucks":    len(s.trucks),
		"inventory": len(s.inventory),
		"routes":    len(s.routes),
		"events":    len(s.events),
	}
}
