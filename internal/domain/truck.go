package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

// TruckStatus represents the operational status of a truck.
type TruckStatus string

// List of possible truck statuses.
const (
	TruckAvailable   TruckStatus = "available"
	TruckInTransit   TruckStatus = "in_transit"
	TruckMaintenance TruckStatus = "maintenance"
)

var allowedTruckStatuses = [...]TruckStatus{
	TruckAvailable, TruckInTransit, TruckMaintenance,
}

// Valid checks if the TruckStatus is valid.
func (s TruckStatus) Valid() bool {
	for _, v := range allowedTruckStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Truck represents a fleet truck. AssignedDriver is a weak reference to
// User.ID; no existence check is performed.
type Truck struct {
	ID              int64       `json:"id"`
	TruckID         string      `json:"truckId"`
	Model           *string     `json:"model,omitempty"`
	License         *string     `json:"license,omitempty"`
	Status          TruckStatus `json:"status"`
	AssignedDriver  *int64      `json:"assignedDriver,omitempty"`
	Capacity        *int        `json:"capacity,omitempty"`
	CurrentCapacity *int        `json:"currentCapacity,omitempty"`
	LastMaintenance *time.Time  `json:"lastMaintenance,omitempty"`
}

// InsertTruck is the subset of Truck accepted on creation. LastMaintenance
// is stamped by the store.
type InsertTruck struct {
	TruckID         string      `json:"truckId"`
	Model           *string     `json:"model,omitempty"`
	License         *string     `json:"license,omitempty"`
	Status          TruckStatus `json:"status"`
	AssignedDriver  *int64      `json:"assignedDriver,omitempty"`
	Capacity        *int        `json:"capacity,omitempty"`
	CurrentCapacity *int        `json:"currentCapacity,omitempty"`
}

// PartialTruckUpdate carries optional fields to update a truck.
// A nil field means "do not change" that attribute.
type PartialTruckUpdate struct {
	Model           *string      `json:"model,omitempty"`
	License         *string      `json:"license,omitempty"`
	Status          *TruckStatus `json:"status,omitempty"`
	AssignedDriver  *int64       `json:"assignedDriver,omitempty"`
	Capacity        *int         `json:"capacity,omitempty"`
	CurrentCapacity *int         `json:"currentCapacity,omitempty"`
	LastMaintenance *time.Time   `json:"lastMaintenance,omitempty"`
}

// Validate checks the insertable payload. An empty status defaults to
// available.
func (in *InsertTruck) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.TruckID) == "" {
		verr.Add("truckId", "required")
	}
	if in.Status == "" {
		in.Status = TruckAvailable
	} else if !in.Status.Valid() {
		verr.Add("status", "must be one of: available, in_transit, maintenance")
	}
	if in.Capacity != nil && *in.Capacity < 0 {
		verr.Add("capacity", "must not be negative")
	}
	if in.CurrentCapacity != nil && *in.CurrentCapacity < 0 {
		verr.Add("currentCapacity", "must not be negative")
	}
	return verr.Err()
}

// Validate checks that every set field carries an acceptable value and that
// at least one field is set.
func (u *PartialTruckUpdate) Validate() error {
	var verr apperr.ValidationError
	if u.Model == nil && u.License == nil && u.Status == nil &&
		u.AssignedDriver == nil && u.Capacity == nil &&
		u.CurrentCapacity == nil && u.LastMaintenance == nil {
		verr.Add("body", "at least one field must be set")
		return verr.Err()
	}
	if u.Status != nil && !u.Status.Valid() {
		verr.Add("status", "must be one of: available, in_transit, maintenance")
	}
	if u.Capacity != nil && *u.Capacity < 0 {
		verr.Add("capacity", "must not be negative")
	}
	if u.CurrentCapacity != nil && *u.CurrentCapacity < 0 {
		verr.Add("currentCapacity", "must not be negative")
	}
	return verr.Err()
}
