package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

type (
	// PackageStatus represents the delivery status of a package.
	PackageStatus string
	// Priority represents the delivery priority of a package.
	Priority string
)

// List of possible package statuses.
const (
	PackagePending   PackageStatus = "pending"
	PackageInTransit PackageStatus = "in_transit"
	PackageDelivered PackageStatus = "delivered"
)

// List of possible package priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var allowedPackageStatuses = [...]PackageStatus{
	PackagePending, PackageInTransit, PackageDelivered,
}

var allowedPriorities = [...]Priority{
	PriorityLow, PriorityMedium, PriorityHigh,
}

// Valid checks if the PackageStatus is valid.
func (s PackageStatus) Valid() bool {
	for _, v := range allowedPackageStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Priority is valid.
func (p Priority) Valid() bool {
	for _, v := range allowedPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Package represents a tracked delivery package. AssignedTruck is a weak
// reference to Truck.TruckID; dangling values are tolerated.
type Package struct {
	ID            int64         `json:"id"`
	PackageID     string        `json:"packageId"`
	Description   string        `json:"description"`
	Destination   string        `json:"destination"`
	Status        PackageStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	AssignedTruck *string       `json:"assignedTruck,omitempty"`
	StopNumber    *int          `json:"stopNumber,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// InsertPackage is the subset of Package accepted on creation.
type InsertPackage struct {
	PackageID     string        `json:"packageId"`
	Description   string        `json:"description"`
	Destination   string        `json:"destination"`
	Status        PackageStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	AssignedTruck *string       `json:"assignedTruck,omitempty"`
	StopNumber    *int          `json:"stopNumber,omitempty"`
}

// PartialPackageUpdate carries optional fields to update a package.
// A nil field means "do not change" that attribute.
type PartialPackageUpdate struct {
	Description   *string        `json:"description,omitempty"`
	Destination   *string        `json:"destination,omitempty"`
	Status        *PackageStatus `json:"status,omitempty"`
	Priority      *Priority      `json:"priority,omitempty"`
	AssignedTruck *string        `json:"assignedTruck,omitempty"`
	StopNumber    *int           `json:"stopNumber,omitempty"`
}

// Validate checks the insertable payload. Empty status and priority default
// to pending and medium.
func (in *InsertPackage) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.PackageID) == "" {
		verr.Add("packageId", "required")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "required")
	}
	if strings.TrimSpace(in.Destination) == "" {
		verr.Add("destination", "required")
	}
	if in.Status == "" {
		in.Status = PackagePending
	} else if !in.Status.Valid() {
		verr.Add("status", "must be one of: pending, in_transit, delivered")
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	} else if !in.Priority.Valid() {
		verr.Add("priority", "must be one of: low, medium, high")
	}
	return verr.Err()
}

// Validate checks that every set field carries an acceptable value and that
// at least one field is set.
func (u *PartialPackageUpdate) Validate() error {
	var verr apperr.ValidationError
	if u.Description == nil && u.Destination == nil && u.Status == nil &&
		u.Priority == nil && u.AssignedTruck == nil && u.StopNumber == nil {
		verr.Add("body", "at least one field must be set")
		return verr.Err()
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		verr.Add("description", "must not be blank")
	}
	if u.Destination != nil && strings.TrimSpace(*u.Destination) == "" {
		verr.Add("destination", "must not be blank")
	}
	if u.Status != nil && !u.Status.Valid() {
		verr.Add("status", "must be one of: pending, in_transit, delivered")
	}
	if u.Priority != nil && !u.Priority.Valid() {
		verr.Add("priority", "must be one of: low, medium, high")
	}
	return verr.Err()
}
