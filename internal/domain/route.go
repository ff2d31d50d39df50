package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

type (
	// RouteStatus represents the progress of a planned route.
	RouteStatus string
	// StopStatus represents the progress of a single stop on a route.
	StopStatus string
)

// List of possible route statuses. Transitions are caller-driven; any value
// from the closed vocabulary is accepted regardless of the current one.
const (
	RoutePlanned    RouteStatus = "planned"
	RouteInProgress RouteStatus = "in_progress"
	RouteCompleted  RouteStatus = "completed"
)

// List of possible stop statuses.
const (
	StopPending  StopStatus = "pending"
	StopArrived  StopStatus = "arrived"
	StopDeparted StopStatus = "departed"
)

var allowedRouteStatuses = [...]RouteStatus{
	RoutePlanned, RouteInProgress, RouteCompleted,
}

var allowedStopStatuses = [...]StopStatus{
	StopPending, StopArrived, StopDeparted,
}

// Valid checks if the RouteStatus is valid.
func (s RouteStatus) Valid() bool {
	for _, v := range allowedRouteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the StopStatus is valid.
func (s StopStatus) Valid() bool {
	for _, v := range allowedStopStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// RouteStop is a single ordered stop on a route.
type RouteStop struct {
	Location      string     `json:"location"`
	ArrivalTime   *time.Time `json:"arrivalTime,omitempty"`
	DepartureTime *time.Time `json:"departureTime,omitempty"`
	Status        StopStatus `json:"status"`
}

// Route represents a planned delivery route. Durations are minutes, distance
// is kilometres. ActualDuration and EndTime start nil and are filled by the
// caller on completion, not by the store.
type Route struct {
	ID                int64       `json:"id"`
	RouteID           string      `json:"routeId"`
	StartLocation     string      `json:"startLocation"`
	EndLocation       string      `json:"endLocation"`
	Stops             []RouteStop `json:"stops"`
	AssignedTruck     *string     `json:"assignedTruck,omitempty"`
	Status            RouteStatus `json:"status"`
	EstimatedDuration *int        `json:"estimatedDuration,omitempty"`
	ActualDuration    *int        `json:"actualDuration,omitempty"`
	Distance          *int        `json:"distance,omitempty"`
	StartTime         *time.Time  `json:"startTime,omitempty"`
	EndTime           *time.Time  `json:"endTime,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// InsertRoute is the subset of Route accepted on creation.
type InsertRoute struct {
	RouteID           string      `json:"routeId"`
	StartLocation     string      `json:"startLocation"`
	EndLocation       string      `json:"endLocation"`
	Stops             []RouteStop `json:"stops"`
	AssignedTruck     *string     `json:"assignedTruck,omitempty"`
	Status            RouteStatus `json:"status"`
	EstimatedDuration *int        `json:"estimatedDuration,omitempty"`
	Distance          *int        `json:"distance,omitempty"`
	StartTime         *time.Time  `json:"startTime,omitempty"`
}

// PartialRouteUpdate carries optional fields to update a route.
// A nil field means "do not change" that attribute.
type PartialRouteUpdate struct {
	StartLocation     *string      `json:"startLocation,omitempty"`
	EndLocation       *string      `json:"endLocation,omitempty"`
	Stops             *[]RouteStop `json:"stops,omitempty"`
	AssignedTruck     *string      `json:"assignedTruck,omitempty"`
	Status            *RouteStatus `json:"status,omitempty"`
	EstimatedDuration *int         `json:"estimatedDuration,omitempty"`
	ActualDuration    *int         `json:"actualDuration,omitempty"`
	Distance          *int         `json:"distance,omitempty"`
	StartTime         *time.Time   `json:"startTime,omitempty"`
	EndTime           *time.Time   `json:"endTime,omitempty"`
}

func validateStops(verr *apperr.ValidationError, stops []RouteStop) {
	for i, stop := range stops {
		if strings.TrimSpace(stop.Location) == "" {
			verr.Add("stops", "stop %d: location required", i)
		}
		if stop.Status != "" && !stop.Status.Valid() {
			verr.Add("stops", "stop %d: status must be one of: pending, arrived, departed", i)
		}
	}
}

// Validate checks the insertable payload. Empty route status defaults to
// planned, empty stop statuses to pending.
func (in *InsertRoute) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.RouteID) == "" {
		verr.Add("routeId", "required")
	}
	if strings.TrimSpace(in.StartLocation) == "" {
		verr.Add("startLocation", "required")
	}
	if strings.TrimSpace(in.EndLocation) == "" {
		verr.Add("endLocation", "required")
	}
	if in.Status == "" {
		in.Status = RoutePlanned
	} else if !in.Status.Valid() {
		verr.Add("status", "must be one of: planned, in_progress, completed")
	}
	validateStops(&verr, in.Stops)
	for i := range in.Stops {
		if in.Stops[i].Status == "" {
			in.Stops[i].Status = StopPending
		}
	}
	if in.EstimatedDuration != nil && *in.EstimatedDuration < 0 {
		verr.Add("estimatedDuration", "must not be negative")
	}
	if in.Distance != nil && *in.Distance < 0 {
		verr.Add("distance", "must not be negative")
	}
	return verr.Err()
}

// Validate checks that every set field carries an acceptable value and that
// at least one field is set.
func (u *PartialRouteUpdate) Validate() error {
	var verr apperr.ValidationError
	if u.StartLocation == nil && u.EndLocation == nil && u.Stops == nil &&
		u.AssignedTruck == nil && u.Status == nil && u.EstimatedDuration == nil &&
		u.ActualDuration == nil && u.Distance == nil && u.StartTime == nil &&
		u.EndTime == nil {
		verr.Add("body", "at least one field must be set")
		return verr.Err()
	}
	if u.StartLocation != nil && strings.TrimSpace(*u.StartLocation) == "" {
		verr.Add("startLocation", "must not be blank")
	}
	if u.EndLocation != nil && strings.TrimSpace(*u.EndLocation) == "" {
		verr.Add("endLocation", "must not be blank")
	}
	if u.Status != nil && !u.Status.Valid() {
		verr.Add("status", "must be one of: planned, in_progress, completed")
	}
	if u.Stops != nil {
		validateStops(&verr, *u.Stops)
	}
	if u.EstimatedDuration != nil && *u.EstimatedDuration < 0 {
		verr.Add("estimatedDuration", "must not be negative")
	}
	if u.ActualDuration != nil && *u.ActualDuration < 0 {
		verr.Add("actualDuration", "must not be negative")
	}
	if u.Distance != nil && *u.Distance < 0 {
		verr.Add("distance", "must not be negative")
	}
	return verr.Err()
}
