package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

// EventType represents the calendar category of an event.
type EventType string

// List of possible event types.
const (
	EventShipment  EventType = "shipment"
	EventDeparture EventType = "departure"
	EventAudit     EventType = "audit"
	EventMeeting   EventType = "meeting"
)

var allowedEventTypes = [...]EventType{
	EventShipment, EventDeparture, EventAudit, EventMeeting,
}

// Valid checks if the EventType is valid.
func (t EventType) Valid() bool {
	for _, v := range allowedEventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Event is a calendar record. RelatedID is an untyped weak reference to any
// other entity's business key; no referential integrity is enforced.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Type        EventType `json:"type"`
	RelatedID   *string   `json:"relatedId,omitempty"`
}

// InsertEvent is the subset of Event accepted on creation. Start and End are
// pointers so absent fields can be told apart from the zero time.
type InsertEvent struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	AllDay      *bool      `json:"allDay,omitempty"`
	Type        EventType  `json:"type"`
	RelatedID   *string    `json:"relatedId,omitempty"`
}

// PartialEventUpdate carries optional fields to update an event.
// A nil field means "do not change" that attribute.
type PartialEventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	AllDay      *bool      `json:"allDay,omitempty"`
	Type        *EventType `json:"type,omitempty"`
	RelatedID   *string    `json:"relatedId,omitempty"`
}

// Validate checks the insertable payload.
func (in *InsertEvent) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.Title) == "" {
		verr.Add("title", "required")
	}
	if in.Start == nil {
		verr.Add("start", "required")
	}
	if in.End == nil {
		verr.Add("end", "required")
	}
	if in.Type == "" {
		verr.Add("type", "required")
	} else if !in.Type.Valid() {
		verr.Add("type", "must be one of: shipment, departure, audit, meeting")
	}
	return verr.Err()
}

// Validate checks that every set field carries an acceptable value and that
// at least one field is set.
func (u *PartialEventUpdate) Validate() error {
	var verr apperr.ValidationError
	if u.Title == nil && u.Description == nil && u.Start == nil &&
		u.End == nil && u.AllDay == nil && u.Type == nil && u.RelatedID == nil {
		verr.Add("body", "at least one field must be set")
		return verr.Err()
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		verr.Add("title", "must not be blank")
	}
	if u.Type != nil && !u.Type.Valid() {
		verr.Add("type", "must be one of: shipment, departure, audit, meeting")
	}
	return verr.Err()
}
