package domain

import (
	"strings"

	"logistics-dashboard-service/internal/apperr"
)

type (
	// EmailCategory is the closed bucket vocabulary for organized emails.
	EmailCategory string
	// EmailPriority is the priority a classified email is tagged with.
	EmailPriority string
)

// List of possible email categories. Anything the assistant cannot place
// lands in CategoryOther; a category outside this list is a parse failure,
// never a silently accepted value.
const (
	CategoryDeliveryConfirmations EmailCategory = "delivery_confirmations"
	CategoryRouteChanges          EmailCategory = "route_changes"
	CategoryInventoryQueries      EmailCategory = "inventory_queries"
	CategoryCustomerIssues        EmailCategory = "customer_issues"
	CategoryUrgentActionRequired  EmailCategory = "urgent_action_required"
	CategoryOther                 EmailCategory = "other"
)

// List of possible email priorities.
const (
	EmailPriorityHigh   EmailPriority = "high"
	EmailPriorityMedium EmailPriority = "medium"
	EmailPriorityLow    EmailPriority = "low"
)

var allowedEmailCategories = [...]EmailCategory{
	CategoryDeliveryConfirmations, CategoryRouteChanges, CategoryInventoryQueries,
	CategoryCustomerIssues, CategoryUrgentActionRequired, CategoryOther,
}

var allowedEmailPriorities = [...]EmailPriority{
	EmailPriorityHigh, EmailPriorityMedium, EmailPriorityLow,
}

// Valid checks if the EmailCategory is valid.
func (c EmailCategory) Valid() bool {
	for _, v := range allowedEmailCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Valid checks if the EmailPriority is valid.
func (p EmailPriority) Valid() bool {
	for _, v := range allowedEmailPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Email is an email-like record submitted for organization. It is never
// stored; it only passes through to the assistant.
type Email struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
}

// OrganizedEmail is the assistant's verdict for one submitted email. Index
// refers back to the position in the submitted slice.
type OrganizedEmail struct {
	Index    int           `json:"index"`
	Category EmailCategory `json:"category"`
	Summary  string        `json:"summary"`
	Priority EmailPriority `json:"priority"`
}

// RouteSuggestion is the assistant's verdict for one route in an
// optimization request. Position is the suggested 1-based visiting order.
type RouteSuggestion struct {
	RouteID  string `json:"routeId"`
	Position int    `json:"position"`
	Notes    string `json:"notes"`
}

// Validate checks an email submitted for organization.
func (e *Email) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(e.Subject) == "" {
		verr.Add("subject", "required")
	}
	if strings.TrimSpace(e.Content) == "" {
		verr.Add("content", "required")
	}
	if strings.TrimSpace(e.Sender) == "" {
		verr.Add("sender", "required")
	}
	return verr.Err()
}
