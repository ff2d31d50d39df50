package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

// InventoryStatus represents the stock status of an inventory item.
type InventoryStatus string

// List of possible inventory statuses. ExpiringSoon is caller-set; the store
// never derives it from ExpiryDate.
const (
	InventoryInStock      InventoryStatus = "in_stock"
	InventoryLowStock     InventoryStatus = "low_stock"
	InventoryOutOfStock   InventoryStatus = "out_of_stock"
	InventoryExpiringSoon InventoryStatus = "expiring_soon"
)

var allowedInventoryStatuses = [...]InventoryStatus{
	InventoryInStock, InventoryLowStock, InventoryOutOfStock, InventoryExpiringSoon,
}

// Valid checks if the InventoryStatus is valid.
func (s InventoryStatus) Valid() bool {
	for _, v := range allowedInventoryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// InventoryItem represents a stocked item at a warehouse or on a truck.
type InventoryItem struct {
	ID         int64           `json:"id"`
	ItemID     string          `json:"itemId"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Location   string          `json:"location"`
	Status     InventoryStatus `json:"status"`
	ExpiryDate *time.Time      `json:"expiryDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// InsertInventoryItem is the subset of InventoryItem accepted on creation.
// Quantity is a pointer so an absent field can be told apart from zero.
type InsertInventoryItem struct {
	ItemID     string          `json:"itemId"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   *int            `json:"quantity"`
	Location   string          `json:"location"`
	Status     InventoryStatus `json:"status"`
	ExpiryDate *time.Time      `json:"expiryDate,omitempty"`
}

// PartialInventoryUpdate carries optional fields to update an inventory item.
// A nil field means "do not change" that attribute.
type PartialInventoryUpdate struct {
	Name       *string          `json:"name,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Quantity   *int             `json:"quantity,omitempty"`
	Location   *string          `json:"location,omitempty"`
	Status     *InventoryStatus `json:"status,omitempty"`
	ExpiryDate *time.Time       `json:"expiryDate,omitempty"`
}

// Validate checks the insertable payload. An empty status defaults to
// in_stock.
func (in *InsertInventoryItem) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.ItemID) == "" {
		verr.Add("itemId", "required")
	}
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "required")
	}
	if strings.TrimSpace(in.Category) == "" {
		verr.Add("category", "required")
	}
	if in.Quantity == nil {
		verr.Add("quantity", "required")
	} else if *in.Quantity < 0 {
		verr.Add("quantity", "must not be negative")
	}
	if strings.TrimSpace(in.Location) == "" {
		verr.Add("location", "required")
	}
	if in.Status == "" {
		in.Status = InventoryInStock
	} else if !in.Status.Valid() {
		verr.Add("status", "must be one of: in_stock, low_stock, out_of_stock, expiring_soon")
	}
	return verr.Err()
}

// Validate checks that every set field carries an acceptable value and that
// at least one field is set.
func (u *PartialInventoryUpdate) Validate() error {
	var verr apperr.ValidationError
	if u.Name == nil && u.Category == nil && u.Quantity == nil &&
		u.Location == nil && u.Status == nil && u.ExpiryDate == nil {
		verr.Add("body", "at least one field must be set")
		return verr.Err()
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		verr.Add("name", "must not be blank")
	}
	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		verr.Add("category", "must not be blank")
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		verr.Add("quantity", "must not be negative")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		verr.Add("location", "must not be blank")
	}
	if u.Status != nil && !u.Status.Valid() {
		verr.Add("status", "must be one of: in_stock, low_stock, out_of_stock, expiring_soon")
	}
	return verr.Err()
}
