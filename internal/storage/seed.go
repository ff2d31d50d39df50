package storage

import (
	"time"

	"logistics-dashboard-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// SeedDemoData loads the demo fixture used by the dashboard client: two
// users, two trucks, three inventory items, two packages, one route and two
// calendar events. Intended for local runs only; a fresh store starts empty.
func SeedDemoData(s *Store) {
	now := s.now()

	s.CreateUser(domain.InsertUser{
		Username: "driver1",
		Password: ptr("password"),
		Email:    ptr("driver1@example.com"),
		Name:     ptr("John Driver"),
		Role:     domain.RoleDriver,
	})
	s.CreateUser(domain.InsertUser{
		Username: "manager1",
		Password: ptr("password"),
		Email:    ptr("manager1@example.com"),
		Name:     ptr("Sarah Manager"),
		Role:     domain.RoleManager,
	})

	s.CreateTruck(domain.InsertTruck{
		TruckID:         "TRUCK-001",
		Model:           ptr("Volvo FH16"),
		License:         ptr("XYZ-1234"),
		Status:          domain.TruckAvailable,
		AssignedDriver:  ptr(int64(1)),
		Capacity:        ptr(2000),
		CurrentCapacity: ptr(1500),
	})
	s.CreateTruck(domain.InsertTruck{
		TruckID:         "TRUCK-002",
		Model:           ptr("Mercedes Actros"),
		License:         ptr("ABC-5678"),
		Status:          domain.TruckInTransit,
		Capacity:        ptr(1800),
		CurrentCapacity: ptr(1200),
	})

	s.CreateInventoryItem(domain.InsertInventoryItem{
		ItemID:     "ITEM-001",
		Name:       "Fresh Produce",
		Category:   "Perishable",
		Quantity:   ptr(500),
		Location:   "Warehouse A",
		Status:     domain.InventoryInStock,
		ExpiryDate: ptr(now.Add(7 * 24 * time.Hour)),
	})
	s.CreateInventoryItem(domain.InsertInventoryItem{
		ItemID:   "ITEM-002",
		Name:     "Electronics",
		Category: "Non-Perishable",
		Quantity: ptr(200),
		Location: "Warehouse B",
		Status:   domain.InventoryInStock,
	})
	s.CreateInventoryItem(domain.InsertInventoryItem{
		ItemID:     "ITEM-003",
		Name:       "Dairy Products",
		Category:   "Perishable",
		Quantity:   ptr(150),
		Location:   "TRUCK-001",
		Status:     domain.InventoryExpiringSoon,
		ExpiryDate: ptr(now.Add(3 * 24 * time.Hour)),
	})

	s.CreatePackage(domain.InsertPackage{
		PackageID:     "PKG-001",
		Description:   "Fragile Electronics",
		Destination:   "123 Main St, New York, NY",
		Status:        domain.PackageInTransit,
		Priority:      domain.PriorityHigh,
		AssignedTruck: ptr("TRUCK-001"),
		StopNumber:    ptr(1),
	})
	s.CreatePackage(domain.InsertPackage{
		PackageID:   "PKG-002",
		Description: "Food Delivery",
		Destination: "456 Elm St, Los Angeles, CA",
		Status:      domain.PackagePending,
		Priority:    domain.PriorityMedium,
	})

	s.CreateRoute(domain.InsertRoute{
		RouteID:       "ROUTE-001",
		StartLocation: "Warehouse A, Chicago, IL",
		EndLocation:   "Distribution Center, Detroit, MI",
		Stops: []domain.RouteStop{
			{Location: "123 Main St, New York, NY", Status: domain.StopPending},
			{Location: "456 Oak Ave, Philadelphia, PA", Status: domain.StopPending},
		},
		AssignedTruck:     ptr("TRUCK-001"),
		Status:            domain.RouteInProgress,
		EstimatedDuration: ptr(480),
		Distance:          ptr(450),
		StartTime:         ptr(now),
	})

	s.CreateEvent(domain.InsertEvent{
		Title:       "Truck Maintenance",
		Description: ptr("Regular maintenance for TRUCK-001"),
		Start:       ptr(now.Add(2 * 24 * time.Hour)),
		End:         ptr(now.Add(2*24*time.Hour + 3*time.Hour)),
		Type:        domain.EventAudit,
		RelatedID:   ptr("TRUCK-001"),
	})
	s.CreateEvent(domain.InsertEvent{
		Title:       "Big Shipment Arrival",
		Description: ptr("Large shipment arriving at Warehouse A"),
		Start:       ptr(now.Add(24 * time.Hour)),
		End:         ptr(now.Add(24*time.Hour + 5*time.Hour)),
		Type:        domain.EventShipment,
		RelatedID:   ptr("WAREHOUSE-A"),
	})
}
