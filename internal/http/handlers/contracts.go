package handlers

import (
	"time"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/storage"
)

// Narrow per-resource views over the storage engine. *storage.Store
// satisfies all of them; tests substitute stubs where useful.

type userStore interface {
	GetUser(id int64) (domain.User, bool)
	GetUserByUsername(username string) (domain.User, bool)
	GetUserByEmail(email string) (domain.User, bool)
	GetUserByGoogleID(googleID string) (domain.User, bool)
	CreateUser(in domain.InsertUser) domain.User
}

type packageStore interface {
	GetPackageByPackageID(packageID string) (domain.Package, bool)
	ListPackages() []domain.Package
	ListPackagesByStatus(status domain.PackageStatus) []domain.Package
	ListPackagesByTruck(truckID string) []domain.Package
	CreatePackage(in domain.InsertPackage) domain.Package
	UpdatePackage(id int64, u domain.PartialPackageUpdate) (domain.Package, bool)
	DeletePackage(id int64) bool
}

type truckStore interface {
	GetTruckByTruckID(truckID string) (domain.Truck, bool)
	ListTrucks() []domain.Truck
	ListTrucksByStatus(status domain.TruckStatus) []domain.Truck
	ListTrucksByDriver(driverID int64) []domain.Truck
	CreateTruck(in domain.InsertTruck) domain.Truck
	UpdateTruck(id int64, u domain.PartialTruckUpdate) (domain.Truck, bool)
	DeleteTruck(id int64) bool
}

type inventoryStore interface {
	GetInventoryItemByItemID(itemID string) (domain.InventoryItem, bool)
	ListInventory() []domain.InventoryItem
	ListInventoryByStatus(status domain.InventoryStatus) []domain.InventoryItem
	ListInventoryByLocation(location string) []domain.InventoryItem
	ListExpiringInventory() []domain.InventoryItem
	CreateInventoryItem(in domain.InsertInventoryItem) domain.InventoryItem
	UpdateInventoryItem(id int64, u domain.PartialInventoryUpdate) (domain.InventoryItem, bool)
	DeleteInventoryItem(id int64) bool
}

type routeStore interface {
	GetRouteByRouteID(routeID string) (domain.Route, bool)
	ListRoutes() []domain.Route
	ListRoutesByStatus(status domain.RouteStatus) []domain.Route
	ListRoutesByTruck(truckID string) []domain.Route
	CreateRoute(in domain.InsertRoute) domain.Route
	UpdateRoute(id int64, u domain.PartialRouteUpdate) (domain.Route, bool)
	DeleteRoute(id int64) bool
}

type eventStore interface {
	GetEvent(id int64) (domain.Event, bool)
	ListEvents() []domain.Event
	ListEventsByType(t domain.EventType) []domain.Event
	ListEventsByRelatedID(relatedID string) []domain.Event
	ListEventsByDateRange(rangeStart, rangeEnd time.Time) []domain.Event
	CreateEvent(in domain.InsertEvent) domain.Event
	UpdateEvent(id int64, u domain.PartialEventUpdate) (domain.Event, bool)
	DeleteEvent(id int64) bool
}

// Compile-time wiring check against the concrete store.
var (
	_ userStore      = (*storage.Store)(nil)
	_ packageStore   = (*storage.Store)(nil)
	_ truckStore     = (*storage.Store)(nil)
	_ inventoryStore = (*storage.Store)(nil)
	_ routeStore     = (*storage.Store)(nil)
	_ eventStore     = (*storage.Store)(nil)
)
