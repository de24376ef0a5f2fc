package repository

import (
	"strings"
	"time"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
)

// ActivityFilter narrows a ledger query. Zero values mean "no filter".
type ActivityFilter struct {
	Search     string     // case-insensitive against action, product name, store name
	ActionType string     // case-insensitive substring of the action label
	DateFrom   *time.Time // inclusive lower bound
	DateTo     *time.Time // inclusive upper bound, normalized to end of day
}

// ActivityRecord is a ledger entry with the product and store names joined
// in at query time (they are not stored redundantly on the log row).
type ActivityRecord struct {
	model.ActivityLog `gorm:"embedded"`
	ProductName       string `gorm:"column:product_name" json:"product_name,omitempty"`
	StoreName         string `gorm:"column:store_name" json:"store_name,omitempty"`
}

// EndOfDay normalizes an upper date bound to 23:59:59.999 so entries on
// that day are included.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// Matches applies the filter in memory. The remote backend mirrors this
// logic in SQL; the demo backend uses it directly.
func (f ActivityFilter) Matches(rec ActivityRecord) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(rec.Action), needle) &&
			!strings.Contains(strings.ToLower(rec.ProductName), needle) &&
			!strings.Contains(strings.ToLower(rec.StoreName), needle) {
			return false
		}
	}
	if f.ActionType != "" {
		if !strings.Contains(strings.ToLower(rec.Action), strings.ToLower(f.ActionType)) {
			return false
		}
	}
	if f.DateFrom != nil && rec.Timestamp.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && rec.Timestamp.After(EndOfDay(*f.DateTo)) {
		return false
	}
	return true
}

// InventoryBackend is where one actor's catalog state lives. The remote
// implementation talks to Postgres; the demo implementation is an
// ephemeral in-memory shim used when no session exists. Callers never
// branch on which one they hold.
//
// Mutating product operations take the ledger entry to append alongside
// the change. The remote backend persists both atomically; the demo
// backend applies the change and drops the entry (no audit trail in demo).
type InventoryBackend interface {
	ListStores(ownerID uuid.UUID) ([]model.Store, error)
	CreateStore(store *model.Store) error
	SetStoreActive(id uuid.UUID, active bool) error

	ListProducts(ownerID uuid.UUID, storeID *uuid.UUID) ([]model.Product, error)
	FindProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(product *model.Product, entry *model.ActivityLog) error
	UpdateQuantity(id uuid.UUID, newQuantity int, entry *model.ActivityLog) (*model.Product, error)
	DeleteProduct(id uuid.UUID, entry *model.ActivityLog) error

	ListActivities(actor model.Actor, filter ActivityFilter) ([]ActivityRecord, error)
}

// BackendSelector picks the backend for an actor, once per request.
type BackendSelector struct {
	Remote InventoryBackend
	Demo   InventoryBackend
}

func (s BackendSelector) For(actor model.Actor) InventoryBackend {
	if actor.Demo {
		return s.Demo
	}
	return s.Remote
}
