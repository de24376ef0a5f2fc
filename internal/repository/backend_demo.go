package repository

import (
	"sort"
	"sync"
	"time"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
)

// demoBackend is the ephemeral fallback used when no authenticated session
// exists. Collections live in process memory, scoped per demo owner, and
// are never reconciled with the shared database if the user later logs in.
//
// Quantity changes apply, but ledger entries are dropped: demo sessions
// have no durable audit trail, only a couple of canned entries so the
// history view is not empty.
type demoBackend struct {
	mu         sync.Mutex
	stores     []model.Store
	products   []model.Product
	activities map[uuid.UUID][]ActivityRecord // canned, per demo owner
}

func NewDemoBackend() InventoryBackend {
	return &demoBackend{
		activities: make(map[uuid.UUID][]ActivityRecord),
	}
}

func (b *demoBackend) ListStores(ownerID uuid.UUID) ([]model.Store, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seedStoresLocked(ownerID)

	var out []model.Store
	for _, s := range b.stores {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (b *demoBackend) CreateStore(store *model.Store) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	now := time.Now()
	store.CreatedAt = now
	store.UpdatedAt = now
	store.IsActive = true

	b.stores = append([]model.Store{*store}, b.stores...)
	return nil
}

func (b *demoBackend) SetStoreActive(id uuid.UUID, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.stores {
		if b.stores[i].ID == id {
			b.stores[i].IsActive = active
			b.stores[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrProductNotFound
}

func (b *demoBackend) ListProducts(ownerID uuid.UUID, storeID *uuid.UUID) ([]model.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []model.Product
	for _, p := range b.products {
		if p.OwnerID != ownerID {
			continue
		}
		if storeID != nil && p.StoreID != *storeID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (b *demoBackend) FindProduct(id uuid.UUID) (*model.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, ErrProductNotFound
}

func (b *demoBackend) CreateProduct(product *model.Product, entry *model.ActivityLog) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	// newest first, matching the database ordering
	b.products = append([]model.Product{*product}, b.products...)
	return nil // entry dropped: no audit trail in demo mode
}

func (b *demoBackend) UpdateQuantity(id uuid.UUID, newQuantity int, entry *model.ActivityLog) (*model.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.products {
		if b.products[i].ID == id {
			b.products[i].Quantity = newQuantity
			b.products[i].UpdatedAt = time.Now()
			clone := b.products[i]
			return &clone, nil // entry dropped: no audit trail in demo mode
		}
	}
	return nil, ErrProductNotFound
}

func (b *demoBackend) DeleteProduct(id uuid.UUID, entry *model.ActivityLog) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.products {
		if b.products[i].ID == id {
			b.products = append(b.products[:i], b.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (b *demoBackend) ListActivities(actor model.Actor, filter ActivityFilter) ([]ActivityRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	canned, ok := b.activities[actor.OwnerScope]
	if !ok {
		canned = cannedActivities(actor)
		b.activities[actor.OwnerScope] = canned
	}

	var out []ActivityRecord
	for _, rec := range canned {
		if filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// seedStoresLocked gives a fresh demo owner the two sample Kariakoo stores
func (b *demoBackend) seedStoresLocked(ownerID uuid.UUID) {
	for _, s := range b.stores {
		if s.OwnerID == ownerID {
			return
		}
	}

	now := time.Now()
	seeds := []model.Store{
		{
			Name:        "Store A - NMB Branch",
			Location:    "Near NMB Bank, Kariakoo",
			Description: "Main textile store with premium fabrics",
		},
		{
			Name:        "Store B - Msimbazi",
			Location:    "Msimbazi Street, Kariakoo",
			Description: "Cotton and silk specialty store",
		},
	}
	for _, seed := range seeds {
		seed.ID = uuid.New()
		seed.CreatedAt = now
		seed.UpdatedAt = now
		seed.OwnerID = ownerID
		seed.IsActive = true
		b.stores = append(b.stores, seed)
	}
}

// cannedActivities builds the sample history shown to demo sessions
func cannedActivities(actor model.Actor) []ActivityRecord {
	mk := func(name string, change, previous int, age time.Duration) ActivityRecord {
		newQty := previous + change
		return ActivityRecord{
			ActivityLog: model.ActivityLog{
				ID:               uuid.New(),
				UserID:           actor.ID,
				Action:           model.ActionProductRemoved,
				QuantityChange:   &change,
				PreviousQuantity: &previous,
				NewQuantity:      &newQty,
				Timestamp:        time.Now().Add(-age),
			},
			ProductName: name,
			StoreName:   "Store A - NMB Branch",
		}
	}

	return []ActivityRecord{
		mk("Silk Fabric", -10, 150, time.Hour),
		mk("Canvas Material", -5, 25, 2*time.Hour),
	}
}
