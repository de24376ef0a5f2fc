package repository

import (
	"errors"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type remoteBackend struct {
	db *gorm.DB
}

// NewRemoteBackend wraps the shared Postgres database as an InventoryBackend
func NewRemoteBackend(db *gorm.DB) InventoryBackend {
	return &remoteBackend{db}
}

func (b *remoteBackend) ListStores(ownerID uuid.UUID) ([]model.Store, error) {
	var stores []model.Store
	err := b.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&stores).Error
	return stores, err
}

func (b *remoteBackend) CreateStore(store *model.Store) error {
	return b.db.Create(store).Error
}

// SetStoreActive soft-deactivates; store rows are never physically deleted
func (b *remoteBackend) SetStoreActive(id uuid.UUID, active bool) error {
	return b.db.Model(&model.Store{}).Where("id = ?", id).Update("is_active", active).Error
}

func (b *remoteBackend) ListProducts(ownerID uuid.UUID, storeID *uuid.UUID) ([]model.Product, error) {
	query := b.db.Where("owner_id = ?", ownerID)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var products []model.Product
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (b *remoteBackend) FindProduct(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := b.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts the row and its "Product added" ledger entry in one
// transaction; a failed insert leaves no ledger entry behind.
func (b *remoteBackend) CreateProduct(product *model.Product, entry *model.ActivityLog) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if entry != nil {
			productID := product.ID
			entry.ProductID = &productID
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateQuantity persists the new quantity and appends the ledger entry
// atomically. The row is locked for the duration so the overwrite is
// consistent; callers computed the entry from their own snapshot and may
// record a previous quantity that is already stale (last write wins).
func (b *remoteBackend) UpdateQuantity(id uuid.UUID, newQuantity int, entry *model.ActivityLog) (*model.Product, error) {
	var updated model.Product

	err := b.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		// Cari & Lock Product (Pessimistic Locking)
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		existing.Quantity = newQuantity
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if entry != nil {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}

		updated = existing
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct soft-deletes the row and appends the "Product deleted"
// ledger entry in one transaction.
func (b *remoteBackend) DeleteProduct(id uuid.UUID, entry *model.ActivityLog) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}

		if entry != nil {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListActivities joins product and store names onto the ledger rows.
// Entries are visible when they touch the actor's catalog scope or were
// written by the actor itself.
func (b *remoteBackend) ListActivities(actor model.Actor, filter ActivityFilter) ([]ActivityRecord, error) {
	query := b.db.Table("activity_logs").
		Select("activity_logs.*, products.name AS product_name, stores.name AS store_name").
		Joins("LEFT JOIN products ON products.id = activity_logs.product_id").
		Joins("LEFT JOIN stores ON stores.id = activity_logs.store_id").
		Where("stores.owner_id = ? OR activity_logs.user_id = ?", actor.OwnerScope, actor.ID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"activity_logs.action ILIKE ? OR products.name ILIKE ? OR stores.name ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.ActionType != "" {
		query = query.Where("activity_logs.action ILIKE ?", "%"+filter.ActionType+"%")
	}
	if filter.DateFrom != nil {
		query = query.Where("activity_logs.timestamp >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("activity_logs.timestamp <= ?", EndOfDay(*filter.DateTo))
	}

	var records []ActivityRecord
	err := query.Order("activity_logs.timestamp DESC").Scan(&records).Error
	return records, err
}
