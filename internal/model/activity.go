package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Action labels written to the ledger. Free text in the column, but every
// writer goes through these constants.
const (
	ActionProductAdded    = "Product added"
	ActionProductRestock  = "Product restocked"
	ActionProductRemoved  = "Product removed"
	ActionQuantityUpdated = "Product quantity updated"
	ActionProductDeleted  = "Product deleted"
)

// ActivityLog is an immutable audit record. Rows are only ever inserted;
// no update or delete path exists anywhere in the codebase.
type ActivityLog struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Action           string         `gorm:"type:varchar(100);not null" json:"action"`
	ProductID        *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	StoreID          *uuid.UUID     `gorm:"type:uuid;index" json:"store_id,omitempty"`
	QuantityChange   *int           `json:"quantity_change,omitempty"`
	PreviousQuantity *int           `json:"previous_quantity,omitempty"`
	NewQuantity      *int           `json:"new_quantity,omitempty"`
	Details          datatypes.JSON `json:"details,omitempty"`
	Timestamp        time.Time      `gorm:"not null;index" json:"timestamp"`
}

// ActivityDetails is the descriptive snapshot of the product at the time
// of the action, stored in the details JSON column.
type ActivityDetails struct {
	ProductName string      `json:"product_name"`
	Color       string      `json:"color,omitempty"`
	Category    string      `json:"category,omitempty"`
	Form        ProductForm `json:"form,omitempty"`
}

// ClassifyQuantityChange maps the sign of a delta to the ledger action label
func ClassifyQuantityChange(delta int) string {
	switch {
	case delta > 0:
		return ActionProductRestock
	case delta < 0:
		return ActionProductRemoved
	default:
		return ActionQuantityUpdated
	}
}

// NewQuantityChangeLog builds the single ledger entry for a quantity
// mutation. previous and newQuantity are the catalog values before and
// after; the action label follows the sign of the delta.
func NewQuantityChangeLog(actor Actor, product *Product, previous, newQuantity int) *ActivityLog {
	delta := newQuantity - previous
	entry := newProductLog(actor, product, ClassifyQuantityChange(delta))
	entry.QuantityChange = &delta
	entry.PreviousQuantity = &previous
	entry.NewQuantity = &newQuantity
	return entry
}

// NewProductAddedLog builds the ledger entry for a freshly created product
func NewProductAddedLog(actor Actor, product *Product) *ActivityLog {
	zero := 0
	change := product.Quantity
	quantity := product.Quantity
	entry := newProductLog(actor, product, ActionProductAdded)
	entry.QuantityChange = &change
	entry.PreviousQuantity = &zero
	entry.NewQuantity = &quantity
	return entry
}

// NewProductDeletedLog builds the ledger entry for a deleted product row.
// Distinct from "Product removed", which is a quantity change down to zero.
func NewProductDeletedLog(actor Actor, product *Product) *ActivityLog {
	previous := product.Quantity
	change := -previous
	zero := 0
	entry := newProductLog(actor, product, ActionProductDeleted)
	entry.QuantityChange = &change
	entry.PreviousQuantity = &previous
	entry.NewQuantity = &zero
	return entry
}

func newProductLog(actor Actor, product *Product, action string) *ActivityLog {
	productID := product.ID
	storeID := product.StoreID
	details, _ := json.Marshal(ActivityDetails{
		ProductName: product.Name,
		Color:       product.Color,
		Category:    product.Category,
		Form:        product.Form,
	})

	return &ActivityLog{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Action:    action,
		ProductID: &productID,
		StoreID:   &storeID,
		Details:   datatypes.JSON(details),
		Timestamp: time.Now(),
	}
}
