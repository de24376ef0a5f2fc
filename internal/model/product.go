package model

import "github.com/google/uuid"

// ProductForm is the unit-of-measure a product is counted in
type ProductForm string

const (
	FormBoxes  ProductForm = "boxes"
	FormPcs    ProductForm = "pcs"
	FormDozen  ProductForm = "dozen"
	FormBag    ProductForm = "bag"
	FormRolls  ProductForm = "rolls"
	FormMeters ProductForm = "meters"
	FormKg     ProductForm = "kg"
)

type Product struct {
	BaseModel
	Name        string      `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Color       string      `gorm:"type:varchar(50)" json:"color"`
	Category    string      `gorm:"type:varchar(100)" json:"category"`
	Form        ProductForm `gorm:"type:varchar(20);not null" json:"form" validate:"required,oneof=boxes pcs dozen bag rolls meters kg"`
	Description string      `gorm:"type:text" json:"description"`
	Quantity    int         `gorm:"default:0" json:"quantity"` // never negative, clamped at 0
	StoreID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"store_id" validate:"uuid_required"`
	Store       *Store      `gorm:"foreignKey:StoreID" json:"store,omitempty" validate:"-"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User       `gorm:"foreignKey:OwnerID" json:"owner,omitempty" validate:"-"`
}

// ClampQuantity floors a requested quantity at zero. Negative results are
// never rejected, only clamped before persistence.
func ClampQuantity(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
