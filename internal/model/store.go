package model

import "github.com/google/uuid"

// Store is an owned inventory location. Stores are never hard-deleted,
// only deactivated.
type Store struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id" validate:"uuid_required"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty" validate:"-"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}
