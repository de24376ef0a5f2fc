package model

import (
	"strings"

	"github.com/google/uuid"
)

// Assistant links an assistant account to the business owner that invited
// it. StoreAccess holds the IDs of the stores the assistant may touch,
// stored as a comma separated list (small, bounded per owner).
type Assistant struct {
	BaseModel
	AssistantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"assistant_id" validate:"uuid_required"`
	BusinessOwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_owner_id" validate:"uuid_required"`
	AssistantUser   *User     `gorm:"foreignKey:AssistantID" json:"assistant_user,omitempty" validate:"-"`
	StoreAccess     string    `gorm:"type:text" json:"store_access"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsMuted         bool      `gorm:"default:false" json:"is_muted"`
}

// StoreIDs parses the serialized store access list
func (a *Assistant) StoreIDs() []uuid.UUID {
	if a.StoreAccess == "" {
		return nil
	}
	parts := strings.Split(a.StoreAccess, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		if id, err := uuid.Parse(strings.TrimSpace(p)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetStoreIDs serializes the store access list
func (a *Assistant) SetStoreIDs(ids []uuid.UUID) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	a.StoreAccess = strings.Join(parts, ",")
}
