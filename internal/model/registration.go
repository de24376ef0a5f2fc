package model

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// BusinessRegistration is a pending request to open a business owner
// account. Admins review and approve or reject them.
type BusinessRegistration struct {
	BaseModel
	BusinessName string             `gorm:"type:varchar(255);not null" json:"business_name" validate:"required"`
	OwnerName    string             `gorm:"type:varchar(255);not null" json:"owner_name" validate:"required"`
	Email        string             `gorm:"type:varchar(255);not null;index" json:"email" validate:"required,email"`
	PhoneNumber  string             `gorm:"type:varchar(20)" json:"phone_number"`
	Location     string             `gorm:"type:varchar(255)" json:"location"`
	Description  string             `gorm:"type:text" json:"description"`
	Status       RegistrationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ReviewedBy   *uuid.UUID         `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time         `json:"reviewed_at,omitempty"`
}
