package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role determines what a user may do. Fixed set, immutable per session.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBusinessOwner Role = "business_owner"
	RoleAssistant     Role = "assistant"
)

// User represents an account in the system (admin, business owner, or assistant)
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name         string `gorm:"type:varchar(255)" json:"name" validate:"required"`
	PhoneNumber  string `gorm:"type:varchar(20)" json:"phone_number"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=admin business_owner assistant"`
	BusinessName string `gorm:"type:varchar(255)" json:"business_name"`
	Location     string `gorm:"type:varchar(255)" json:"location"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	Role         Role      `json:"role"`
	BusinessName string    `json:"business_name,omitempty"`
	Location     string    `json:"location,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PhoneNumber:  u.PhoneNumber,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		Location:     u.Location,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}
