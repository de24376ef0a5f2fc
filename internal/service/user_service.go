package service

import (
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the admin-side account management surface
type UserService interface {
	GetUsers() ([]model.UserResponse, error)
	GetUser(id uuid.UUID) (*model.UserResponse, error)
	SetActive(id uuid.UUID, active bool) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUser(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

// SetActive deactivates or reactivates an account; accounts are never deleted
func (s *userService) SetActive(id uuid.UUID, active bool) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.SetActive(id, active)
}
