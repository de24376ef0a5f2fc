package service

import (
	"errors"
	"time"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyReviewed      = errors.New("registration has already been reviewed")
)

type RegistrationService interface {
	List(status model.RegistrationStatus) ([]model.BusinessRegistration, error)
	Approve(reviewer model.Actor, id uuid.UUID, initialPassword string) (*model.User, error)
	Reject(reviewer model.Actor, id uuid.UUID) error
}

type registrationService struct {
	regRepo  repository.RegistrationRepository
	userRepo repository.UserRepository
}

func NewRegistrationService(regRepo repository.RegistrationRepository, userRepo repository.UserRepository) RegistrationService {
	return &registrationService{
		regRepo:  regRepo,
		userRepo: userRepo,
	}
}

func (s *registrationService) List(status model.RegistrationStatus) ([]model.BusinessRegistration, error) {
	if status == "" {
		return s.regRepo.FindAll()
	}
	return s.regRepo.FindByStatus(status)
}

// Approve provisions a business owner account from the registration and
// stamps the review. The account starts active with the given password.
func (s *registrationService) Approve(reviewer model.Actor, id uuid.UUID, initialPassword string) (*model.User, error) {
	reg, err := s.regRepo.FindByID(id)
	if err != nil {
		return nil, ErrRegistrationNotFound
	}
	if reg.Status != model.RegistrationPending {
		return nil, ErrAlreadyReviewed
	}

	if existing, _ := s.userRepo.FindByEmail(reg.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	owner := &model.User{
		Email:        reg.Email,
		Name:         reg.OwnerName,
		PhoneNumber:  reg.PhoneNumber,
		Role:         model.RoleBusinessOwner,
		BusinessName: reg.BusinessName,
		Location:     reg.Location,
		IsActive:     true,
	}
	if err := owner.SetPassword(initialPassword); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(owner); err != nil {
		return nil, err
	}

	now := time.Now()
	reviewerID := reviewer.ID
	reg.Status = model.RegistrationApproved
	reg.ReviewedBy = &reviewerID
	reg.ReviewedAt = &now
	if err := s.regRepo.Update(reg); err != nil {
		return nil, err
	}

	return owner, nil
}

func (s *registrationService) Reject(reviewer model.Actor, id uuid.UUID) error {
	reg, err := s.regRepo.FindByID(id)
	if err != nil {
		return ErrRegistrationNotFound
	}
	if reg.Status != model.RegistrationPending {
		return ErrAlreadyReviewed
	}

	now := time.Now()
	reviewerID := reviewer.ID
	reg.Status = model.RegistrationRejected
	reg.ReviewedBy = &reviewerID
	reg.ReviewedAt = &now
	return s.regRepo.Update(reg)
}
