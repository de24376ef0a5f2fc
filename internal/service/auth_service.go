package service

import (
	"errors"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/pkg/jwt"
	"textile-inventory-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	RegisterBusiness(reg *model.BusinessRegistration) error
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type TokenValidationResponse struct {
	User model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	regRepo  repository.RegistrationRepository
}

func NewAuthService(userRepo repository.UserRepository, regRepo repository.RegistrationRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		regRepo:  regRepo,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Generate JWT token
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// RegisterBusiness files a pending registration for admin review. No user
// account exists until an admin approves it.
func (s *authService) RegisterBusiness(reg *model.BusinessRegistration) error {
	if errs := validator.ValidateStruct(reg); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	if existing, _ := s.userRepo.FindByEmail(reg.Email); existing != nil {
		return ErrEmailTaken
	}

	reg.Status = model.RegistrationPending
	return s.regRepo.Create(reg)
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	// 2. Verify old password
	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	// 3. Set new password
	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	// 4. Update in database
	return s.userRepo.Update(user)
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	// 1. Validate JWT token
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// 2. Find user by ID from token claims
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if user is still active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &TokenValidationResponse{User: user.ToResponse()}, nil
}
