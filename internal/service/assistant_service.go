package service

import (
	"errors"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"

	"github.com/google/uuid"
)

var ErrAssistantNotFound = errors.New("assistant not found")

// AssistantInvite is the payload a business owner submits to register an
// assistant account under their business.
type AssistantInvite struct {
	Email       string      `json:"email" validate:"required,email"`
	Name        string      `json:"name" validate:"required"`
	Password    string      `json:"password" validate:"required,min=6"`
	StoreAccess []uuid.UUID `json:"store_access"`
}

type AssistantService interface {
	List(owner model.Actor) ([]model.Assistant, error)
	Register(owner model.Actor, invite *AssistantInvite) (*model.Assistant, error)
	SetStoreAccess(owner model.Actor, linkID uuid.UUID, storeIDs []uuid.UUID) (*model.Assistant, error)
	SetActive(owner model.Actor, linkID uuid.UUID, active bool) error
	SetMuted(owner model.Actor, linkID uuid.UUID, muted bool) error
}

type assistantService struct {
	assistantRepo repository.AssistantRepository
	userRepo      repository.UserRepository
}

func NewAssistantService(assistantRepo repository.AssistantRepository, userRepo repository.UserRepository) AssistantService {
	return &assistantService{
		assistantRepo: assistantRepo,
		userRepo:      userRepo,
	}
}

func (s *assistantService) List(owner model.Actor) ([]model.Assistant, error) {
	return s.assistantRepo.FindByOwner(owner.ID)
}

// Register creates the assistant user account and the link row tying it to
// the owner's business.
func (s *assistantService) Register(owner model.Actor, invite *AssistantInvite) (*model.Assistant, error) {
	if existing, _ := s.userRepo.FindByEmail(invite.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	account := &model.User{
		Email:    invite.Email,
		Name:     invite.Name,
		Role:     model.RoleAssistant,
		IsActive: true,
	}
	if err := account.SetPassword(invite.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(account); err != nil {
		return nil, err
	}

	link := &model.Assistant{
		AssistantID:     account.ID,
		BusinessOwnerID: owner.ID,
		IsActive:        true,
	}
	link.SetStoreIDs(invite.StoreAccess)
	if err := s.assistantRepo.Create(link); err != nil {
		return nil, err
	}

	link.AssistantUser = account
	return link, nil
}

func (s *assistantService) SetStoreAccess(owner model.Actor, linkID uuid.UUID, storeIDs []uuid.UUID) (*model.Assistant, error) {
	link, err := s.ownedLink(owner, linkID)
	if err != nil {
		return nil, err
	}

	link.SetStoreIDs(storeIDs)
	if err := s.assistantRepo.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *assistantService) SetActive(owner model.Actor, linkID uuid.UUID, active bool) error {
	link, err := s.ownedLink(owner, linkID)
	if err != nil {
		return err
	}
	link.IsActive = active
	return s.assistantRepo.Update(link)
}

func (s *assistantService) SetMuted(owner model.Actor, linkID uuid.UUID, muted bool) error {
	link, err := s.ownedLink(owner, linkID)
	if err != nil {
		return err
	}
	link.IsMuted = muted
	return s.assistantRepo.Update(link)
}

// ownedLink loads the link row and checks it belongs to the calling owner
func (s *assistantService) ownedLink(owner model.Actor, linkID uuid.UUID) (*model.Assistant, error) {
	link, err := s.assistantRepo.FindByID(linkID)
	if err != nil {
		return nil, ErrAssistantNotFound
	}
	if link.BusinessOwnerID != owner.ID {
		return nil, ErrAssistantNotFound
	}
	return link, nil
}
