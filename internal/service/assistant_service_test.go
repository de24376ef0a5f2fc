package service

import (
	"errors"
	"testing"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAssistantRepo struct {
	links map[uuid.UUID]*model.Assistant
}

func newMockAssistantRepo() *mockAssistantRepo {
	return &mockAssistantRepo{links: make(map[uuid.UUID]*model.Assistant)}
}

func (m *mockAssistantRepo) Create(link *model.Assistant) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	m.links[link.ID] = link
	return nil
}

func (m *mockAssistantRepo) Update(link *model.Assistant) error {
	m.links[link.ID] = link
	return nil
}

func (m *mockAssistantRepo) FindByID(id uuid.UUID) (*model.Assistant, error) {
	if l, ok := m.links[id]; ok {
		return l, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockAssistantRepo) FindByAssistantUser(assistantID uuid.UUID) (*model.Assistant, error) {
	for _, l := range m.links {
		if l.AssistantID == assistantID {
			return l, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockAssistantRepo) FindByOwner(ownerID uuid.UUID) ([]model.Assistant, error) {
	var out []model.Assistant
	for _, l := range m.links {
		if l.BusinessOwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func TestRegisterAssistant(t *testing.T) {
	userRepo := newMockUserRepo()
	assistantRepo := newMockAssistantRepo()
	svc := NewAssistantService(assistantRepo, userRepo)

	owner := model.Actor{ID: uuid.New(), Role: model.RoleBusinessOwner}
	storeID := uuid.New()

	link, err := svc.Register(owner, &AssistantInvite{
		Email:       "juma@example.com",
		Name:        "Juma",
		Password:    "secret123",
		StoreAccess: []uuid.UUID{storeID},
	})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, link.BusinessOwnerID)
	assert.True(t, link.IsActive)
	assert.False(t, link.IsMuted)
	assert.Equal(t, []uuid.UUID{storeID}, link.StoreIDs())

	require.NotNil(t, link.AssistantUser)
	assert.Equal(t, model.RoleAssistant, link.AssistantUser.Role)
	assert.True(t, link.AssistantUser.CheckPassword("secret123"))

	links, err := svc.List(owner)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	t.Run("Email already taken", func(t *testing.T) {
		_, err := svc.Register(owner, &AssistantInvite{
			Email: "juma@example.com", Name: "Other", Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAssistantLinkManagement(t *testing.T) {
	userRepo := newMockUserRepo()
	assistantRepo := newMockAssistantRepo()
	svc := NewAssistantService(assistantRepo, userRepo)

	owner := model.Actor{ID: uuid.New(), Role: model.RoleBusinessOwner}
	link, err := svc.Register(owner, &AssistantInvite{
		Email: "juma@example.com", Name: "Juma", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("SetStoreAccess", func(t *testing.T) {
		stores := []uuid.UUID{uuid.New(), uuid.New()}
		updated, err := svc.SetStoreAccess(owner, link.ID, stores)
		require.NoError(t, err)
		assert.Equal(t, stores, updated.StoreIDs())
	})

	t.Run("SetMuted", func(t *testing.T) {
		require.NoError(t, svc.SetMuted(owner, link.ID, true))
		stored, err := assistantRepo.FindByID(link.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsMuted)
	})

	t.Run("SetActive", func(t *testing.T) {
		require.NoError(t, svc.SetActive(owner, link.ID, false))
		stored, err := assistantRepo.FindByID(link.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("Another owner cannot touch the link", func(t *testing.T) {
		stranger := model.Actor{ID: uuid.New(), Role: model.RoleBusinessOwner}
		assert.ErrorIs(t, svc.SetMuted(stranger, link.ID, true), ErrAssistantNotFound)
		_, err := svc.SetStoreAccess(stranger, link.ID, nil)
		assert.ErrorIs(t, err, ErrAssistantNotFound)
	})
}
