package service

import (
	"testing"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRegistration(t *testing.T, regRepo *mockRegRepo) *model.BusinessRegistration {
	t.Helper()
	reg := &model.BusinessRegistration{
		BusinessName: "Kariakoo Textiles",
		OwnerName:    "Amina",
		Email:        "amina@example.com",
		PhoneNumber:  "+255700000001",
		Location:     "Kariakoo, Dar es Salaam",
		Status:       model.RegistrationPending,
	}
	require.NoError(t, regRepo.Create(reg))
	return reg
}

func TestApproveRegistration(t *testing.T) {
	userRepo := newMockUserRepo()
	regRepo := newMockRegRepo()
	svc := NewRegistrationService(regRepo, userRepo)
	admin := model.Actor{ID: uuid.New(), Role: model.RoleAdmin}

	reg := pendingRegistration(t, regRepo)

	owner, err := svc.Approve(admin, reg.ID, "welcome123")
	require.NoError(t, err)

	assert.Equal(t, "amina@example.com", owner.Email)
	assert.Equal(t, model.RoleBusinessOwner, owner.Role)
	assert.Equal(t, "Kariakoo Textiles", owner.BusinessName)
	assert.True(t, owner.IsActive)
	assert.True(t, owner.CheckPassword("welcome123"))

	stored, err := regRepo.FindByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationApproved, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, admin.ID, *stored.ReviewedBy)
	assert.NotNil(t, stored.ReviewedAt)

	t.Run("Second review is rejected", func(t *testing.T) {
		_, err := svc.Approve(admin, reg.ID, "welcome123")
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})

	t.Run("Unknown registration", func(t *testing.T) {
		_, err := svc.Approve(admin, uuid.New(), "welcome123")
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})
}

func TestRejectRegistration(t *testing.T) {
	userRepo := newMockUserRepo()
	regRepo := newMockRegRepo()
	svc := NewRegistrationService(regRepo, userRepo)
	admin := model.Actor{ID: uuid.New(), Role: model.RoleAdmin}

	reg := pendingRegistration(t, regRepo)
	require.NoError(t, svc.Reject(admin, reg.ID))

	stored, err := regRepo.FindByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationRejected, stored.Status)

	// no account was provisioned
	_, err = userRepo.FindByEmail(reg.Email)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.Reject(admin, reg.ID), ErrAlreadyReviewed)
}

func TestListRegistrations(t *testing.T) {
	regRepo := newMockRegRepo()
	svc := NewRegistrationService(regRepo, newMockUserRepo())
	admin := model.Actor{ID: uuid.New(), Role: model.RoleAdmin}

	first := pendingRegistration(t, regRepo)
	second := &model.BusinessRegistration{
		BusinessName: "Msimbazi Fabrics",
		OwnerName:    "Juma",
		Email:        "juma@example.com",
		Status:       model.RegistrationPending,
	}
	require.NoError(t, regRepo.Create(second))
	require.NoError(t, svc.Reject(admin, second.ID))

	pending, err := svc.List(model.RegistrationPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
