package service

import (
	"testing"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnerStats(t *testing.T) {
	invSvc, backend, owner, store := setup(t)
	svc := NewDashboardService(repository.BackendSelector{Remote: backend, Demo: newMockBackend()}, newMockUserRepo(), newMockRegRepo())

	addProduct(t, invSvc, owner, store, "Cotton Fabric", 150)
	addProduct(t, invSvc, owner, store, "Silk Thread", 12)

	stats, err := svc.GetOwnerStats(owner)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalStores)
	assert.Equal(t, 162, stats.TotalProducts) // sum of quantities
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 2, stats.RecentActivity) // two "Product added" entries
}

func TestGetAdminStats(t *testing.T) {
	userRepo := newMockUserRepo()
	regRepo := newMockRegRepo()
	svc := NewDashboardService(repository.BackendSelector{}, userRepo, regRepo)

	seedUser(t, userRepo, "owner@example.com", "secret123", true)
	assistant := &model.User{Email: "juma@example.com", Role: model.RoleAssistant, IsActive: true}
	require.NoError(t, userRepo.Create(assistant))

	require.NoError(t, regRepo.Create(&model.BusinessRegistration{
		BusinessName: "Pending Biz", OwnerName: "P", Email: "p@example.com",
		Status: model.RegistrationPending,
	}))
	reviewed := &model.BusinessRegistration{
		BusinessName: "Done Biz", OwnerName: "D", Email: "d@example.com",
		Status: model.RegistrationApproved,
	}
	require.NoError(t, regRepo.Create(reviewed))

	stats, err := svc.GetAdminStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PendingRegistrations)
	assert.Equal(t, int64(1), stats.BusinessOwners)
	assert.Equal(t, int64(1), stats.Assistants)
}
