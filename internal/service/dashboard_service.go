package service

import (
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
)

// OwnerStats backs the business owner dashboard cards
type OwnerStats struct {
	TotalStores    int `json:"total_stores"`
	TotalProducts  int `json:"total_products"` // sum of quantities across the catalog
	LowStockItems  int `json:"low_stock_items"`
	RecentActivity int `json:"recent_activity"`
}

// AdminStats backs the admin overview
type AdminStats struct {
	PendingRegistrations int64 `json:"pending_registrations"`
	BusinessOwners       int64 `json:"business_owners"`
	Assistants           int64 `json:"assistants"`
}

type DashboardService interface {
	GetOwnerStats(actor model.Actor) (*OwnerStats, error)
	GetAdminStats() (*AdminStats, error)
}

type dashboardService struct {
	backends repository.BackendSelector
	userRepo repository.UserRepository
	regRepo  repository.RegistrationRepository
}

func NewDashboardService(backends repository.BackendSelector, userRepo repository.UserRepository, regRepo repository.RegistrationRepository) DashboardService {
	return &dashboardService{
		backends: backends,
		userRepo: userRepo,
		regRepo:  regRepo,
	}
}

func (s *dashboardService) GetOwnerStats(actor model.Actor) (*OwnerStats, error) {
	backend := s.backends.For(actor)

	stores, err := backend.ListStores(actor.OwnerScope)
	if err != nil {
		return nil, err
	}
	products, err := backend.ListProducts(actor.OwnerScope, nil)
	if err != nil {
		return nil, err
	}
	activities, err := backend.ListActivities(actor, repository.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	stats := &OwnerStats{
		TotalStores:    len(stores),
		RecentActivity: len(activities),
	}
	for _, p := range products {
		stats.TotalProducts += p.Quantity
		if p.Quantity < LowStockThreshold {
			stats.LowStockItems++
		}
	}
	return stats, nil
}

func (s *dashboardService) GetAdminStats() (*AdminStats, error) {
	pending, err := s.regRepo.CountPending()
	if err != nil {
		return nil, err
	}
	owners, err := s.userRepo.CountByRole(model.RoleBusinessOwner)
	if err != nil {
		return nil, err
	}
	assistants, err := s.userRepo.CountByRole(model.RoleAssistant)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		PendingRegistrations: pending,
		BusinessOwners:       owners,
		Assistants:           assistants,
	}, nil
}
