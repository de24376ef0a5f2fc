package service

import (
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/pkg/validator"

	"github.com/google/uuid"
)

type StoreService interface {
	ListStores(actor model.Actor) ([]model.Store, error)
	AddStore(actor model.Actor, req *model.Store) (*model.Store, error)
	SetActive(actor model.Actor, storeID uuid.UUID, active bool) error
}

type storeService struct {
	backends repository.BackendSelector
}

func NewStoreService(backends repository.BackendSelector) StoreService {
	return &storeService{backends: backends}
}

func (s *storeService) ListStores(actor model.Actor) ([]model.Store, error) {
	stores, err := s.backends.For(actor).ListStores(actor.OwnerScope)
	if err != nil {
		return nil, err
	}

	if actor.Role == model.RoleAssistant {
		visible := stores[:0]
		for _, st := range stores {
			if actor.CanAccessStore(st.ID) {
				visible = append(visible, st)
			}
		}
		stores = visible
	}
	return stores, nil
}

func (s *storeService) AddStore(actor model.Actor, req *model.Store) (*model.Store, error) {
	if actor.Role == model.RoleAssistant {
		return nil, ErrNotAuthorized
	}

	req.OwnerID = actor.OwnerScope
	req.IsActive = true
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if err := s.backends.For(actor).CreateStore(req); err != nil {
		return nil, err
	}
	return req, nil
}

// SetActive deactivates or reactivates a store. Stores are never deleted.
func (s *storeService) SetActive(actor model.Actor, storeID uuid.UUID, active bool) error {
	if actor.Role == model.RoleAssistant {
		return ErrNotAuthorized
	}

	backend := s.backends.For(actor)
	stores, err := backend.ListStores(actor.OwnerScope)
	if err != nil {
		return err
	}
	for _, st := range stores {
		if st.ID == storeID {
			return backend.SetStoreActive(storeID, active)
		}
	}
	return ErrStoreNotFound
}
