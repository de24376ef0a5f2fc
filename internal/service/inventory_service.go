package service

import (
	"errors"
	"fmt"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/internal/ws"
	"textile-inventory-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrNotAuthorized = errors.New("not authorized for this operation")
	ErrStoreNotFound = errors.New("store not found")
)

// Products with fewer units than this show up in the low-stock alert
const LowStockThreshold = 50

type InventoryService interface {
	ListProducts(actor model.Actor, storeID *uuid.UUID) ([]model.Product, error)
	AddProduct(actor model.Actor, req *model.Product) (*model.Product, error)
	SetQuantity(actor model.Actor, productID uuid.UUID, newQuantity int) (*model.Product, error)
	AdjustQuantity(actor model.Actor, productID uuid.UUID, delta int) (*model.Product, error)
	DeleteProduct(actor model.Actor, productID uuid.UUID) error
	LowStock(actor model.Actor) ([]model.Product, error)
}

type inventoryService struct {
	backends repository.BackendSelector
	wsHub    *ws.Hub
}

func NewInventoryService(backends repository.BackendSelector, hub *ws.Hub) InventoryService {
	return &inventoryService{
		backends: backends,
		wsHub:    hub,
	}
}

func (s *inventoryService) ListProducts(actor model.Actor, storeID *uuid.UUID) ([]model.Product, error) {
	backend := s.backends.For(actor)

	products, err := backend.ListProducts(actor.OwnerScope, storeID)
	if err != nil {
		return nil, err
	}

	// Assistants only see products on stores granted to them
	if actor.Role == model.RoleAssistant {
		visible := products[:0]
		for _, p := range products {
			if actor.CanAccessStore(p.StoreID) {
				visible = append(visible, p)
			}
		}
		products = visible
	}
	return products, nil
}

func (s *inventoryService) AddProduct(actor model.Actor, req *model.Product) (*model.Product, error) {
	if actor.Role == model.RoleAssistant {
		return nil, ErrNotAuthorized
	}

	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	backend := s.backends.For(actor)

	// 2. Store must exist within the actor's catalog
	stores, err := backend.ListStores(actor.OwnerScope)
	if err != nil {
		return nil, err
	}
	found := false
	for _, st := range stores {
		if st.ID == req.StoreID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrStoreNotFound
	}

	// 3. Quantity defaults to 0, negatives are clamped never rejected
	req.Quantity = model.ClampQuantity(req.Quantity)
	req.OwnerID = actor.OwnerScope

	// 4. Persist row + "Product added" ledger entry
	entry := model.NewProductAddedLog(actor, req)
	if err := backend.CreateProduct(req, entry); err != nil {
		return nil, err
	}

	s.broadcastStockUpdate(actor, "product_added", req, 0, req.Quantity)
	return req, nil
}

// SetQuantity is the quantity-change workflow: clamp, compute the delta
// against the catalog snapshot, persist, and append exactly one ledger
// entry classified from the sign of the delta.
func (s *inventoryService) SetQuantity(actor model.Actor, productID uuid.UUID, newQuantity int) (*model.Product, error) {
	if actor.Muted {
		return nil, ErrNotAuthorized
	}

	backend := s.backends.For(actor)

	// 1. Snapshot sebelum mutasi
	product, err := s.visibleProduct(backend, actor, productID)
	if err != nil {
		return nil, err
	}

	// 2. Clamp then compute delta
	clamped := model.ClampQuantity(newQuantity)
	previous := product.Quantity

	// 3. One ledger entry per mutation, labeled from the delta sign.
	// Written atomically with the update; never written if the update fails.
	entry := model.NewQuantityChangeLog(actor, product, previous, clamped)

	updated, err := backend.UpdateQuantity(productID, clamped, entry)
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate(actor, "quantity_updated", updated, previous, clamped)
	return updated, nil
}

// AdjustQuantity backs the +1/-1 buttons. It resolves the target quantity
// and reuses SetQuantity, so the same classification rule applies.
func (s *inventoryService) AdjustQuantity(actor model.Actor, productID uuid.UUID, delta int) (*model.Product, error) {
	backend := s.backends.For(actor)

	product, err := s.visibleProduct(backend, actor, productID)
	if err != nil {
		return nil, err
	}
	return s.SetQuantity(actor, productID, product.Quantity+delta)
}

// DeleteProduct removes the row (soft delete) and logs "Product deleted".
// Distinct from SetQuantity(id, 0), which logs "Product removed" and keeps
// the row at quantity zero.
func (s *inventoryService) DeleteProduct(actor model.Actor, productID uuid.UUID) error {
	if actor.Role == model.RoleAssistant {
		return ErrNotAuthorized
	}

	backend := s.backends.For(actor)

	product, err := s.visibleProduct(backend, actor, productID)
	if err != nil {
		return err
	}

	entry := model.NewProductDeletedLog(actor, product)
	if err := backend.DeleteProduct(productID, entry); err != nil {
		return err
	}

	s.broadcastStockUpdate(actor, "product_deleted", product, product.Quantity, 0)
	return nil
}

func (s *inventoryService) LowStock(actor model.Actor) ([]model.Product, error) {
	products, err := s.ListProducts(actor, nil)
	if err != nil {
		return nil, err
	}

	var low []model.Product
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// visibleProduct loads a product and checks it belongs to the actor's
// catalog scope. Products outside the scope are reported as not found.
func (s *inventoryService) visibleProduct(backend repository.InventoryBackend, actor model.Actor, productID uuid.UUID) (*model.Product, error) {
	product, err := backend.FindProduct(productID)
	if err != nil {
		return nil, err
	}
	if product.OwnerID != actor.OwnerScope || !actor.CanAccessStore(product.StoreID) {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (s *inventoryService) broadcastStockUpdate(actor model.Actor, action string, product *model.Product, oldQty, newQty int) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"product": map[string]interface{}{
			"id":           product.ID,
			"name":         product.Name,
			"old_quantity": oldQty,
			"new_quantity": newQty,
			"store_id":     product.StoreID,
		},
		"user": map[string]interface{}{
			"id":   actor.ID,
			"name": actor.Name,
		},
		"message": fmt.Sprintf("%s: '%s' %d -> %d", actor.Name, product.Name, oldQty, newQty),
	})
}
