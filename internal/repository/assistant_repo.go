package repository

import (
	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssistantRepository interface {
	Create(link *model.Assistant) error
	Update(link *model.Assistant) error
	FindByID(id uuid.UUID) (*model.Assistant, error)
	FindByAssistantUser(assistantID uuid.UUID) (*model.Assistant, error)
	FindByOwner(ownerID uuid.UUID) ([]model.Assistant, error)
}

type assistantRepo struct {
	db *gorm.DB
}

func NewAssistantRepo(db *gorm.DB) AssistantRepository {
	return &assistantRepo{db}
}

func (r *assistantRepo) Create(link *model.Assistant) error {
	return r.db.Create(link).Error
}

func (r *assistantRepo) Update(link *model.Assistant) error {
	return r.db.Save(link).Error
}

func (r *assistantRepo) FindByID(id uuid.UUID) (*model.Assistant, error) {
	var link model.Assistant
	if err := r.db.Preload("AssistantUser").First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *assistantRepo) FindByAssistantUser(assistantID uuid.UUID) (*model.Assistant, error) {
	var link model.Assistant
	if err := r.db.First(&link, "assistant_id = ?", assistantID).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *assistantRepo) FindByOwner(ownerID uuid.UUID) ([]model.Assistant, error) {
	var links []model.Assistant
	err := r.db.Preload("AssistantUser").Where("business_owner_id = ?", ownerID).Order("created_at DESC").Find(&links).Error
	return links, err
}
