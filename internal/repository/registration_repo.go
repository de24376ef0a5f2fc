package repository

import (
	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(reg *model.BusinessRegistration) error
	Update(reg *model.BusinessRegistration) error
	FindByID(id uuid.UUID) (*model.BusinessRegistration, error)
	FindByStatus(status model.RegistrationStatus) ([]model.BusinessRegistration, error)
	FindAll() ([]model.BusinessRegistration, error)
	CountPending() (int64, error)
}

type registrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db}
}

func (r *registrationRepo) Create(reg *model.BusinessRegistration) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepo) Update(reg *model.BusinessRegistration) error {
	return r.db.Save(reg).Error
}

func (r *registrationRepo) FindByID(id uuid.UUID) (*model.BusinessRegistration, error) {
	var reg model.BusinessRegistration
	if err := r.db.First(&reg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepo) FindByStatus(status model.RegistrationStatus) ([]model.BusinessRegistration, error) {
	var regs []model.BusinessRegistration
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&regs).Error
	return regs, err
}

func (r *registrationRepo) FindAll() ([]model.BusinessRegistration, error) {
	var regs []model.BusinessRegistration
	err := r.db.Order("created_at DESC").Find(&regs).Error
	return regs, err
}

func (r *registrationRepo) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.BusinessRegistration{}).Where("status = ?", model.RegistrationPending).Count(&count).Error
	return count, err
}
