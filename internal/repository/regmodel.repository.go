package repository

import (
	"assurly/internal/models"

	"gorm.io/gorm"
)

type RegModelRepository interface {
	CreateRegModel(model *models.RegModel) error
	GetRegModelByID(id uint) (*models.RegModel, error)
	GetAllRegModels() ([]models.RegModel, error)
	DeleteRegModel(id uint) error
}

type regModelRepository struct {
	db *gorm.DB
}

func NewRegModelRepository(db *gorm.DB) RegModelRepository {
	return &regModelRepository{db}
}

func (r *regModelRepository) CreateRegModel(model *models.RegModel) error {
	return r.db.Create(model).Error
}

func (r *regModelRepository) GetRegModelByID(id uint) (*models.RegModel, error) {
	var model models.RegModel
	err := r.db.First(&model, id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *regModelRepository) GetAllRegModels() ([]models.RegModel, error) {
	var regModels []models.RegModel
	err := r.db.Order("id").Find(&regModels).Error
	return regModels, err
}

func (r *regModelRepository) DeleteRegModel(id uint) error {
	return r.db.Delete(&models.RegModel{}, id).Error
}
