package repository

import (
	"assurly/internal/models"

	"gorm.io/gorm"
)

// PredictionFilter carries the optional criteria and sort of a staff listing.
// The whole struct validates as one unit through gin's query binding; a
// validation failure means the entire filter is skipped (nil filter), never a
// partial application.
type PredictionFilter struct {
	User        string   `form:"user"`
	MinAge      *int     `form:"min_age" binding:"omitempty,gte=0,lte=200"`
	MaxAge      *int     `form:"max_age" binding:"omitempty,gte=0,lte=200"`
	MinChildren *int     `form:"min_children" binding:"omitempty,gte=0,lte=20"`
	MaxChildren *int     `form:"max_children" binding:"omitempty,gte=0,lte=20"`
	MinWeight   *float64 `form:"min_weight" binding:"omitempty,gte=0,lte=300"`
	MaxWeight   *float64 `form:"max_weight" binding:"omitempty,gte=0,lte=300"`
	MinHeight   *float64 `form:"min_height" binding:"omitempty,gte=0,lte=300"`
	MaxHeight   *float64 `form:"max_height" binding:"omitempty,gte=0,lte=300"`
	Sex         string   `form:"sex" binding:"omitempty,oneof=female male"`
	Smoker      string   `form:"smoker" binding:"omitempty,oneof=yes no"`
	Region      string   `form:"region" binding:"omitempty,oneof=southeast southwest northeast northwest"`
	RegModel    string   `form:"reg_model"`
	SortBy      string   `form:"sort_by" binding:"omitempty,oneof=age weight height result"`
	Order       string   `form:"order" binding:"omitempty,oneof=asc desc"`
}

// sortColumns maps the permitted sort keys onto their SQL columns. The
// repository never interpolates a caller-supplied string into ORDER BY; a
// key outside this map means no ordering is applied.
var sortColumns = map[string]string{
	"age":    "predictions.age",
	"weight": "predictions.weight",
	"height": "predictions.height",
	"result": "predictions.result",
}

type PredictionRepository interface {
	SavePrediction(prediction *models.Prediction) error
	UpdatePrediction(prediction *models.Prediction) error
	GetPredictionByID(id uint) (*models.Prediction, error)
	GetPredictionByAuthor(madeByID uint) (*models.Prediction, error)
	FindPredictions(filter *PredictionFilter) ([]models.Prediction, error)
	DeletePrediction(id uint) error
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db}
}

func (r *predictionRepository) SavePrediction(prediction *models.Prediction) error {
	return r.db.Create(prediction).Error
}

func (r *predictionRepository) UpdatePrediction(prediction *models.Prediction) error {
	return r.db.Save(prediction).Error
}

func (r *predictionRepository) GetPredictionByID(id uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.Preload("User").Preload("RegModel").First(&prediction, id).Error
	if err != nil {
		return nil, err
	}
	return &prediction, nil
}

func (r *predictionRepository) GetPredictionByAuthor(madeByID uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.Preload("RegModel").Where("made_by_id = ?", madeByID).First(&prediction).Error
	if err != nil {
		return nil, err
	}
	return &prediction, nil
}

// FindPredictions applies the filter criteria and sort to the base collection.
// A nil filter returns everything unfiltered and unsorted.
func (r *predictionRepository) FindPredictions(filter *PredictionFilter) ([]models.Prediction, error) {
	q := r.db.Model(&models.Prediction{}).Preload("User").Preload("RegModel")

	if filter != nil {
		if filter.User != "" {
			q = q.Joins("JOIN users ON users.id = predictions.user_id").
				Where("users.username ILIKE ?", "%"+filter.User+"%")
		}
		if filter.MinAge != nil {
			q = q.Where("age >= ?", *filter.MinAge)
		}
		if filter.MaxAge != nil {
			q = q.Where("age <= ?", *filter.MaxAge)
		}
		if filter.MinChildren != nil {
			q = q.Where("children >= ?", *filter.MinChildren)
		}
		if filter.MaxChildren != nil {
			q = q.Where("children <= ?", *filter.MaxChildren)
		}
		if filter.MinWeight != nil {
			q = q.Where("weight >= ?", *filter.MinWeight)
		}
		if filter.MaxWeight != nil {
			q = q.Where("weight <= ?", *filter.MaxWeight)
		}
		if filter.MinHeight != nil {
			q = q.Where("height >= ?", *filter.MinHeight)
		}
		if filter.MaxHeight != nil {
			q = q.Where("height <= ?", *filter.MaxHeight)
		}
		if filter.Sex != "" {
			q = q.Where("sex = ?", filter.Sex)
		}
		if filter.Smoker != "" {
			q = q.Where("smoker = ?", filter.Smoker)
		}
		if filter.Region != "" {
			q = q.Where("region = ?", filter.Region)
		}
		if filter.RegModel != "" {
			q = q.Joins("JOIN reg_models ON reg_models.id = predictions.reg_model_id").
				Where("reg_models.name ILIKE ?", "%"+filter.RegModel+"%")
		}
		if column, ok := sortColumns[filter.SortBy]; ok {
			direction := "ASC"
			if filter.Order == "desc" {
				direction = "DESC"
			}
			q = q.Order(column + " " + direction)
		}
	}

	var predictions []models.Prediction
	err := q.Find(&predictions).Error
	return predictions, err
}

func (r *predictionRepository) DeletePrediction(id uint) error {
	return r.db.Delete(&models.Prediction{}, id).Error
}
