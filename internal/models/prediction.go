package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// Canonical (model locale) vocabularies for the categorical features.
const (
	SexFemale = "female"
	SexMale   = "male"

	SmokerYes = "yes"
	SmokerNo  = "no"

	RegionSoutheast = "southeast"
	RegionSouthwest = "southwest"
	RegionNortheast = "northeast"
	RegionNorthwest = "northwest"
)

// RegModel is a registered regression model: a human-readable name and the
// path to its serialized predictor artifact. Created at seed time or by staff,
// read-only afterwards. The predictor itself is reloaded from disk on every
// inference call.
type RegModel struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
	Name      string    `gorm:"size:200;not null" json:"name" example:"lasso model"`
	Path      string    `gorm:"size:255;not null" json:"path" example:"regression/models/best_lasso_model.json"`
}

func (RegModel) TableName() string {
	return "reg_models"
}

// FeatureSet is the immutable tuple of rider attributes a premium is computed
// from. Categorical fields are always in model locale here.
type FeatureSet struct {
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	Children int     `json:"children"`
	Smoker   string  `json:"smoker"`
	Region   string  `json:"region"`
}

// BMI derives the body-mass index from weight (kg) and height (cm).
func (f FeatureSet) BMI() float64 {
	return f.Weight / math.Pow(f.Height/100, 2)
}

// ValidateCategoricals checks that the categorical fields hold canonical
// model-locale values. Callers must run locale conversion first.
func (f FeatureSet) ValidateCategoricals() error {
	switch f.Sex {
	case SexFemale, SexMale:
	default:
		return fmt.Errorf("invalid sex value %q", f.Sex)
	}
	switch f.Smoker {
	case SmokerYes, SmokerNo:
	default:
		return fmt.Errorf("invalid smoker value %q", f.Smoker)
	}
	switch f.Region {
	case RegionSoutheast, RegionSouthwest, RegionNortheast, RegionNorthwest:
	default:
		return fmt.Errorf("invalid region value %q", f.Region)
	}
	return nil
}

// Prediction is a quoting request and its computed premium. Categorical fields
// are stored in model locale at all times; display-locale rendering goes
// through a separate projection and never touches the stored record.
type Prediction struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at" example:"2025-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2025-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Age         int            `gorm:"not null" json:"age" example:"30"`
	Sex         string         `gorm:"size:6;not null" json:"sex" example:"female"`
	Weight      float64        `gorm:"not null" json:"weight" example:"70.5"`
	Height      float64        `gorm:"not null" json:"height" example:"170"`
	Children    int            `gorm:"not null" json:"children" example:"2"`
	Smoker      string         `gorm:"size:3;not null" json:"smoker" example:"no"`
	Region      string         `gorm:"size:9;not null" json:"region" example:"southwest"`
	Result      *float64       `json:"result,omitempty" example:"12510.44"`
	UserID      *uint          `gorm:"index" json:"user_id,omitempty" example:"1"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RegModelID  *uint          `json:"reg_model_id,omitempty" example:"2"`
	RegModel    *RegModel      `gorm:"foreignKey:RegModelID;constraint:OnDelete:SET NULL" json:"reg_model,omitempty"`
	MadeByID    uint           `gorm:"index;not null" json:"made_by_id" example:"3"`
	MadeBy      *User          `gorm:"foreignKey:MadeByID" json:"-"`
	MadeByStaff bool           `gorm:"default:false" json:"made_by_staff" example:"false"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// Features builds the value object handed to the resolver and registry.
func (p *Prediction) Features() FeatureSet {
	return FeatureSet{
		Age:      p.Age,
		Sex:      p.Sex,
		Weight:   p.Weight,
		Height:   p.Height,
		Children: p.Children,
		Smoker:   p.Smoker,
		Region:   p.Region,
	}
}

// ApplyFeatures copies a canonical feature set onto the stored fields.
func (p *Prediction) ApplyFeatures(f FeatureSet) {
	p.Age = f.Age
	p.Sex = f.Sex
	p.Weight = f.Weight
	p.Height = f.Height
	p.Children = f.Children
	p.Smoker = f.Smoker
	p.Region = f.Region
}

// PredictionRequest is the quoting form. Categorical fields may arrive in
// either vocabulary; the locale tag declares which one, and the controller
// converts to model locale before validation completes.
type PredictionRequest struct {
	Age      int     `json:"age" binding:"min=0,max=130"`
	Sex      string  `json:"sex" binding:"required"`
	Weight   float64 `json:"weight" binding:"required,gte=1,lte=300"`
	Height   float64 `json:"height" binding:"required,gte=30,lte=300"`
	Children int     `json:"children" binding:"min=0,max=20"`
	Smoker   string  `json:"smoker" binding:"required"`
	Region   string  `json:"region" binding:"required"`
	Locale   string  `json:"locale" binding:"omitempty,oneof=en fr"`
}

// StaffPredictionRequest adds the staff-only fields: an optional subject user
// and the regression model the advisor wants to run.
type StaffPredictionRequest struct {
	PredictionRequest
	UserID     *uint `json:"user_id"`
	RegModelID *uint `json:"reg_model_id"`
}
