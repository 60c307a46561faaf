package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2025-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2025-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Username  string         `gorm:"size:150;unique;not null" json:"username" example:"jeanmichou"`
	FirstName string         `gorm:"size:30;not null" json:"first_name" example:"Jean"`
	LastName  string         `gorm:"size:30;not null" json:"last_name" example:"Michou"`
	Email     string         `gorm:"size:250;unique" json:"email" example:"jean@example.com"`
	Password  string         `json:"-"`
	Age       *int           `json:"age,omitempty" example:"72"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	IsStaff   bool           `gorm:"default:false" json:"is_staff" example:"false"`
}

func (User) TableName() string {
	return "users"
}

// StaffProfile extends a staff User with the advisor directory fields.
type StaffProfile struct {
	UserID      uint   `gorm:"primaryKey" json:"user_id" example:"3"`
	User        User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string `gorm:"size:300" json:"title" example:"Conseillère en Assurance - Lu Divine"`
	Description string `gorm:"type:text" json:"description"`
	Img         string `gorm:"size:255" json:"img" example:"css/dist/ludi_licorne.jpg"`
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}
