package models

import "time"

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
	Name      string    `gorm:"size:100;not null" json:"name" example:"Jean Michou"`
	Mail      string    `gorm:"size:250;not null" json:"mail" example:"jean@example.com"`
	Subject   string    `gorm:"size:100" json:"subject" example:"Question sur mon devis"`
	Message   string    `gorm:"type:text" json:"message"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
