package repository

import (
	"assurly/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	SaveMessage(message *models.ContactMessage) error
	GetAllMessages() ([]models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db}
}

func (r *contactRepository) SaveMessage(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetAllMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
