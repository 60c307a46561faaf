package repository

import (
	"assurly/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	ListStaff() ([]models.StaffProfile, error)
	SaveStaffProfile(profile *models.StaffProfile) error
	GetStaffProfile(userID uint) (*models.StaffProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

func (r *userRepository) ListStaff() ([]models.StaffProfile, error) {
	var profiles []models.StaffProfile
	err := r.db.Preload("User").Find(&profiles).Error
	return profiles, err
}

func (r *userRepository) SaveStaffProfile(profile *models.StaffProfile) error {
	return r.db.Save(profile).Error
}

func (r *userRepository) GetStaffProfile(userID uint) (*models.StaffProfile, error) {
	var profile models.StaffProfile
	err := r.db.Preload("User").First(&profile, userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
