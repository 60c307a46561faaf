package repository

import (
	"errors"
	"time"

	"assurly/internal/models"

	"gorm.io/gorm"
)

// ErrOutsideAvailability refuses persistence of an appointment whose time
// range falls outside every availability window of the staff member.
var ErrOutsideAvailability = errors.New("appointment is outside the staff member's availability")

type AvailabilityRepository interface {
	CreateAvailability(availability *models.Availability) error
	GetAvailabilitiesByStaff(staffUserID uint) ([]models.Availability, error)
	IsAdmissible(staffUserID uint, date time.Time, startTime, endTime string) (bool, error)
	DeleteAvailability(id uint) error
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db}
}

func (r *availabilityRepository) CreateAvailability(availability *models.Availability) error {
	return r.db.Create(availability).Error
}

func (r *availabilityRepository) GetAvailabilitiesByStaff(staffUserID uint) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := r.db.Where("staff_user_id = ?", staffUserID).
		Order("day_of_week, start_time").
		Find(&availabilities).Error
	return availabilities, err
}

// IsAdmissible reports whether some window of the staff member on the date's
// weekday fully contains [startTime, endTime]. Partial overlap is not enough.
func (r *availabilityRepository) IsAdmissible(staffUserID uint, date time.Time, startTime, endTime string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Availability{}).
		Where("staff_user_id = ? AND day_of_week = ?", staffUserID, models.MondayWeekday(date)).
		Where("start_time <= ? AND end_time >= ?", startTime, endTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *availabilityRepository) DeleteAvailability(id uint) error {
	return r.db.Delete(&models.Availability{}, id).Error
}

type AppointmentRepository interface {
	SaveAppointment(appointment *models.Appointment) error
	UpdateAppointment(appointment *models.Appointment) error
	GetAppointmentByID(id uint) (*models.Appointment, error)
	GetAppointmentsByUser(userID uint) ([]models.Appointment, error)
	GetAppointmentsByStaff(staffUserID uint) ([]models.Appointment, error)
	DeleteAppointment(id uint) error
}

type appointmentRepository struct {
	db             *gorm.DB
	availabilities AvailabilityRepository
}

func NewAppointmentRepository(db *gorm.DB, availabilities AvailabilityRepository) AppointmentRepository {
	return &appointmentRepository{db: db, availabilities: availabilities}
}

// checkAdmissible runs the availability invariant. Every write path goes
// through it; there is no bypass that can persist an inadmissible appointment.
func (r *appointmentRepository) checkAdmissible(appointment *models.Appointment) error {
	ok, err := r.availabilities.IsAdmissible(
		appointment.StaffUserID,
		appointment.Date,
		appointment.StartTime,
		appointment.EndTime,
	)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutsideAvailability
	}
	return nil
}

func (r *appointmentRepository) SaveAppointment(appointment *models.Appointment) error {
	if err := r.checkAdmissible(appointment); err != nil {
		return err
	}
	return r.db.Create(appointment).Error
}

func (r *appointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	if err := r.checkAdmissible(appointment); err != nil {
		return err
	}
	return r.db.Save(appointment).Error
}

func (r *appointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("User").Preload("StaffUser").First(&appointment, id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetAppointmentsByUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("StaffUser").
		Where("user_id = ?", userID).
		Order("date, start_time").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) GetAppointmentsByStaff(staffUserID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("User").
		Where("staff_user_id = ?", staffUserID).
		Order("date, start_time").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) DeleteAppointment(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
