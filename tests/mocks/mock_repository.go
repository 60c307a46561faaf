package mocks

import (
	"context"
	"time"

	"assurly/internal/models"
	"assurly/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockUserRepository) ListStaff() ([]models.StaffProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StaffProfile), args.Error(1)
}

func (m *MockUserRepository) SaveStaffProfile(profile *models.StaffProfile) error {
	return m.Called(profile).Error(0)
}

func (m *MockUserRepository) GetStaffProfile(userID uint) (*models.StaffProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffProfile), args.Error(1)
}

type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) SavePrediction(prediction *models.Prediction) error {
	return m.Called(prediction).Error(0)
}

func (m *MockPredictionRepository) UpdatePrediction(prediction *models.Prediction) error {
	return m.Called(prediction).Error(0)
}

func (m *MockPredictionRepository) GetPredictionByID(id uint) (*models.Prediction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) GetPredictionByAuthor(madeByID uint) (*models.Prediction, error) {
	args := m.Called(madeByID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) FindPredictions(filter *repository.PredictionFilter) ([]models.Prediction, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) DeletePrediction(id uint) error {
	return m.Called(id).Error(0)
}

type MockRegModelRepository struct {
	mock.Mock
}

func (m *MockRegModelRepository) CreateRegModel(model *models.RegModel) error {
	return m.Called(model).Error(0)
}

func (m *MockRegModelRepository) GetRegModelByID(id uint) (*models.RegModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegModel), args.Error(1)
}

func (m *MockRegModelRepository) GetAllRegModels() ([]models.RegModel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RegModel), args.Error(1)
}

func (m *MockRegModelRepository) DeleteRegModel(id uint) error {
	return m.Called(id).Error(0)
}

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) CreateAvailability(availability *models.Availability) error {
	return m.Called(availability).Error(0)
}

func (m *MockAvailabilityRepository) GetAvailabilitiesByStaff(staffUserID uint) ([]models.Availability, error) {
	args := m.Called(staffUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) IsAdmissible(staffUserID uint, date time.Time, startTime, endTime string) (bool, error) {
	args := m.Called(staffUserID, date, startTime, endTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteAvailability(id uint) error {
	return m.Called(id).Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) SaveAppointment(appointment *models.Appointment) error {
	return m.Called(appointment).Error(0)
}

func (m *MockAppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	return m.Called(appointment).Error(0)
}

func (m *MockAppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointmentsByUser(userID uint) ([]models.Appointment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointmentsByStaff(staffUserID uint) ([]models.Appointment, error) {
	args := m.Called(staffUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAppointment(id uint) error {
	return m.Called(id).Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) SaveMessage(message *models.ContactMessage) error {
	return m.Called(message).Error(0)
}

func (m *MockContactRepository) GetAllMessages() ([]models.ContactMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

type MockPredictionResolver struct {
	mock.Mock
}

func (m *MockPredictionResolver) Resolve(ctx context.Context, prediction *models.Prediction) error {
	return m.Called(ctx, prediction).Error(0)
}
