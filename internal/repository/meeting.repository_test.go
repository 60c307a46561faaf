package repository

import (
	"testing"
	"time"

	"assurly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMeetingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Availability{},
		&models.Appointment{},
	))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// thursday 2025-01-30, matching the seeded weekday-3 windows.
var bookingDate = time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)

func setupAppointmentRepos(t *testing.T) (AvailabilityRepository, AppointmentRepository) {
	t.Helper()
	db := setupMeetingTestDB(t)
	availabilities := NewAvailabilityRepository(db)
	appointments := NewAppointmentRepository(db, availabilities)

	require.NoError(t, availabilities.CreateAvailability(&models.Availability{
		StaffUserID: 3,
		DayOfWeek:   models.MondayWeekday(bookingDate),
		StartTime:   "13:00",
		EndTime:     "16:00",
	}))
	return availabilities, appointments
}

func TestIsAdmissible(t *testing.T) {
	availabilities, _ := setupAppointmentRepos(t)

	tests := []struct {
		name     string
		start    string
		end      string
		expected bool
	}{
		{name: "fully inside the window", start: "14:00", end: "15:00", expected: true},
		{name: "exact window", start: "13:00", end: "16:00", expected: true},
		{name: "starts before the window", start: "12:30", end: "14:00", expected: false},
		{name: "ends after the window", start: "15:00", end: "16:30", expected: false},
		{name: "entirely outside", start: "18:00", end: "19:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := availabilities.IsAdmissible(3, bookingDate, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestIsAdmissibleWrongWeekday(t *testing.T) {
	availabilities, _ := setupAppointmentRepos(t)

	// Same clock times on the following day, where no window exists.
	ok, err := availabilities.IsAdmissible(3, bookingDate.AddDate(0, 0, 1), "14:00", "15:00")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveAppointmentWithinAvailability(t *testing.T) {
	_, appointments := setupAppointmentRepos(t)

	appointment := &models.Appointment{
		UserID:      1,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	require.NoError(t, appointments.SaveAppointment(appointment))
	assert.NotZero(t, appointment.ID)
}

func TestSaveAppointmentOutsideAvailability(t *testing.T) {
	_, appointments := setupAppointmentRepos(t)

	appointment := &models.Appointment{
		UserID:      1,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "18:00",
		EndTime:     "19:00",
	}
	err := appointments.SaveAppointment(appointment)
	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestUpdateAppointmentChecksAvailability(t *testing.T) {
	_, appointments := setupAppointmentRepos(t)

	appointment := &models.Appointment{
		UserID:      1,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	require.NoError(t, appointments.SaveAppointment(appointment))

	appointment.StartTime = "15:30"
	appointment.EndTime = "16:30"
	err := appointments.UpdateAppointment(appointment)
	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestRebookSlotAfterCancellation(t *testing.T) {
	_, appointments := setupAppointmentRepos(t)

	first := &models.Appointment{
		UserID:      1,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	require.NoError(t, appointments.SaveAppointment(first))
	require.NoError(t, appointments.DeleteAppointment(first.ID))

	// Cancellation must free the slot entirely: booking the identical
	// (staff, date, start, end) tuple again must not trip the unique index.
	second := &models.Appointment{
		UserID:      2,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	require.NoError(t, appointments.SaveAppointment(second))

	_, err := appointments.GetAppointmentByID(first.ID)
	assert.Error(t, err)

	found, err := appointments.GetAppointmentByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), found.UserID)
}

func TestDoubleBookingSameSlotRejected(t *testing.T) {
	_, appointments := setupAppointmentRepos(t)

	first := &models.Appointment{
		UserID:      1,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	require.NoError(t, appointments.SaveAppointment(first))

	duplicate := &models.Appointment{
		UserID:      2,
		StaffUserID: 3,
		Date:        bookingDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
	}
	assert.Error(t, appointments.SaveAppointment(duplicate))
}
