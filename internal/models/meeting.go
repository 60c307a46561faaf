package models

import "time"

// Availability is a recurring weekly window in which a staff member accepts
// appointments. Day numbering is Monday-based (0 = Monday, 6 = Sunday).
// Overlapping windows for the same staff/day are allowed; only the exact
// (staff, day, start, end) tuple is unique.
type Availability struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"1"`
	StaffUserID uint   `gorm:"uniqueIndex:idx_availability_slot;not null" json:"staff_user_id" example:"3"`
	StaffUser   User   `gorm:"foreignKey:StaffUserID;constraint:OnDelete:CASCADE" json:"-"`
	DayOfWeek   int    `gorm:"uniqueIndex:idx_availability_slot;check:day_of_week BETWEEN 0 AND 6" json:"day_of_week" example:"0"`
	StartTime   string `gorm:"size:5;uniqueIndex:idx_availability_slot" json:"start_time" example:"13:00"`
	EndTime     string `gorm:"size:5;uniqueIndex:idx_availability_slot" json:"end_time" example:"16:00"`
}

func (Availability) TableName() string {
	return "availabilities"
}

// Covers reports whether the window fully contains [start, end]. Times are
// zero-padded 24h "HH:MM" strings, so lexicographic comparison is ordering.
func (a Availability) Covers(start, end string) bool {
	return a.StartTime <= start && a.EndTime >= end
}

// Appointment books a user with a staff member on a concrete date. Its time
// range must fall entirely within one of the staff member's availability
// windows for that weekday; the repository refuses writes that do not.
// Cancellation removes the row outright so the slot can be rebooked under
// the (staff, date, start, end) unique index.
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-01-01T00:00:00Z"`
	UserID      uint      `gorm:"index;not null" json:"user_id" example:"1"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	StaffUserID uint      `gorm:"uniqueIndex:idx_appointment_slot;not null" json:"staff_user_id" example:"3"`
	StaffUser   User      `gorm:"foreignKey:StaffUserID;constraint:OnDelete:CASCADE" json:"-"`
	Date        time.Time `gorm:"type:date;uniqueIndex:idx_appointment_slot" json:"date" example:"2025-01-30T00:00:00Z"`
	StartTime   string    `gorm:"size:5;uniqueIndex:idx_appointment_slot" json:"start_time" example:"14:00"`
	EndTime     string    `gorm:"size:5;uniqueIndex:idx_appointment_slot" json:"end_time" example:"15:00"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// MondayWeekday maps a date to the Monday-based weekday used by Availability.
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
