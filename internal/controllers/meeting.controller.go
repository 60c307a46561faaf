package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"assurly/internal/models"
	"assurly/internal/repository"

	"github.com/gin-gonic/gin"
)

type MeetingController struct {
	availabilities repository.AvailabilityRepository
	appointments   repository.AppointmentRepository
}

func NewMeetingController(availabilities repository.AvailabilityRepository, appointments repository.AppointmentRepository) *MeetingController {
	return &MeetingController{availabilities: availabilities, appointments: appointments}
}

type AvailabilityRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AppointmentRequest struct {
	StaffUserID uint   `json:"staff_user_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

// validateTimeRange checks both bounds are zero-padded "HH:MM" clock times
// with start strictly before end.
func validateTimeRange(start, end string) error {
	for _, v := range []string{start, end} {
		if _, err := time.Parse("15:04", v); err != nil || len(v) != 5 {
			return fmt.Errorf("invalid time %q, expected HH:MM", v)
		}
	}
	if start >= end {
		return fmt.Errorf("start time %s must be before end time %s", start, end)
	}
	return nil
}

// CreateAvailability godoc
// @Summary Declare a weekly availability window
// @Description Add a recurring window (staff only). Day numbering is Monday-based (0 = Monday).
// @Tags meeting
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AvailabilityRequest true "Availability window"
// @Success 201 {object} map[string]interface{} "Window created"
// @Router /availabilities [post]
func (mc *MeetingController) CreateAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid time range",
			"error":   err.Error(),
		})
		return
	}

	availability := &models.Availability{
		StaffUserID: c.GetUint("user_id"),
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := mc.availabilities.CreateAvailability(availability); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Failed to create availability window",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Availability window created successfully",
		"data":    availability,
	})
}

// GetStaffAvailabilities godoc
// @Summary List a staff member's availability windows
// @Tags meeting
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Staff user ID"
// @Success 200 {object} map[string]interface{} "Windows"
// @Router /staff/{id}/availabilities [get]
func (mc *MeetingController) GetStaffAvailabilities(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid staff user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	availabilities, err := mc.availabilities.GetAvailabilitiesByStaff(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list availability windows",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Availability windows retrieved successfully",
		"data":    availabilities,
	})
}

// DeleteAvailability godoc
// @Summary Delete an availability window
// @Tags meeting
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Availability ID"
// @Success 200 {object} map[string]interface{} "Window deleted"
// @Router /availabilities/{id} [delete]
func (mc *MeetingController) DeleteAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid availability ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := mc.availabilities.DeleteAvailability(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete availability window",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Availability window deleted successfully",
		"data":    nil,
	})
}

// CreateAppointment godoc
// @Summary Book an appointment with a staff member
// @Description The time range must fall entirely within one of the staff member's availability windows for that weekday; partial overlap is refused.
// @Tags meeting
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AppointmentRequest true "Appointment"
// @Success 201 {object} map[string]interface{} "Appointment booked"
// @Failure 422 {object} map[string]interface{} "Outside availability"
// @Router /appointments [post]
func (mc *MeetingController) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Expected format YYYY-MM-DD",
		})
		return
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid time range",
			"error":   err.Error(),
		})
		return
	}

	appointment := &models.Appointment{
		UserID:      c.GetUint("user_id"),
		StaffUserID: req.StaffUserID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := mc.appointments.SaveAppointment(appointment); err != nil {
		if errors.Is(err, repository.ErrOutsideAvailability) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "Appointment outside availability",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to book appointment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Appointment booked successfully",
		"data":    appointment,
	})
}

// GetMyAppointments godoc
// @Summary List the caller's appointments
// @Description Staff callers get the appointments booked with them; other users get the ones they booked.
// @Tags meeting
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Appointments"
// @Router /appointments/me [get]
func (mc *MeetingController) GetMyAppointments(c *gin.Context) {
	userID := c.GetUint("user_id")

	var appointments []models.Appointment
	var err error
	if c.GetBool("is_staff") {
		appointments, err = mc.appointments.GetAppointmentsByStaff(userID)
	} else {
		appointments, err = mc.appointments.GetAppointmentsByUser(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list appointments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointments retrieved successfully",
		"data":    appointments,
	})
}

// DeleteAppointment godoc
// @Summary Cancel an appointment
// @Description Only the booking user or the staff member involved can cancel.
// @Tags meeting
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment cancelled"
// @Failure 403 {object} map[string]interface{} "Not involved in this appointment"
// @Router /appointments/{id} [delete]
func (mc *MeetingController) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	appointment, err := mc.appointments.GetAppointmentByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   err.Error(),
		})
		return
	}

	userID := c.GetUint("user_id")
	if appointment.UserID != userID && appointment.StaffUserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not allowed",
			"error":   "You are not involved in this appointment",
		})
		return
	}

	if err := mc.appointments.DeleteAppointment(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to cancel appointment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment cancelled successfully",
		"data":    nil,
	})
}
