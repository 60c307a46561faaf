package controllers

import (
	"net/http"

	"assurly/internal/models"
	"assurly/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	repo repository.ContactRepository
}

func NewContactController(repo repository.ContactRepository) *ContactController {
	return &ContactController{repo: repo}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Mail    string `json:"mail" binding:"required,email,max=250"`
	Subject string `json:"subject" binding:"max=100"`
	Message string `json:"message"`
}

// CreateMessage godoc
// @Summary Leave a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 201 {object} map[string]interface{} "Message received"
// @Router /contact [post]
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Mail:    req.Mail,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := cc.repo.SaveMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message received successfully",
		"data":    message,
	})
}

// ListMessages godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Messages"
// @Router /contact [get]
func (cc *ContactController) ListMessages(c *gin.Context) {
	messages, err := cc.repo.GetAllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}
