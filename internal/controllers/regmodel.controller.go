package controllers

import (
	"net/http"
	"strconv"

	"assurly/internal/models"
	"assurly/internal/repository"

	"github.com/gin-gonic/gin"
)

type RegModelController struct {
	repo repository.RegModelRepository
}

func NewRegModelController(repo repository.RegModelRepository) *RegModelController {
	return &RegModelController{repo: repo}
}

type RegModelRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Path string `json:"path" binding:"required,max=255"`
}

// CreateRegModel godoc
// @Summary Register a regression model
// @Description Register a named predictor artifact path (staff only). The artifact is loaded fresh on every inference call.
// @Tags regmodel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RegModelRequest true "Model registration"
// @Success 201 {object} map[string]interface{} "Model registered"
// @Router /models [post]
func (rc *RegModelController) CreateRegModel(c *gin.Context) {
	var req RegModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	model := &models.RegModel{Name: req.Name, Path: req.Path}
	if err := rc.repo.CreateRegModel(model); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register model",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Model registered successfully",
		"data":    model,
	})
}

// ListRegModels godoc
// @Summary List registered regression models
// @Tags regmodel
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Models"
// @Router /models [get]
func (rc *RegModelController) ListRegModels(c *gin.Context) {
	regModels, err := rc.repo.GetAllRegModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list models",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Models retrieved successfully",
		"data":    regModels,
	})
}

// GetRegModelByID godoc
// @Summary Get a registered regression model
// @Tags regmodel
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Model ID"
// @Success 200 {object} map[string]interface{} "Model"
// @Failure 404 {object} map[string]interface{} "Model not found"
// @Router /models/{id} [get]
func (rc *RegModelController) GetRegModelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid model ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	model, err := rc.repo.GetRegModelByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Model not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Model retrieved successfully",
		"data":    model,
	})
}

// DeleteRegModel godoc
// @Summary Delete a registered regression model
// @Tags regmodel
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Model ID"
// @Success 200 {object} map[string]interface{} "Model deleted"
// @Router /models/{id} [delete]
func (rc *RegModelController) DeleteRegModel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid model ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := rc.repo.DeleteRegModel(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete model",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Model deleted successfully",
		"data":    nil,
	})
}
