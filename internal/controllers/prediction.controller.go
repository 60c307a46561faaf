package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"assurly/internal/locale"
	"assurly/internal/models"
	"assurly/internal/regression"
	"assurly/internal/repository"
	"assurly/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PredictionController struct {
	repo     repository.PredictionRepository
	resolver services.PredictionResolver
}

func NewPredictionController(repo repository.PredictionRepository, resolver services.PredictionResolver) *PredictionController {
	return &PredictionController{repo: repo, resolver: resolver}
}

// canonicalFeatures converts the request's feature fields to model locale as
// declared by its locale tag, then validates the categorical vocabulary.
func canonicalFeatures(req *models.PredictionRequest) (models.FeatureSet, error) {
	features := models.FeatureSet{
		Age:      req.Age,
		Sex:      req.Sex,
		Weight:   req.Weight,
		Height:   req.Height,
		Children: req.Children,
		Smoker:   req.Smoker,
		Region:   req.Region,
	}
	if locale.Locale(req.Locale) == locale.Display {
		features = locale.ToModel(features)
	}
	if err := features.ValidateCategoricals(); err != nil {
		return features, err
	}
	return features, nil
}

// resolveAndRespond runs the resolver and maps its failure modes onto HTTP
// statuses. Returns false when a response has already been written.
func (pc *PredictionController) resolveAndRespond(c *gin.Context, prediction *models.Prediction) bool {
	err := pc.resolver.Resolve(c.Request.Context(), prediction)
	if err == nil {
		return true
	}

	var loadErr *regression.ModelLoadError
	var inferenceErr *regression.InferenceError
	switch {
	case errors.Is(err, services.ErrMissingModel) || errors.Is(err, services.ErrUnexpectedModel):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid model selection",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrNoModelsRegistered):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "No regression models are registered",
			"error":   err.Error(),
		})
	case errors.As(err, &loadErr) || errors.As(err, &inferenceErr):
		log.Printf("Prediction resolution failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Prediction failed",
			"error":   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Prediction failed",
			"error":   err.Error(),
		})
	}
	return false
}

// CreatePrediction godoc
// @Summary Create a prediction as staff
// @Description Compute a premium with the named regression model for an optional subject user (staff only)
// @Tags prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.StaffPredictionRequest true "Prediction form"
// @Success 201 {object} map[string]interface{} "Prediction created"
// @Failure 400 {object} map[string]interface{} "Invalid form input"
// @Failure 422 {object} map[string]interface{} "Missing regression model"
// @Failure 500 {object} map[string]interface{} "Prediction failed"
// @Router /predictions [post]
func (pc *PredictionController) CreatePrediction(c *gin.Context) {
	var req models.StaffPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	features, err := canonicalFeatures(&req.PredictionRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid feature values",
			"error":   err.Error(),
		})
		return
	}

	prediction := &models.Prediction{
		UserID:      req.UserID,
		RegModelID:  req.RegModelID,
		MadeByID:    c.GetUint("user_id"),
		MadeByStaff: true,
	}
	prediction.ApplyFeatures(features)

	if !pc.resolveAndRespond(c, prediction) {
		return
	}

	if err := pc.repo.SavePrediction(prediction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save prediction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Prediction computed successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}

// UpdatePrediction godoc
// @Summary Update a prediction as staff
// @Description Replace a prediction's features and recompute its premium (staff only)
// @Tags prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prediction ID"
// @Param request body models.StaffPredictionRequest true "Prediction form"
// @Success 200 {object} map[string]interface{} "Prediction updated"
// @Failure 404 {object} map[string]interface{} "Prediction not found"
// @Router /predictions/{id} [put]
func (pc *PredictionController) UpdatePrediction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid prediction ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	prediction, err := pc.repo.GetPredictionByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Prediction not found",
			"error":   err.Error(),
		})
		return
	}

	var req models.StaffPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	features, err := canonicalFeatures(&req.PredictionRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid feature values",
			"error":   err.Error(),
		})
		return
	}

	prediction.ApplyFeatures(features)
	prediction.UserID = req.UserID
	prediction.RegModelID = req.RegModelID
	prediction.RegModel = nil
	prediction.MadeByID = c.GetUint("user_id")
	prediction.MadeByStaff = true

	if !pc.resolveAndRespond(c, prediction) {
		return
	}

	if err := pc.repo.UpdatePrediction(prediction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update prediction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction updated successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}

// GetPredictionByID godoc
// @Summary Get a prediction
// @Tags prediction
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prediction ID"
// @Success 200 {object} map[string]interface{} "Prediction"
// @Failure 404 {object} map[string]interface{} "Prediction not found"
// @Router /predictions/{id} [get]
func (pc *PredictionController) GetPredictionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid prediction ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	prediction, err := pc.repo.GetPredictionByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Prediction not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction retrieved successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}

// ListPredictions godoc
// @Summary List predictions with optional filters and sort
// @Description Filter by author username, feature ranges, categorical values or model name, and sort by age/weight/height/result. Invalid filter input skips the whole filter and returns the unfiltered collection with the validation failure reported.
// @Tags prediction
// @Produce json
// @Security ApiKeyAuth
// @Param user query string false "Subject username substring"
// @Param min_age query int false "Minimum age (0-200)"
// @Param max_age query int false "Maximum age (0-200)"
// @Param sort_by query string false "Sort key (age|weight|height|result)"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} map[string]interface{} "Predictions"
// @Router /predictions [get]
func (pc *PredictionController) ListPredictions(c *gin.Context) {
	var filter repository.PredictionFilter
	filterErr := c.ShouldBindQuery(&filter)

	var applied *repository.PredictionFilter
	if filterErr == nil {
		applied = &filter
	} else {
		log.Printf("Prediction filter rejected, returning unfiltered collection: %v", filterErr)
	}

	predictions, err := pc.repo.FindPredictions(applied)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list predictions",
			"error":   err.Error(),
		})
		return
	}

	display := make([]models.Prediction, len(predictions))
	for i, p := range predictions {
		display[i] = locale.DisplayPrediction(p)
	}

	response := gin.H{
		"status":  "success",
		"message": "Predictions retrieved successfully",
		"data":    display,
	}
	if filterErr != nil {
		response["filter_error"] = filterErr.Error()
	}
	c.JSON(http.StatusOK, response)
}

// DeletePrediction godoc
// @Summary Delete a prediction
// @Tags prediction
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prediction ID"
// @Success 200 {object} map[string]interface{} "Prediction deleted"
// @Router /predictions/{id} [delete]
func (pc *PredictionController) DeletePrediction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid prediction ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := pc.repo.DeletePrediction(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete prediction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction deleted successfully",
		"data":    nil,
	})
}

// CreateMyPrediction godoc
// @Summary Create the caller's own quote
// @Description Self-service quote: every registered model is run and the highest premium is kept. One quote per user.
// @Tags prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.PredictionRequest true "Quote form"
// @Success 201 {object} map[string]interface{} "Quote created"
// @Failure 409 {object} map[string]interface{} "Quote already exists"
// @Failure 503 {object} map[string]interface{} "No models registered"
// @Router /predictions/me [post]
func (pc *PredictionController) CreateMyPrediction(c *gin.Context) {
	userID := c.GetUint("user_id")

	if _, err := pc.repo.GetPredictionByAuthor(userID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "You already have a quote",
			"error":   "Update your existing quote instead of creating a new one",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to look up existing quote",
			"error":   err.Error(),
		})
		return
	}

	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	features, err := canonicalFeatures(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid feature values",
			"error":   err.Error(),
		})
		return
	}

	prediction := &models.Prediction{
		UserID:      &userID,
		MadeByID:    userID,
		MadeByStaff: false,
	}
	prediction.ApplyFeatures(features)

	if !pc.resolveAndRespond(c, prediction) {
		return
	}

	if err := pc.repo.SavePrediction(prediction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save quote",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Quote computed successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}

// GetMyPrediction godoc
// @Summary Get the caller's own quote
// @Tags prediction
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Quote"
// @Failure 404 {object} map[string]interface{} "No quote yet"
// @Router /predictions/me [get]
func (pc *PredictionController) GetMyPrediction(c *gin.Context) {
	prediction, err := pc.repo.GetPredictionByAuthor(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No quote found",
			"error":   "Create a quote first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quote retrieved successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}

// UpdateMyPrediction godoc
// @Summary Update the caller's own quote
// @Description Replaces the quote's features and recomputes the premium over all registered models.
// @Tags prediction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.PredictionRequest true "Quote form"
// @Success 200 {object} map[string]interface{} "Quote updated"
// @Failure 404 {object} map[string]interface{} "No quote yet"
// @Router /predictions/me [put]
func (pc *PredictionController) UpdateMyPrediction(c *gin.Context) {
	userID := c.GetUint("user_id")

	prediction, err := pc.repo.GetPredictionByAuthor(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No quote found",
			"error":   "Create a quote first",
		})
		return
	}

	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	features, err := canonicalFeatures(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid feature values",
			"error":   err.Error(),
		})
		return
	}

	prediction.ApplyFeatures(features)
	prediction.RegModelID = nil
	prediction.RegModel = nil
	prediction.MadeByStaff = false

	if !pc.resolveAndRespond(c, prediction) {
		return
	}

	if err := pc.repo.UpdatePrediction(prediction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update quote",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quote updated successfully",
		"data":    locale.DisplayPrediction(*prediction),
	})
}
