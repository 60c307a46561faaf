package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assurly/internal/controllers"
	"assurly/internal/models"
	"assurly/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupRegModelTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateRegModel(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockRegModelRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful registration",
			requestBody: map[string]interface{}{"name": "lasso model", "path": "regression/models/best_lasso_model.json"},
			setupMocks: func(repo *mocks.MockRegModelRepository) {
				repo.On("CreateRegModel", mock.MatchedBy(func(m *models.RegModel) bool {
					return m.Name == "lasso model" && m.Path == "regression/models/best_lasso_model.json"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Model registered successfully",
		},
		{
			name:           "missing path",
			requestBody:    map[string]interface{}{"name": "lasso model"},
			setupMocks:     func(repo *mocks.MockRegModelRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRegModelRepository)
			tt.setupMocks(repo)
			controller := controllers.NewRegModelController(repo)

			router := setupRegModelTestRouter()
			router.Use(addAuthContext(3, true))
			router.POST("/models", controller.CreateRegModel)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/models", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			repo.AssertExpectations(t)
		})
	}
}

func TestListRegModels(t *testing.T) {
	repo := new(mocks.MockRegModelRepository)
	regModels := []models.RegModel{
		{ID: 1, Name: "linéaire basique", Path: "regression/models/basic_linreg_model.json"},
		{ID: 2, Name: "ridge_model", Path: "regression/models/ridge_model.json"},
	}
	repo.On("GetAllRegModels").Return(regModels, nil)

	controller := controllers.NewRegModelController(repo)
	router := setupRegModelTestRouter()
	router.Use(addAuthContext(3, true))
	router.GET("/models", controller.ListRegModels)

	req := httptest.NewRequest("GET", "/models", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response["data"], 2)

	repo.AssertExpectations(t)
}

func TestGetRegModelByID(t *testing.T) {
	tests := []struct {
		name           string
		modelID        string
		setupMocks     func(*mocks.MockRegModelRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:    "successful retrieval",
			modelID: "1",
			setupMocks: func(repo *mocks.MockRegModelRepository) {
				model := &models.RegModel{ID: 1, Name: "linéaire", Path: "regression/models/linreg_model.json"}
				repo.On("GetRegModelByID", uint(1)).Return(model, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Model retrieved successfully",
		},
		{
			name:           "invalid ID",
			modelID:        "abc",
			setupMocks:     func(repo *mocks.MockRegModelRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid model ID",
		},
		{
			name:    "model not found",
			modelID: "999",
			setupMocks: func(repo *mocks.MockRegModelRepository) {
				repo.On("GetRegModelByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Model not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRegModelRepository)
			tt.setupMocks(repo)
			controller := controllers.NewRegModelController(repo)

			router := setupRegModelTestRouter()
			router.Use(addAuthContext(3, true))
			router.GET("/models/:id", controller.GetRegModelByID)

			req := httptest.NewRequest("GET", "/models/"+tt.modelID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			repo.AssertExpectations(t)
		})
	}
}

func TestDeleteRegModel(t *testing.T) {
	repo := new(mocks.MockRegModelRepository)
	repo.On("DeleteRegModel", uint(2)).Return(nil)

	controller := controllers.NewRegModelController(repo)
	router := setupRegModelTestRouter()
	router.Use(addAuthContext(3, true))
	router.DELETE("/models/:id", controller.DeleteRegModel)

	req := httptest.NewRequest("DELETE", "/models/2", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Model deleted successfully")

	repo.AssertExpectations(t)
}
