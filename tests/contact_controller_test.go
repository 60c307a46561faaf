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
)

func setupContactTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockContactRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful message",
			requestBody: map[string]interface{}{
				"name":    "Jean Michou",
				"mail":    "jean.michou@example.fr",
				"subject": "Question sur mon devis",
				"message": "Bonjour, pouvez-vous me rappeler ?",
			},
			setupMocks: func(repo *mocks.MockContactRepository) {
				repo.On("SaveMessage", mock.MatchedBy(func(m *models.ContactMessage) bool {
					return m.Name == "Jean Michou" && m.Mail == "jean.michou@example.fr"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Message received successfully",
		},
		{
			name: "invalid mail",
			requestBody: map[string]interface{}{
				"name": "Jean Michou",
				"mail": "not-a-mail",
			},
			setupMocks:     func(repo *mocks.MockContactRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockContactRepository)
			tt.setupMocks(repo)
			controller := controllers.NewContactController(repo)

			router := setupContactTestRouter()
			router.POST("/contact", controller.CreateMessage)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/contact", bytes.NewBuffer(body))
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

func TestListMessages(t *testing.T) {
	repo := new(mocks.MockContactRepository)
	messages := []models.ContactMessage{
		{ID: 1, Name: "Jean Michou", Mail: "jean.michou@example.fr"},
		{ID: 2, Name: "Gis Elle", Mail: "gisele@example.fr"},
	}
	repo.On("GetAllMessages").Return(messages, nil)

	controller := controllers.NewContactController(repo)
	router := setupContactTestRouter()
	router.Use(addAuthContext(3, true))
	router.GET("/contact", controller.ListMessages)

	req := httptest.NewRequest("GET", "/contact", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Messages retrieved successfully")
	assert.Len(t, response["data"], 2)

	repo.AssertExpectations(t)
}
