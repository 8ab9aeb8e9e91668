package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/playscout/game-recommender/api/controller"
	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/domain/mocks"
)

func setupProfileRouter(u domain.ProfileUsecase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := &controller.ProfileController{ProfileUsecase: u}
	r := gin.New()
	r.GET("/api/profile", func(c *gin.Context) {
		c.Set("x-user-id", userID)
		pc.Fetch(c)
	})
	return r
}

func TestProfileController_ReturnsNameAndEmail(t *testing.T) {
	mockUsecase := new(mocks.ProfileUsecase)
	mockUsecase.On("GetProfileByID", mock.Anything, "abc123").
		Return(&domain.Profile{Name: "Player One", Email: "player@example.com"}, nil)

	r := setupProfileRouter(mockUsecase, "abc123")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Player One","email":"player@example.com"}`, rec.Body.String())
}

func TestProfileController_MissingUserIsNotFound(t *testing.T) {
	mockUsecase := new(mocks.ProfileUsecase)
	mockUsecase.On("GetProfileByID", mock.Anything, "abc123").
		Return(nil, domain.NewNotFoundError("user not found"))

	r := setupProfileRouter(mockUsecase, "abc123")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestProfileController_RepositoryFailureHidesDetail(t *testing.T) {
	mockUsecase := new(mocks.ProfileUsecase)
	mockUsecase.On("GetProfileByID", mock.Anything, "abc123").
		Return(nil, assert.AnError)

	r := setupProfileRouter(mockUsecase, "abc123")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
