package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
)

type PreferencesController struct {
	PreferencesUsecase domain.PreferencesUsecase
}

// Save handles POST /api/save-user-preferences: one idempotent upsert of
// the full selection snapshot plus questionnaire answers, keyed by email.
func (pc *PreferencesController) Save(c *gin.Context) {
	var request domain.SavePreferencesRequest

	err := c.ShouldBind(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	err = pc.PreferencesUsecase.Save(c.Request.Context(), &domain.UserPreferences{
		UserEmail:            request.UserEmail,
		SelectedGames:        request.SelectedGames,
		QuestionnaireAnswers: request.QuestionnaireAnswers,
	})
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: domain.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, domain.SuccessResponse{Success: true})
}

// SaveAnswers handles POST /api/questionnaire for the authenticated
// user, replacing only the questionnaire answers.
func (pc *PreferencesController) SaveAnswers(c *gin.Context) {
	var request struct {
		Answers domain.QuestionnaireAnswers `json:"answers" binding:"required"`
	}

	err := c.ShouldBind(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	userEmail := c.GetString("x-user-email")
	err = pc.PreferencesUsecase.SaveAnswers(c.Request.Context(), userEmail, request.Answers)
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: domain.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, domain.SuccessResponse{Success: true})
}
