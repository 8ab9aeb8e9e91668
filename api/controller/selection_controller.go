package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
)

type SelectionController struct {
	SelectionUsecase domain.SelectionUsecase
}

// Toggle flips one game in the authenticated user's selection. The set
// stays in memory; nothing is persisted until Finish.
func (sc *SelectionController) Toggle(c *gin.Context) {
	var request domain.ToggleSelectionRequest

	err := c.ShouldBind(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}
	if request.GameID <= 0 {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "game_id is required"})
		return
	}

	userEmail := c.GetString("x-user-email")
	total := sc.SelectionUsecase.Toggle(userEmail, request.GameID, request.Selected)

	c.JSON(http.StatusOK, domain.ToggleSelectionResponse{
		GameID:   request.GameID,
		Selected: request.Selected,
		Total:    total,
	})
}

// Finish flushes the selection snapshot with the questionnaire answers.
func (sc *SelectionController) Finish(c *gin.Context) {
	var request domain.FinishSelectionRequest

	err := c.ShouldBind(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	userEmail := c.GetString("x-user-email")
	err = sc.SelectionUsecase.Finish(c.Request.Context(), userEmail, request.QuestionnaireAnswers)
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: domain.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, domain.SuccessResponse{Success: true})
}
