package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
)

type ProfileController struct {
	ProfileUsecase domain.ProfileUsecase
}

func (pc *ProfileController) Fetch(c *gin.Context) {
	userID := c.GetString("x-user-id")

	profile, err := pc.ProfileUsecase.GetProfileByID(c, userID)
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: domain.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, profile)
}
