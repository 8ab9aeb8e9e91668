package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
)

type RecommendationController struct {
	RecommendationUsecase domain.RecommendationUsecase
}

// Fetch handles POST /api/get-recommendation. The authenticated identity
// wins over the request body; an anonymous call never reaches the
// scoring service.
func (rc *RecommendationController) Fetch(c *gin.Context) {
	var request domain.RecommendationRequest
	_ = c.ShouldBind(&request)

	userEmail := c.GetString("x-user-email")
	if userEmail == "" {
		userEmail = request.UserEmail
	}

	items, err := rc.RecommendationUsecase.Fetch(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(domain.StatusOf(err), domain.ErrorResponse{Error: domain.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, domain.RecommendationResponse{Data: items})
}
