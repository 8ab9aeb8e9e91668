package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/api/controller"
	"github.com/playscout/game-recommender/bootstrap"
	"github.com/playscout/game-recommender/scoring"
	"github.com/playscout/game-recommender/usecase"
)

func NewRecommendationRouter(env *bootstrap.Env, timeout time.Duration, group *gin.RouterGroup) {
	scorer := scoring.NewClient(env.ScoringServiceURL, nil)
	rc := controller.RecommendationController{
		RecommendationUsecase: usecase.NewRecommendationUsecase(scorer, timeout),
	}
	group.POST("/get-recommendation", rc.Fetch)
}
