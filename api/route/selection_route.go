package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/api/controller"
	"github.com/playscout/game-recommender/bootstrap"
	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/mongo"
	"github.com/playscout/game-recommender/repository"
	"github.com/playscout/game-recommender/usecase"
)

func NewSelectionRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pr := repository.NewPreferencesRepository(db, domain.CollectionUserPreferences)
	sc := controller.SelectionController{
		SelectionUsecase: usecase.NewSelectionUsecase(pr, timeout),
	}
	group.POST("/game-selection", sc.Toggle)
	group.POST("/game-selection/finish", sc.Finish)
}
