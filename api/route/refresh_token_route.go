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

func NewRefreshTokenRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	rtc := controller.RefreshTokenController{
		RefreshTokenUsecase: usecase.NewRefreshTokenUsecase(ur, timeout),
		Env:                 env,
	}
	group.POST("/refresh", rtc.RefreshToken)
}
