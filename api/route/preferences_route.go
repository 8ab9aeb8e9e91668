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

func NewPreferencesRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pr := repository.NewPreferencesRepository(db, domain.CollectionUserPreferences)
	pc := controller.PreferencesController{
		PreferencesUsecase: usecase.NewPreferencesUsecase(pr, timeout),
	}
	group.POST("/save-user-preferences", pc.Save)
}

func NewQuestionnaireRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pr := repository.NewPreferencesRepository(db, domain.CollectionUserPreferences)
	pc := controller.PreferencesController{
		PreferencesUsecase: usecase.NewPreferencesUsecase(pr, timeout),
	}
	group.POST("/questionnaire", pc.SaveAnswers)
}
