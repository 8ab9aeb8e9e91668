package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/api/controller"
	"github.com/playscout/game-recommender/bootstrap"
	"github.com/playscout/game-recommender/igdb"
	"github.com/playscout/game-recommender/usecase"
)

func NewSearchRouter(env *bootstrap.Env, timeout time.Duration, group *gin.RouterGroup) {
	catalog := igdb.NewClient(igdb.Config{
		ClientID:     env.IGDBClientID,
		ClientSecret: env.IGDBClientSecret,
		APIURL:       env.IGDBAPIURL,
		TokenURL:     env.IGDBTokenURL,
	})
	sc := controller.SearchController{
		SearchUsecase: usecase.NewSearchUsecase(catalog, timeout),
	}
	group.GET("/search-games", sc.Search)
}
