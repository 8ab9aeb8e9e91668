package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/api/middleware"
	"github.com/playscout/game-recommender/bootstrap"
	"github.com/playscout/game-recommender/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("/api")
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)
	NewRefreshTokenRouter(env, timeout, db, publicRouter)
	NewSearchRouter(env, timeout, publicRouter)
	NewPreferencesRouter(env, timeout, db, publicRouter)

	protectedRouter := gin.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewSelectionRouter(env, timeout, db, protectedRouter)
	NewQuestionnaireRouter(env, timeout, db, protectedRouter)
	NewRecommendationRouter(env, timeout, protectedRouter)
	NewProfileRouter(env, timeout, db, protectedRouter)
}
