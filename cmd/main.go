package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/api/route"
	"github.com/playscout/game-recommender/bootstrap"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bootstrap.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatal(err)
	}
	cancel()

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(env, timeout, db, engine)

	err := engine.Run(env.ServerAddress)
	if err != nil {
		return
	}
}
