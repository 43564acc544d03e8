package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	AuthHandler    *AuthHandler
	StoreHandler   *StoreHandler
	AuthMiddleware gin.HandlerFunc
	AccessLogger   *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestIDMiddleware(), NewAccessLogMiddleware(deps.AccessLogger))

	api := router.Group("/api")
	{
		api.POST("/auth", deps.AuthHandler.Authenticate)

		authenticated := api.Group("/", deps.AuthMiddleware)
		{
			authenticated.GET("/info", deps.StoreHandler.GetInfo)
			authenticated.POST("/sendCoin", deps.StoreHandler.SendCoin)
			authenticated.GET("/buy/:"+ItemNameKey, deps.StoreHandler.BuyItem)
			authenticated.GET("/merch", deps.StoreHandler.ListMerch)
		}
	}

	return router
}
