package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lumatools/luma-mcp/controller"
	"github.com/lumatools/luma-mcp/middleware"
)

func SetApiRouter(server *gin.Engine) {
	server.Use(middleware.RequestId())
	server.Use(middleware.CORS())
	middleware.SetUpLogger(server)

	apiRouter := server.Group("/api")
	{
		apiRouter.GET("/status", controller.GetStatus)
		apiRouter.GET("/tools", controller.ListTools)
		apiRouter.POST("/tools/:name", controller.InvokeTool)
	}
}
