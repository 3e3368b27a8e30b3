package main

import (
	"github.com/gin-gonic/gin"
	"lookupSheet/contracts"
	"net/http"
)

const ApiVersion = "v1"

const sheetPath = "/sheets/:sheet_id"

const cellPath = sheetPath + "/cells/:column/:row"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/sheets", controller.CreateSheetAction)
	apiRouterGroup.GET(sheetPath, controller.GetSheetAction)
	apiRouterGroup.GET(sheetPath+"/resolved", controller.GetResolvedSheetAction)
	apiRouterGroup.GET(sheetPath+"/export", controller.ExportSheetAction)
	apiRouterGroup.PUT(sheetPath+"/schema", controller.ReplaceSchemaAction)
	apiRouterGroup.POST(sheetPath+"/subscribe", controller.SubscribeAction)

	apiRouterGroup.PUT(cellPath, controller.SetCellAction)
	apiRouterGroup.GET(cellPath, controller.GetCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
