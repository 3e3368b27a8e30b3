package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	CreateSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	GetResolvedSheetAction(c *gin.Context)
	ReplaceSchemaAction(c *gin.Context)
	ExportSheetAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
