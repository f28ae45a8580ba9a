package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetSpreadsheetAction(c *gin.Context)
	SaveSpreadsheetAction(c *gin.Context)
	RelayAction(c *gin.Context)
}

const SpreadsheetPath = "/spreadsheet"

const RelayPath = "/ws"
