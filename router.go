package main

import (
	"collabSheet/contracts"
	"collabSheet/middleware"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(controller contracts.ApiController, accessLog io.Writer, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestIdMiddleware(),
		middleware.LoggerMiddleware(accessLog),
		gin.Recovery(),
		middleware.CORSMiddleware(allowedOrigins),
	)

	router.GET(contracts.SpreadsheetPath, controller.GetSpreadsheetAction)
	router.POST(contracts.SpreadsheetPath, controller.SaveSpreadsheetAction)
	router.GET(contracts.RelayPath, controller.RelayAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
