package main

import (
	"collabSheet/contracts"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetRepository contracts.SheetRepository
	RelayHub        contracts.RelayHub
	logger          *slog.Logger
}

func NewApiController(sheetRepository contracts.SheetRepository, relayHub contracts.RelayHub, logger *slog.Logger) *ApiController {
	return &ApiController{
		SheetRepository: sheetRepository,
		RelayHub:        relayHub,
		logger:          logger,
	}
}

func (api *ApiController) GetSpreadsheetAction(c *gin.Context) {
	grid, err := api.SheetRepository.GetGrid()

	if err != nil {
		api.logger.Error("load spreadsheet failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": contracts.LoadErrorMessage})
	} else {
		c.JSON(http.StatusOK, contracts.GridResponse{Data: grid})
	}
}

// SaveSpreadsheetAction answers in plain text: the client shows the body to the user as is.
func (api *ApiController) SaveSpreadsheetAction(c *gin.Context) {
	request := contracts.SaveRequest{}

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	err = api.SheetRepository.SaveGrid(request.Data)
	if err != nil {
		api.logger.Error("save spreadsheet failed", "err", err, "rows", len(request.Data))
		c.String(http.StatusInternalServerError, contracts.SaveErrorMessage)
	} else {
		c.String(http.StatusOK, contracts.SaveSuccessMessage)
	}
}

func (api *ApiController) RelayAction(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.String(http.StatusBadRequest, contracts.EmptyUserError.Error())
		return
	}

	// after a successful upgrade the response belongs to the websocket, errors can only be logged
	err := api.RelayHub.Serve(c.Writer, c.Request, user)
	if err != nil && !errors.Is(err, HubClosedError) {
		api.logger.Warn("relay connection failed", "user", user, "err", err)
	}
}
