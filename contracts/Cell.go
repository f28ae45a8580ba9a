package contracts

import (
	"errors"
)

// Grid is the row-major cell text of a spreadsheet, as sent by the save request.
type Grid [][]string

// CellUpdate is the payload of the `update_cell` event.
type CellUpdate struct {
	Id   string `json:"id"`
	Text string `json:"text"`
	// Label is the cursor offset inside Text.
	Label int    `json:"label"`
	User  string `json:"user"`
}

type SaveRequest struct {
	Data Grid `json:"data" binding:"required"`
}

type GridResponse struct {
	Data Grid `json:"data"`
}

const SaveSuccessMessage = "Data saved successfully"

const SaveErrorMessage = "An error occurred while saving the data"

const LoadErrorMessage = "An error occurred while loading the data"

var CellIdInvalidError = errors.New("cell id is not in A1 notation")

var CellOutOfRangeError = errors.New("cell is outside of the spreadsheet")

var EmptyUserError = errors.New("user is required")
