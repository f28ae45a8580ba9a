package client

import (
	"bytes"
	"collabSheet/contracts"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/bytedance/sonic"
)

// Alerter shows a message to the user.
type Alerter interface {
	Alert(message string)
}

type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) {
	f(message)
}

// Save posts grid to the spreadsheet endpoint and alerts the server's reply.
// Any failure, transport or HTTP status, ends in the same generic alert.
func Save(ctx context.Context, httpClient *http.Client, baseUrl string, grid contracts.Grid, alerter Alerter, logger *slog.Logger) error {
	message, err := postGrid(ctx, httpClient, baseUrl, grid)
	if err != nil {
		logger.Error("save spreadsheet failed", "err", err)
		alerter.Alert(contracts.SaveErrorMessage)
		return err
	}

	alerter.Alert(message)
	return nil
}

func postGrid(ctx context.Context, httpClient *http.Client, baseUrl string, grid contracts.Grid) (string, error) {
	if grid == nil {
		grid = contracts.Grid{}
	}

	body, err := json.Marshal(contracts.SaveRequest{Data: grid})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseUrl, "/")+contracts.SpreadsheetPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	message, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected save response HTTP status: %s", response.Status)
	}

	return string(message), nil
}

// FetchGrid loads the current spreadsheet, the way a page load does.
func FetchGrid(ctx context.Context, httpClient *http.Client, baseUrl string) (contracts.Grid, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseUrl, "/")+contracts.SpreadsheetPath, nil)
	if err != nil {
		return nil, err
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected spreadsheet response HTTP status: %s", response.Status)
	}

	grid := contracts.GridResponse{}
	err = json.Unmarshal(body, &grid)
	return grid.Data, err
}
