package main

import (
	"collabSheet/client"
	"collabSheet/contracts"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/docopt/docopt-go"
)

const CollabSheetVersion = "1.0.0"

const usage = `Collaborative spreadsheet.

Usage:
    collabsheet serve
    collabsheet edit [--url=<url>] --user=<user> [--cursor=<offset>] <cell_id> <text>
    collabsheet watch [--url=<url>] --user=<user>
    collabsheet save [--url=<url>] <csv_file>
    collabsheet -h | --help
    collabsheet --version

Options:
    -h --help             Show this screen.
    --version             Show version.
    --url=<url>           Server base url [default: http://localhost:8080].
    --user=<user>         Name other users see next to your cursor.
    --cursor=<offset>     Cursor position inside the new cell text.

Serve reads CONFIG_FILEPATH (yaml), then LISTEN_ADDR, DATABASE_FILEPATH,
DATABASE_URL, LIVE_PERSIST, EDIT_RATE, EDIT_BURST and ALLOWED_ORIGINS.`

func ParseCommand(args []string) (docopt.Opts, error) {
	return docopt.ParseArgs(usage, args, CollabSheetVersion)
}

func RunCommand(ctx context.Context, opts docopt.Opts, out io.Writer) error {
	if serve, _ := opts.Bool("serve"); serve {
		config, err := LoadConfig()
		if err != nil {
			return err
		}
		return RunApp(ctx, config)
	}

	baseUrl, err := opts.String("--url")
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if save, _ := opts.Bool("save"); save {
		path, _ := opts.String("<csv_file>")
		grid, err := readCsvGrid(path)
		if err != nil {
			return err
		}

		return client.Save(ctx, httpClient, baseUrl, grid, printAlerter(out), logger)
	}

	user, err := opts.String("--user")
	if err != nil {
		return err
	}

	grid, err := client.FetchGrid(ctx, httpClient, baseUrl)
	if err != nil {
		return err
	}
	table := client.NewTable(grid)

	if edit, _ := opts.Bool("edit"); edit {
		return runEdit(ctx, opts, baseUrl, user, table, out, logger)
	}

	c, err := client.Dial(ctx, baseUrl, user, table, printAlerter(out), client.WithLogger(logger),
		client.WithApplyHook(func(update contracts.CellUpdate, applied bool) {
			if applied {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", update.User, update.Id, update.Label, update.Text)
			}
		}),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Listen(ctx)
}

func runEdit(ctx context.Context, opts docopt.Opts, baseUrl string, user string, table *client.Table, out io.Writer, logger *slog.Logger) error {
	cellId, _ := opts.String("<cell_id>")
	text, _ := opts.String("<text>")

	var selection *client.Selection
	if opts["--cursor"] != nil {
		cursor, err := opts.String("--cursor")
		if err != nil {
			return err
		}
		offset, err := strconv.Atoi(cursor)
		if err != nil {
			return fmt.Errorf("--cursor: %w", err)
		}
		selection = &client.Selection{Start: offset, End: offset}
	}

	c, err := client.Dial(ctx, baseUrl, user, table, printAlerter(out), client.WithLogger(logger))
	if err != nil {
		return err
	}
	defer c.Close()

	if err = c.EditCell(cellId, text, selection); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s updated\n", cellId)
	return err
}

func printAlerter(out io.Writer) client.Alerter {
	return client.AlertFunc(func(message string) {
		_, _ = fmt.Fprintln(out, message)
	})
}

// readCsvGrid accepts rows of different length, as a spreadsheet export may trim empty trailing cells.
func readCsvGrid(path string) (contracts.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}
