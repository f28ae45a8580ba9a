// Package client is the editing side of the collaborative spreadsheet: it relays local cell edits,
// applies the edits of other users with their cursor labels, and saves the table.
package client

import (
	"collabSheet/contracts"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var CellNotFoundError = errors.New("cell not found in table")

type Client struct {
	baseUrl    string
	user       string
	table      *Table
	labels     *LabelBoard
	alerter    Alerter
	conn       *websocket.Conn
	writeMu    sync.Mutex
	httpClient *http.Client
	logger     *slog.Logger
	onApply    func(update contracts.CellUpdate, applied bool)
}

type Option func(c *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithApplyHook is called after every received update; applied is false when the cell is not in the table.
func WithApplyHook(hook func(update contracts.CellUpdate, applied bool)) Option {
	return func(c *Client) {
		c.onApply = hook
	}
}

// Dial connects user to the relay of the server at baseUrl (http:// or https://).
func Dial(ctx context.Context, baseUrl string, user string, table *Table, alerter Alerter, options ...Option) (*Client, error) {
	if user == "" {
		return nil, contracts.EmptyUserError
	}

	c := &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		user:       user,
		table:      table,
		labels:     NewLabelBoard(),
		alerter:    alerter,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	for _, option := range options {
		option(c)
	}

	relayUrl, err := RelayUrl(c.baseUrl, user)
	if err != nil {
		return nil, err
	}

	c.conn, _, err = websocket.DefaultDialer.DialContext(ctx, relayUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", relayUrl, err)
	}

	return c, nil
}

// RelayUrl maps the server base url to its websocket endpoint for user.
func RelayUrl(baseUrl string, user string) (string, error) {
	u, err := url.Parse(baseUrl)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported url scheme `%s`", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + contracts.RelayPath
	u.RawQuery = url.Values{"user": {user}}.Encode()
	return u.String(), nil
}

func (c *Client) User() string {
	return c.user
}

func (c *Client) Table() *Table {
	return c.table
}

func (c *Client) Labels() *LabelBoard {
	return c.labels
}

// EditCell applies a local edit and relays it with the cursor position inside the cell.
func (c *Client) EditCell(cellId string, text string, selection *Selection) error {
	cell, ok := c.table.SetText(cellId, text)
	if !ok {
		return fmt.Errorf("%s: %w", cellId, CellNotFoundError)
	}

	frame, err := contracts.EncodeCellUpdate(contracts.CellUpdate{
		Id:    cell.Id,
		Text:  text,
		Label: CursorOffset(text, selection),
		User:  c.user,
	})
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

// Apply writes a relayed edit into the table. The author's label moves to the cell unless the author is this client.
func (c *Client) Apply(update contracts.CellUpdate) bool {
	cell, ok := c.table.SetText(update.Id, update.Text)
	if !ok {
		return false
	}

	if update.User != c.user {
		c.labels.Place(update.User, cell)
	}
	return true
}

// Listen applies relayed edits until ctx is done or the server closes the connection.
func (c *Client) Listen(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.Close()
	})
	defer stop()

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		envelope, err := contracts.DecodeEnvelope(frame)
		if err != nil {
			c.logger.Warn("malformed relay frame", "err", err)
			continue
		}
		if envelope.Event != contracts.EventUpdateCell {
			continue
		}

		update, err := envelope.CellUpdate()
		if err != nil {
			c.logger.Warn("malformed cell update", "err", err)
			continue
		}

		applied := c.Apply(update)
		if c.onApply != nil {
			c.onApply(update, applied)
		}
	}
}

// Save posts the whole table; the outcome is reported through the alerter.
func (c *Client) Save(ctx context.Context) error {
	return Save(ctx, c.httpClient, c.baseUrl, c.table.Rows(), c.alerter, c.logger)
}

func (c *Client) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	c.writeMu.Unlock()

	return c.conn.Close()
}
