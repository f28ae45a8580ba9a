package main

import (
	"collabSheet/contracts"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const DefaultEditRate = 20.0
const DefaultEditBurst = 40

const (
	sendQueueSize  = 256
	maxFrameSize   = 64 * 1024
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	closeGraceWait = time.Second
)

var HubClosedError = errors.New("relay hub is closed")

type relayClient struct {
	id      string
	user    string
	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
}

// RelayHub fans every `update_cell` frame out to all connected clients, the sender included.
type RelayHub struct {
	register   chan *relayClient
	unregister chan *relayClient
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once

	// owned by Run()
	clients      map[*relayClient]bool
	clientsCount atomic.Int32

	persister contracts.EditPersister
	upgrader  websocket.Upgrader
	editRate  rate.Limit
	editBurst int
	logger    *slog.Logger
}

// NewRelayHub builds a hub; persister may be nil when edits are stored only on save.
func NewRelayHub(persister contracts.EditPersister, config Config, logger *slog.Logger) *RelayHub {
	return &RelayHub{
		register:   make(chan *relayClient),
		unregister: make(chan *relayClient),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
		clients:    map[*relayClient]bool{},
		persister:  persister,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     makeOriginChecker(config.AllowedOrigins),
		},
		editRate:  rate.Limit(config.EditRate),
		editBurst: config.EditBurst,
		logger:    logger,
	}
}

func (h *RelayHub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.clientsCount.Store(int32(len(h.clients)))
			h.logger.Info("relay client joined", "client", c.id, "user", c.user, "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Info("relay client left", "client", c.id, "user", c.user, "clients", len(h.clients))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.drop(c)
					h.logger.Warn("relay client too slow, dropped", "client", c.id, "user", c.user)
				}
			}

		case <-h.done:
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

func (h *RelayHub) drop(c *relayClient) {
	delete(h.clients, c)
	close(c.send)
	h.clientsCount.Store(int32(len(h.clients)))
}

func (h *RelayHub) ClientsCount() int {
	return int(h.clientsCount.Load())
}

func (h *RelayHub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *RelayHub) Broadcast(update contracts.CellUpdate) {
	msg, err := contracts.EncodeCellUpdate(update)
	if err != nil {
		h.logger.Error("encode cell update failed", "cell", update.Id, "err", err)
		return
	}

	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Serve upgrades the connection and blocks until the client leaves. Reads happen on a separate goroutine, writes on this one.
func (h *RelayHub) Serve(w http.ResponseWriter, r *http.Request, user string) error {
	if user == "" {
		return contracts.EmptyUserError
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &relayClient{
		id:      uuid.NewString(),
		user:    user,
		conn:    conn,
		send:    make(chan []byte, sendQueueSize),
		limiter: rate.NewLimiter(h.editRate, h.editBurst),
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
		_ = conn.Close()
		return HubClosedError
	}

	go h.readLoop(client)
	h.writeLoop(client)

	return nil
}

func (h *RelayHub) readLoop(client *relayClient) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.done:
		}
		_ = client.conn.Close()
	}()

	client.conn.SetReadLimit(maxFrameSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("relay read failed", "client", client.id, "user", client.user, "err", err)
			}
			return
		}

		h.handleFrame(client, frame)
	}
}

func (h *RelayHub) writeLoop(client *relayClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(closeGraceWait))
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *RelayHub) handleFrame(client *relayClient, frame []byte) {
	envelope, err := contracts.DecodeEnvelope(frame)
	if err != nil {
		h.logger.Warn("malformed relay frame", "client", client.id, "user", client.user, "err", err)
		return
	}

	if envelope.Event != contracts.EventUpdateCell {
		h.logger.Debug("unknown relay event ignored", "client", client.id, "event", envelope.Event)
		return
	}

	update, err := envelope.CellUpdate()
	if err == nil {
		update.Id, err = contracts.NormalizeCellId(update.Id)
	}
	if err != nil {
		h.logger.Warn("invalid cell update", "client", client.id, "user", client.user, "err", err)
		return
	}

	if !client.limiter.Allow() {
		h.logger.Warn("cell update rate exceeded, dropped", "client", client.id, "user", client.user, "cell", update.Id)
		return
	}

	// the connection identifies the author, not the payload
	update.User = client.user
	if update.Label < 0 {
		update.Label = 0
	} else if textLength := utf8.RuneCountInString(update.Text); update.Label > textLength {
		update.Label = textLength
	}

	if h.persister != nil {
		h.persister.Enqueue(update)
	}
	h.Broadcast(update)
}

// makeOriginChecker allows any origin when none is configured.
func makeOriginChecker(allowedOrigins []string) func(r *http.Request) bool {
	if len(allowedOrigins) == 0 {
		return func(r *http.Request) bool { return true }
	}

	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
