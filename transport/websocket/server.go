package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

type matchUseCase interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetMatch() usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	SetPlayerNames(nameX, nameO string) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

type handlerFunc func(ctx context.Context, message *Message) (ResponsePayload, error)

// Server answers match commands over websocket connections and pushes every state change to all of them.
type Server struct {
	logger   *slog.Logger
	match    matchUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	clientsMutex sync.Mutex
	clients      map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func New(logger *slog.Logger, match matchUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		match:  match,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*client]struct{}),
	}

	server.handlers = map[string]handlerFunc{
		actionState:       server.handleState,
		actionTurn:        server.handleTurn,
		actionReset:       server.handleReset,
		actionScoresReset: server.handleScoresReset,
		actionNames:       server.handleNames,
	}

	return server
}

// ServeHTTP upgrades the request and serves the connection until the peer leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	that.register(c)

	log.Info("WebSocket connection established")

	go that.writePump(c)
	that.readPump(req.Context(), c)

	log.Info("WebSocket connection closed")
}

// Broadcast queues a state update for every connection. Connections whose buffer is full are dropped.
func (that *Server) Broadcast(snapshot usecase.Snapshot) {
	data, err := encode(actionUpdate, ResponsePayload{Match: &snapshot})
	if err != nil {
		that.logger.Error("failed to encode update", "error", err)
		return
	}

	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for c := range that.clients {
		select {
		case c.send <- data:
		default:
			that.logger.Warn("dropping slow websocket client", "remote", c.conn.RemoteAddr().String())
			delete(that.clients, c)
			close(c.send)
		}
	}
}

func (that *Server) register(c *client) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	that.clients[c] = struct{}{}
}

func (that *Server) unregister(c *client) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if _, ok := that.clients[c]; ok {
		delete(that.clients, c)
		close(c.send)
	}
}

// readPump - processes messages from the client.
func (that *Server) readPump(ctx context.Context, c *client) {
	log := that.logger.With("method", "readPump")

	defer func() {
		that.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		reply, err := that.dispatch(ctx, data)
		if err != nil {
			log.Error("error processing message", "error", err)
		}

		that.reply(c, reply)
	}
}

func (that *Server) dispatch(ctx context.Context, data []byte) ([]byte, error) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return mustEncodeError(actionError, "malformed message"), fmt.Errorf("failed to unmarshal message: %w", err)
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return mustEncodeError(message.Action, "unknown action"), fmt.Errorf("unknown action %q", message.Action)
	}

	payload, err := handler(ctx, &message)
	if err != nil {
		payload.Error = err.Error()
	}

	reply, encodeErr := encode(message.Action, payload)
	if encodeErr != nil {
		return mustEncodeError(message.Action, "internal error"), encodeErr
	}

	return reply, err
}

func (that *Server) reply(c *client, data []byte) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if _, ok := that.clients[c]; !ok {
		return
	}

	select {
	case c.send <- data:
	default:
		that.logger.Warn("reply dropped, client buffer full")
	}
}

func (that *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func encode(action string, payload ResponsePayload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return data, nil
}

func mustEncodeError(action, text string) []byte {
	data, err := encode(action, ResponsePayload{Error: text})
	if err != nil {
		panic(err)
	}

	return data
}
