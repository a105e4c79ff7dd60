package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	maxMessageSize = 4096
)

var errUnknownAction = errors.New("unknown action")

type gameUseCase interface {
	View(ctx context.Context, id string) (*tictactoe.View, error)

	Move(ctx context.Context, id string, cell int) (*entity.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Session, error)
	SetSortOrder(ctx context.Context, id, order string) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
}

// handlerFunc applies one action to the session and returns the id of the
// session to reply with.
type handlerFunc func(ctx context.Context, sessionID string, payload *RequestPayload) (string, error)

type Server struct {
	logger *slog.Logger
	game   gameUseCase

	sessionTTL time.Duration
	upgrader   websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameUseCase, sessionTTL time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,

		sessionTTL: sessionTTL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionSort] = server.handleSort
	server.handlers[actionRestart] = server.handleRestart

	return server
}

// ServeHTTP upgrades the request and serves game actions for the cookie
// session until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	// resolve the session before the upgrade so the cookie can ride on the handshake.
	view, err := that.game.View(r.Context(), rest.SessionID(r))
	if err != nil {
		log.Error("failed to load session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	header := http.Header{}
	header.Add("Set-Cookie", rest.SessionCookie(view.SessionID, that.sessionTTL).String())

	conn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "sessionID", view.SessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go that.keepAlive(ctx, conn)

	if err = that.handleMessages(ctx, conn, view.SessionID); err != nil {
		log.Debug("connection closed", "sessionID", view.SessionID, "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) error {
	log := that.logger.With("method", "handleMessages")

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		var reply ResponsePayload
		sessionID, reply = that.dispatch(ctx, sessionID, &message)

		if err = that.sendMessage(conn, message.Action, reply); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, sessionID string, message *Message) (string, ResponsePayload) {
	log := that.logger.With("method", "dispatch", "action", message.Action, "sessionID", sessionID)

	handler, ok := that.handlers[message.Action]
	if !ok {
		return sessionID, ResponsePayload{Error: errUnknownAction.Error()}
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return sessionID, ResponsePayload{Error: "malformed payload"}
		}
	}

	nextID, err := handler(ctx, sessionID, &payload)
	if err != nil {
		if rest.IsBadRequest(err) {
			return sessionID, ResponsePayload{Error: err.Error()}
		}

		log.Error("failed to process message", "error", err)
		return sessionID, ResponsePayload{Error: "internal error"}
	}

	view, err := that.game.View(ctx, nextID)
	if err != nil {
		log.Error("failed to render game", "error", err)
		return nextID, ResponsePayload{Error: "internal error"}
	}

	return view.SessionID, ResponsePayload{SessionID: view.SessionID, Game: view}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: reason})
}

func (that *Server) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
