package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	actionState   = "game:state"
	actionMove    = "game:move"
	actionJump    = "game:jump"
	actionSort    = "game:sort"
	actionRestart = "game:restart"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Cell  *int   `json:"cell,omitempty"`
	Step  *int   `json:"step,omitempty"`
	Order string `json:"order,omitempty"`
}

type ResponsePayload struct {
	SessionID string          `json:"session_id,omitempty"`
	Game      *tictactoe.View `json:"game,omitempty"`
	Error     string          `json:"error,omitempty"`
}
