package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const (
	actionState       = "match:state"
	actionTurn        = "match:turn"
	actionReset       = "match:reset"
	actionUpdate      = "match:update"
	actionScoresReset = "scores:reset"
	actionNames       = "players:names"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnRequest struct {
	Cell *int `json:"cell"`
}

type NamesRequest struct {
	X string `json:"x"`
	O string `json:"o"`
}

type ResponsePayload struct {
	Match   *usecase.Snapshot    `json:"match,omitempty"`
	Outcome *usecase.OutcomeView `json:"outcome,omitempty"`
	Error   string               `json:"error,omitempty"`
}
