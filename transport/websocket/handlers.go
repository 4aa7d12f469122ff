package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrCellRequired = errors.New("cell is required")

func (that *Server) handleState(_ context.Context, _ *Message) (ResponsePayload, error) {
	snapshot := that.match.Snapshot()

	return ResponsePayload{Match: &snapshot}, nil
}

func (that *Server) handleTurn(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var req TurnRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if req.Cell == nil {
		return ResponsePayload{}, ErrCellRequired
	}

	result := that.match.MakeTurn(ctx, *req.Cell)

	return ResponsePayload{Match: &result.Match, Outcome: &result.Outcome}, nil
}

func (that *Server) handleReset(_ context.Context, _ *Message) (ResponsePayload, error) {
	snapshot := that.match.ResetMatch()

	return ResponsePayload{Match: &snapshot}, nil
}

func (that *Server) handleScoresReset(ctx context.Context, _ *Message) (ResponsePayload, error) {
	snapshot := that.match.ResetScores(ctx)

	return ResponsePayload{Match: &snapshot}, nil
}

func (that *Server) handleNames(_ context.Context, msg *Message) (ResponsePayload, error) {
	var req NamesRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	snapshot := that.match.SetPlayerNames(req.X, req.O)

	return ResponsePayload{Match: &snapshot}, nil
}
