package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const maxBodySize = 1 << 12

type matchUseCase interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetMatch() usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	SetPlayerNames(nameX, nameO string) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type namesRequest struct {
	X string `json:"x"`
	O string `json:"o"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	match  matchUseCase
}

func newHandlers(logger *slog.Logger, match matchUseCase) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		match:  match,
	}
}

func (that *handlers) getMatch(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, r, http.StatusOK, that.match.Snapshot())
}

func (that *handlers) playTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decode(w, r, &req); err != nil {
		that.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if req.Cell == nil {
		that.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	result := that.match.MakeTurn(r.Context(), *req.Cell)
	that.writeJSON(w, r, turnStatus(result), result)
}

func (that *handlers) resetMatch(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, r, http.StatusOK, that.match.ResetMatch())
}

func (that *handlers) resetScores(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, r, http.StatusOK, that.match.ResetScores(r.Context()))
}

func (that *handlers) setPlayerNames(w http.ResponseWriter, r *http.Request) {
	var req namesRequest
	if err := decode(w, r, &req); err != nil {
		that.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	that.writeJSON(w, r, http.StatusOK, that.match.SetPlayerNames(req.X, req.O))
}

func (that *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err, "requestID", middleware.GetReqID(r.Context()))
	}
}

func turnStatus(result usecase.TurnResult) int {
	if result.Kind != tictactoe.Rejected {
		return http.StatusOK
	}

	if errors.Is(result.Reason, apperror.ErrInvalidCell) {
		return http.StatusBadRequest
	}

	return http.StatusConflict
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}
