package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

func (that *Server) handleState(_ context.Context, sessionID string, _ *RequestPayload) (string, error) {
	return sessionID, nil
}

func (that *Server) handleMove(ctx context.Context, sessionID string, payload *RequestPayload) (string, error) {
	if payload.Cell == nil {
		return "", fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell)
	}

	session, err := that.game.Move(ctx, sessionID, *payload.Cell)
	if err != nil {
		return "", err
	}

	return session.ID, nil
}

func (that *Server) handleJump(ctx context.Context, sessionID string, payload *RequestPayload) (string, error) {
	if payload.Step == nil {
		return "", fmt.Errorf("%w: step is required", apperror.ErrInvalidStep)
	}

	session, err := that.game.JumpTo(ctx, sessionID, *payload.Step)
	if err != nil {
		return "", err
	}

	return session.ID, nil
}

func (that *Server) handleSort(ctx context.Context, sessionID string, payload *RequestPayload) (string, error) {
	session, err := that.game.SetSortOrder(ctx, sessionID, payload.Order)
	if err != nil {
		return "", err
	}

	return session.ID, nil
}

func (that *Server) handleRestart(ctx context.Context, sessionID string, _ *RequestPayload) (string, error) {
	session, err := that.game.Restart(ctx, sessionID)
	if err != nil {
		return "", err
	}

	return session.ID, nil
}
