package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type matchRepoDep interface {
	Save(ctx context.Context, match *entity.Match) error
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
	Stats(ctx context.Context) (*entity.MatchStats, error)
}

// GameManager runs the game controller against stored sessions. Every
// method returns the session it worked on, which may be a new one when id
// was empty or unknown.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepoDep
	matchRepo   matchRepoDep
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepoDep, matchRepo matchRepoDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		matchRepo:   matchRepo,
	}
}

func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "GetOrCreateSession")

	if id != "" {
		session, err := that.sessionRepo.GetByID(ctx, id)
		switch {
		case err == nil:
			return session, nil
		case errors.Is(err, apperror.ErrCorruptedSession):
			log.Warn("discarding corrupted session", "sessionID", id, "error", err)
		case !errors.Is(err, apperror.ErrSessionNotFound):
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	}

	session := entity.NewSession(uuid.NewString())
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Debug("session created", "sessionID", session.ID)

	return session, nil
}

func (that *GameManager) Move(ctx context.Context, id string, cell int) (*entity.Session, error) {
	session, err := that.GetOrCreateSession(ctx, id)
	if err != nil {
		return nil, err
	}

	applied, err := tictactoe.Move(session, cell)
	if err != nil {
		return session, fmt.Errorf("failed to make move: %w", err)
	}

	if !applied {
		return session, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if tictactoe.IsFinished(session) {
		that.archive(ctx, session)
	}

	return session, nil
}

func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session) error {
		if err := tictactoe.JumpTo(session, step); err != nil {
			return fmt.Errorf("failed to jump: %w", err)
		}
		return nil
	})
}

func (that *GameManager) SetSortOrder(ctx context.Context, id, order string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session) error {
		if err := tictactoe.SetSortOrder(session, order); err != nil {
			return fmt.Errorf("failed to sort: %w", err)
		}
		return nil
	})
}

// Restart starts a new game in the same session.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session) error {
		*session = *entity.NewSession(session.ID)
		return nil
	})
}

// View renders the session. A pending move highlight is consumed and the
// session saved without it.
func (that *GameManager) View(ctx context.Context, id string) (*tictactoe.View, error) {
	session, err := that.GetOrCreateSession(ctx, id)
	if err != nil {
		return nil, err
	}

	consumed := session.HasHighlight()
	view := tictactoe.Render(session)

	if consumed {
		if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update session: %w", err)
		}
	}

	return view, nil
}

func (that *GameManager) Stats(ctx context.Context) (*entity.MatchStats, error) {
	stats, err := that.matchRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get match stats: %w", err)
	}
	return stats, nil
}

func (that *GameManager) RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error) {
	matches, err := that.matchRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent matches: %w", err)
	}
	return matches, nil
}

func (that *GameManager) update(ctx context.Context, id string, apply func(session *entity.Session) error) (*entity.Session, error) {
	session, err := that.GetOrCreateSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = apply(session); err != nil {
		return session, err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// archive records the finished match. Failures are logged only, the game
// itself is already saved.
func (that *GameManager) archive(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "archive", "sessionID", session.ID)

	current := session.Current()
	winner, _ := entity.CalculateWinner(current.Squares)
	if winner == entity.EmptyCell {
		winner = entity.PlayerTie
	}

	match := &entity.Match{
		ID:         uuid.NewString(),
		SessionID:  session.ID,
		Winner:     winner,
		Moves:      session.StepNumber,
		Squares:    current.Squares,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.matchRepo.Save(ctx, match); err != nil {
		log.Error("failed to archive match", "error", err)
		return
	}

	log.Info("match finished", "winner", winner, "moves", match.Moves)
}
