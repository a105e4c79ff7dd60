package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
	Stats(ctx context.Context) (*entity.MatchStats, error)
}

type matchRepository struct {
	conn *sql.DB
}

func NewMatchRepository(conn *sql.DB) MatchRepository {
	return &matchRepository{
		conn: conn,
	}
}

func (that *matchRepository) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT INTO matches (id, session_id, winner, moves, squares, finished_at) VALUES (?, ?, ?, ?, ?, ?)`

	squares, err := json.Marshal(match.Squares)
	if err != nil {
		return fmt.Errorf("can't marshal squares: %w", err)
	}

	_, err = that.conn.ExecContext(ctx, query,
		match.ID, match.SessionID, match.Winner, match.Moves, string(squares), match.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	return nil
}

func (that *matchRepository) Recent(ctx context.Context, limit int) ([]*entity.Match, error) {
	query := `SELECT id, session_id, winner, moves, squares, finished_at FROM matches ORDER BY finished_at DESC, id LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*entity.Match, 0, limit)
	for rows.Next() {
		var (
			match      entity.Match
			squares    string
			finishedAt time.Time
		)

		if err = rows.Scan(&match.ID, &match.SessionID, &match.Winner, &match.Moves, &squares, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}

		if err = json.Unmarshal([]byte(squares), &match.Squares); err != nil {
			return nil, fmt.Errorf("can't unmarshal squares of match %s: %w", match.ID, err)
		}

		match.FinishedAt = finishedAt.UTC()
		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read matches: %w", err)
	}

	return matches, nil
}

func (that *matchRepository) Stats(ctx context.Context) (*entity.MatchStats, error) {
	query := `SELECT winner, COUNT(*) FROM matches GROUP BY winner`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query match stats: %w", err)
	}
	defer rows.Close()

	stats := &entity.MatchStats{}
	for rows.Next() {
		var (
			winner string
			count  int
		)

		if err = rows.Scan(&winner, &count); err != nil {
			return nil, fmt.Errorf("can't scan match stats: %w", err)
		}

		switch winner {
		case entity.PlayerX:
			stats.XWins = count
		case entity.PlayerO:
			stats.OWins = count
		case entity.PlayerTie:
			stats.Draws = count
		}
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read match stats: %w", err)
	}

	return stats, nil
}
