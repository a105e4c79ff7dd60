package entity

import "time"

// Match is the archived result of a finished game. Winner is PlayerX,
// PlayerO or PlayerTie.
type Match struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	Squares    Squares   `json:"squares"`
	FinishedAt time.Time `json:"finished_at"`
}

type MatchStats struct {
	Total int `json:"total"`
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}
