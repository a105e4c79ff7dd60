package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const (
	classSquare       = "square"
	classWinnerSquare = "winner square"
	classMove         = "move"
	classMoveClicked  = "moveClicked"

	statusDrawn = "The match is drawn"
)

// Cell is one rendered board position.
type Cell struct {
	Index  int    `json:"index"`
	Value  string `json:"value"`
	Winner bool   `json:"winner"`
}

func (that Cell) Class() string {
	if that.Winner {
		return classWinnerSquare
	}
	return classSquare
}

// MoveButton is one rendered history entry.
type MoveButton struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Clicked     bool   `json:"clicked"`
	Current     bool   `json:"current"`
}

func (that MoveButton) Class() string {
	if that.Clicked {
		return classMoveClicked
	}
	return classMove
}

// View is everything a surface needs to draw one frame of the game.
type View struct {
	SessionID   string       `json:"session_id"`
	Board       [][]Cell     `json:"board"`
	Winner      string       `json:"winner,omitempty"`
	WinningLine []int        `json:"winning_line"`
	Tie         bool         `json:"tie"`
	Status      string       `json:"status"`
	NextPlayer  string       `json:"next_player"`
	StepNumber  int          `json:"step_number"`
	SortOrder   string       `json:"sort_order"`
	Moves       []MoveButton `json:"moves"`
}

// Render projects the session into a View. The one-shot move highlight set by
// JumpTo is carried by the returned view and cleared from the session.
func Render(session *entity.Session) *View {
	current := session.Current()
	winner, winningLine := entity.CalculateWinner(current.Squares)
	tie := winner == entity.EmptyCell && entity.CalculateTie(current.Squares)

	view := &View{
		SessionID:   session.ID,
		Board:       renderBoard(current.Squares, winningLine),
		Winner:      winner,
		WinningLine: winningLine,
		Tie:         tie,
		Status:      status(winner, tie, session.NextMark()),
		NextPlayer:  session.NextMark(),
		StepNumber:  session.StepNumber,
		SortOrder:   session.SortOrder,
		Moves:       renderMoves(session),
	}

	if view.WinningLine == nil {
		view.WinningLine = []int{}
	}

	session.ClearHighlights()

	return view
}

func renderBoard(squares entity.Squares, winningLine []int) [][]Cell {
	board := make([][]Cell, 0, entity.BoardSize/entity.RowSize)
	for start := 0; start < entity.BoardSize; start += entity.RowSize {
		row := make([]Cell, 0, entity.RowSize)
		for i := start; i < start+entity.RowSize; i++ {
			row = append(row, Cell{
				Index:  i,
				Value:  squares[i],
				Winner: slices.Contains(winningLine, i),
			})
		}
		board = append(board, row)
	}
	return board
}

func renderMoves(session *entity.Session) []MoveButton {
	moves := make([]MoveButton, 0, len(session.History))
	for step, snapshot := range session.History {
		moves = append(moves, MoveButton{
			Step:        step,
			Description: describeMove(step, snapshot),
			Clicked:     session.MoveClicked[step],
			Current:     step == session.StepNumber,
		})
	}

	if session.SortOrder == entity.SortDescending {
		slices.Reverse(moves)
	}

	return moves
}

func describeMove(step int, snapshot entity.BoardSnapshot) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d. In the column: %d and row: %d", step, snapshot.Column, snapshot.Row)
}

func status(winner string, tie bool, next string) string {
	switch {
	case winner != entity.EmptyCell:
		return "Winner " + winner
	case tie:
		return statusDrawn
	default:
		return "Next Player " + next
	}
}
