package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Move puts the next player's mark into cell. Clicking an occupied cell or
// any cell of a won board is ignored and reported as not applied.
func Move(session *entity.Session, cell int) (bool, error) {
	if !entity.IsValidCell(cell) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	history := session.History[:session.StepNumber+1]
	current := history[len(history)-1]

	if winner, _ := entity.CalculateWinner(current.Squares); winner != entity.EmptyCell {
		return false, nil
	}

	if current.Squares[cell] != entity.EmptyCell {
		return false, nil
	}

	squares := current.Squares
	squares[cell] = session.NextMark()

	session.History = append(slices.Clip(history), entity.NewSnapshot(squares, cell))
	session.StepNumber = len(session.History) - 1
	session.XIsNext = !session.XIsNext
	session.ClearHighlights()

	return true, nil
}

// JumpTo shows an earlier (or later) snapshot without touching the history.
// The jumped-to entry stays highlighted until the next Render.
func JumpTo(session *entity.Session, step int) error {
	if step < 0 || step >= len(session.History) {
		return fmt.Errorf("%w: step %d", apperror.ErrInvalidStep, step)
	}

	session.StepNumber = step
	session.XIsNext = step%2 == 0
	session.ClearHighlights()
	session.MoveClicked[step] = true

	return nil
}

// SetSortOrder changes the order of the rendered move list only.
func SetSortOrder(session *entity.Session, order string) error {
	if !entity.IsValidSortOrder(order) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSortOrder, order)
	}

	session.SortOrder = order
	session.ClearHighlights()

	return nil
}

// IsFinished reports whether the displayed board is won or drawn.
func IsFinished(session *entity.Session) bool {
	squares := session.Current().Squares
	if winner, _ := entity.CalculateWinner(squares); winner != entity.EmptyCell {
		return true
	}
	return entity.CalculateTie(squares)
}
