package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Session is the whole game state owned by one browser.
type Session struct {
	ID          string                 `json:"id"`
	History     []BoardSnapshot        `json:"history"`
	StepNumber  int                    `json:"step_number"`
	XIsNext     bool                   `json:"x_is_next"`
	SortOrder   string                 `json:"sort_order"`
	MoveClicked [MaxHistoryLength]bool `json:"move_clicked"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

var (
	errMultipleCellsChanged = errors.New("board changed in more than one cell")
	errBoardUnchanged       = errors.New("board did not change")
	errMoveAfterWin         = errors.New("move made after the game was won")
)

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		History:   []BoardSnapshot{{}},
		XIsNext:   true,
		SortOrder: SortAscending,
		UpdatedAt: time.Now().UTC(),
	}
}

// Current returns the snapshot being displayed.
func (that *Session) Current() BoardSnapshot {
	return that.History[that.StepNumber]
}

// NextMark returns the mark of the player to move.
func (that *Session) NextMark() string {
	if that.XIsNext {
		return PlayerX
	}
	return PlayerO
}

func (that *Session) HasHighlight() bool {
	for _, clicked := range that.MoveClicked {
		if clicked {
			return true
		}
	}
	return false
}

func (that *Session) ClearHighlights() {
	that.MoveClicked = [MaxHistoryLength]bool{}
}

func IsValidSortOrder(order string) bool {
	return order == SortAscending || order == SortDescending
}

// Validate checks the history invariants of a session read from outside.
func (that *Session) Validate() error {
	if len(that.History) == 0 || len(that.History) > MaxHistoryLength {
		return fmt.Errorf("%w: history length %d", apperror.ErrCorruptedSession, len(that.History))
	}

	if that.History[0] != (BoardSnapshot{}) {
		return fmt.Errorf("%w: history does not start with an empty board", apperror.ErrCorruptedSession)
	}

	for step := 1; step < len(that.History); step++ {
		if err := validateStep(that.History[step-1], that.History[step]); err != nil {
			return fmt.Errorf("%w: step %d: %w", apperror.ErrCorruptedSession, step, err)
		}
	}

	if that.StepNumber < 0 || that.StepNumber >= len(that.History) {
		return fmt.Errorf("%w: step number %d out of range", apperror.ErrCorruptedSession, that.StepNumber)
	}

	if that.XIsNext != (that.StepNumber%2 == 0) {
		return fmt.Errorf("%w: turn does not match step %d", apperror.ErrCorruptedSession, that.StepNumber)
	}

	if !IsValidSortOrder(that.SortOrder) {
		return fmt.Errorf("%w: sort order %q", apperror.ErrCorruptedSession, that.SortOrder)
	}

	return nil
}

// validateStep checks that next adds exactly one mark of the right player to prev.
func validateStep(prev, next BoardSnapshot) error {
	if winner, _ := CalculateWinner(prev.Squares); winner != EmptyCell {
		return errMoveAfterWin
	}

	changed := -1
	for i := range next.Squares {
		if prev.Squares[i] == next.Squares[i] {
			continue
		}
		if changed != -1 || prev.Squares[i] != EmptyCell {
			return errMultipleCellsChanged
		}
		changed = i
	}

	if changed == -1 {
		return errBoardUnchanged
	}

	filled := 0
	for _, cell := range prev.Squares {
		if cell != EmptyCell {
			filled++
		}
	}

	expected := PlayerX
	if filled%2 == 1 {
		expected = PlayerO
	}

	if next.Squares[changed] != expected {
		return fmt.Errorf("cell %d holds %q, want %q", changed, next.Squares[changed], expected)
	}

	if next != NewSnapshot(next.Squares, changed) {
		return fmt.Errorf("row and column do not match cell %d", changed)
	}

	return nil
}
