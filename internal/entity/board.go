package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	BoardSize = 9
	RowSize   = 3

	// MaxHistoryLength is the initial snapshot plus one snapshot per cell.
	MaxHistoryLength = BoardSize + 1
)

// WinCombos are checked in this order, the first uniform line wins.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Squares is the content of the nine board cells, row by row.
type Squares [BoardSize]string

// BoardSnapshot is one immutable board configuration in the game history.
// Row and Column are 1-indexed and zero for the initial empty board.
type BoardSnapshot struct {
	Squares Squares `json:"squares"`
	Row     int     `json:"row,omitempty"`
	Column  int     `json:"column,omitempty"`
}

// NewSnapshot builds the snapshot produced by a move into cell.
func NewSnapshot(squares Squares, cell int) BoardSnapshot {
	return BoardSnapshot{
		Squares: squares,
		Row:     cell/RowSize + 1,
		Column:  cell%RowSize + 1,
	}
}

// HasMove reports whether the snapshot was produced by a move.
func (that BoardSnapshot) HasMove() bool {
	return that.Row != 0 && that.Column != 0
}

// CalculateWinner returns the winning mark and line, or EmptyCell and nil.
func CalculateWinner(squares Squares) (string, []int) {
	for _, combo := range WinCombos {
		a, b, c := squares[combo[0]], squares[combo[1]], squares[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, []int{combo[0], combo[1], combo[2]}
		}
	}

	return EmptyCell, nil
}

// CalculateTie reports whether every cell is filled. It ignores the winner,
// callers must check CalculateWinner first.
func CalculateTie(squares Squares) bool {
	for _, cell := range squares {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsValidCell reports whether cell indexes a board position.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
