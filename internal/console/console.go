package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	colorX     = "#e06c75"
	colorO     = "#61afef"
	colorError = "#e5c07b"

	helpText = "commands: m <cell 0-8>, j <step>, asc, desc, new, q"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingNumber  = errors.New("command needs a number")
)

// Console plays one in-memory game in a terminal.
type Console struct {
	logger *slog.Logger

	in      *bufio.Scanner
	output  *termenv.Output
	session *entity.Session
}

func New(logger *slog.Logger, in io.Reader, output *termenv.Output) *Console {
	return &Console{
		logger: logger.With("component", "console"),

		in:      bufio.NewScanner(in),
		output:  output,
		session: entity.NewSession("local"),
	}
}

// Run reads commands until q, end of input or ctx cancellation. The board is
// redrawn after every command.
func (that *Console) Run(ctx context.Context) error {
	that.draw()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(that.output, "> ")
		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		quit, err := that.Execute(that.in.Text())
		if quit {
			return nil
		}

		if err != nil {
			that.logger.Debug("command rejected", "command", that.in.Text(), "error", err)
			fmt.Fprintln(that.output, that.output.String(err.Error()).Foreground(that.output.Color(colorError)))
			fmt.Fprintln(that.output, helpText)
			continue
		}

		that.draw()
	}
}

// Execute applies one command line to the session.
func (that *Console) Execute(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "m", "move":
		cell, err := number(fields)
		if err != nil {
			return false, err
		}
		_, err = tictactoe.Move(that.session, cell)
		return false, err
	case "j", "jump":
		step, err := number(fields)
		if err != nil {
			return false, err
		}
		return false, tictactoe.JumpTo(that.session, step)
	case "asc":
		return false, tictactoe.SetSortOrder(that.session, entity.SortAscending)
	case "desc":
		return false, tictactoe.SetSortOrder(that.session, entity.SortDescending)
	case "new":
		that.session = entity.NewSession(that.session.ID)
		return false, nil
	case "h", "help", "?":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}
}

func number(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %s", errMissingNumber, fields[0])
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errMissingNumber, fields[1])
	}

	return n, nil
}

func (that *Console) draw() {
	view := tictactoe.Render(that.session)
	fmt.Fprint(that.output, that.Format(view))
}

// Format draws the board, the status line and the move list.
func (that *Console) Format(view *tictactoe.View) string {
	var sb strings.Builder

	sb.WriteString("\n")
	for i, row := range view.Board {
		if i > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, that.formatCell(cell))
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(that.output.String(view.Status).Bold().String())
	sb.WriteString("\n\n")

	for _, move := range view.Moves {
		marker := "  "
		if move.Current {
			marker = "> "
		}

		line := fmt.Sprintf("%2d. %s", move.Step, move.Description)
		style := that.output.String(line)
		if move.Clicked {
			style = style.Reverse()
		}

		sb.WriteString(marker)
		sb.WriteString(style.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

func (that *Console) formatCell(cell tictactoe.Cell) string {
	if cell.Value == entity.EmptyCell {
		return that.output.String(fmt.Sprintf(" %d ", cell.Index)).Faint().String()
	}

	text := " " + cell.Value + " "
	if cell.Winner {
		text = "[" + cell.Value + "]"
	}

	style := that.output.String(text).Foreground(that.markColor(cell.Value))
	if cell.Winner {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *Console) markColor(mark string) termenv.Color {
	if mark == entity.PlayerX {
		return that.output.Color(colorX)
	}
	return that.output.Color(colorO)
}
