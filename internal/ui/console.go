package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/samdwyer/diceboard/internal/board"
	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/game"
)

// Console prints the game as scrolling text.
type Console struct {
	out     io.Writer
	in      *bufio.Reader
	palette Palette
}

// NewConsole creates a console display. Colors are used only when requested
// and out is a terminal.
func NewConsole(out io.Writer, in io.Reader, colors bool) *Console {
	return &Console{
		out:     out,
		in:      bufferedReader(in),
		palette: NewPalette(colors && IsTerminal(out)),
	}
}

// NewConsoleWithPalette creates a console display with an explicit palette.
func NewConsoleWithPalette(out io.Writer, in io.Reader, p Palette) *Console {
	return &Console{out: out, in: bufferedReader(in), palette: p}
}

// Palette returns the palette the console draws with.
func (c *Console) Palette() Palette { return c.palette }

// ShowRules prints the rule table and the start banner.
func (c *Console) ShowRules(rules *board.RuleTable, seed int64) {
	for _, line := range FormatRules(c.palette, rules, seed) {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintf(c.out, "\n%sThe race begins!%s\n", c.palette.Bold, c.palette.Reset)
}

// ShowBoard prints the track.
func (c *Console) ShowBoard(rules *board.RuleTable, players []entity.Player) {
	fmt.Fprintln(c.out, RenderBoard(c.palette, rules, players))
}

// WaitForRoll prompts the player and waits for a line on the input.
func (c *Console) WaitForRoll(ctx context.Context, player string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%sTurn of %s%s. Press ENTER to roll the dice… ", c.palette.Bold, player, c.palette.Reset)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("wait for roll: %w", err)
	}
	return ctx.Err()
}

// ShowTurn prints the turn summary.
func (c *Console) ShowTurn(r game.TurnResult) {
	fmt.Fprintln(c.out, FormatTurn(c.palette, r))
}

// ShowOutcome prints the winner announcement.
func (c *Console) ShowOutcome(o game.Outcome) {
	fmt.Fprintln(c.out)
	for _, line := range FormatOutcome(c.palette, o) {
		fmt.Fprintln(c.out, line)
	}
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func bufferedReader(r io.Reader) *bufio.Reader {
	if r == nil {
		r = strings.NewReader("")
	}
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

var _ game.Display = (*Console)(nil)
