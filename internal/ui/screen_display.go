package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/diceboard/internal/board"
	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/game"
)

// ErrQuit is returned when the player leaves the full-screen game.
var ErrQuit = errors.New("player quit")

// ScreenDisplay draws the game full-screen with tcell.
type ScreenDisplay struct {
	screen   *Screen
	renderer *Renderer
	view     View
}

// NewScreenDisplay creates a full-screen display on the given screen.
func NewScreenDisplay(screen *Screen) *ScreenDisplay {
	return &ScreenDisplay{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// ShowRules records the table and seed for the header.
func (d *ScreenDisplay) ShowRules(rules *board.RuleTable, seed int64) {
	d.view.Rules = rules
	d.view.Seed = seed
	d.view.Message = FormatRules(Palette{}, rules, seed)[:2]
	d.renderer.Render(d.view)
}

// ShowBoard redraws the track.
func (d *ScreenDisplay) ShowBoard(rules *board.RuleTable, players []entity.Player) {
	d.view.Rules = rules
	d.view.Players = players
	d.renderer.Render(d.view)
}

// WaitForRoll blocks until Enter or space is pressed. Escape, Ctrl-C and q
// return ErrQuit.
func (d *ScreenDisplay) WaitForRoll(ctx context.Context, player string) error {
	d.view.Prompt = "Turn of " + player + ". Press ENTER to roll the dice (q to quit)"
	defer func() { d.view.Prompt = "" }()
	d.renderer.Render(d.view)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return ErrQuit
			case tcell.KeyRune:
				switch ev.Rune() {
				case ' ':
					return nil
				case 'q', 'Q':
					return ErrQuit
				}
			}
		case *tcell.EventResize:
			d.screen.Sync()
			d.renderer.Render(d.view)
		case nil:
			// Screen finalized.
			return ErrQuit
		}
	}
}

// ShowTurn shows the turn summary under the track.
func (d *ScreenDisplay) ShowTurn(r game.TurnResult) {
	d.view.LastTurn = FormatTurn(Palette{}, r)
	d.view.Message = nil
	d.renderer.Render(d.view)
}

// ShowOutcome shows the winner announcement.
func (d *ScreenDisplay) ShowOutcome(o game.Outcome) {
	d.view.Message = FormatOutcome(Palette{}, o)
	d.view.Prompt = "Press any key to exit"
	d.renderer.Render(d.view)
}

// WaitForExit blocks until any key is pressed.
func (d *ScreenDisplay) WaitForExit() {
	for {
		switch d.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			d.screen.Sync()
			d.renderer.Render(d.view)
		}
	}
}

// Close restores the terminal.
func (d *ScreenDisplay) Close() {
	d.screen.Close()
}

var _ game.Display = (*ScreenDisplay)(nil)
