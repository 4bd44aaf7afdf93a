package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/diceboard/internal/board"
	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/gamedata"
)

// Track layout on the full screen: three rows of ten cells.
const (
	cellsPerRow = 10
	cellWidth   = 8
	trackTop    = 2

	minWidth  = cellsPerRow * cellWidth
	minHeight = 14
)

// View is everything the full-screen renderer draws.
type View struct {
	Seed     int64
	Rules    *board.RuleTable
	Players  []entity.Player
	LastTurn string
	Message  []string
	Prompt   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.PaletteFile
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: gamedata.MustLoadPalette(),
	}
}

// Render draws the track, status, last turn and prompt.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	if w, h := r.screen.Size(); w < minWidth || h < minHeight {
		r.screen.DrawText(0, 0, fmt.Sprintf("Terminal too small, need %dx%d", minWidth, minHeight), tcell.StyleDefault.Bold(true))
		r.screen.Show()
		return
	}

	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	r.screen.DrawText(0, 0, fmt.Sprintf("diceboard  seed %d", v.Seed), bold)

	if v.Rules != nil {
		r.renderTrack(v.Rules, v.Players)
	}

	y := trackTop + int(board.Goal)/cellsPerRow + 1
	x := 0
	for i := range v.Players {
		if i > 0 {
			x = r.screen.DrawText(x, y, "  |  ", tcell.StyleDefault)
		}
		x = r.screen.DrawText(x, y, fmt.Sprintf("P%d", i+1), r.playerStyle(i).Bold(true))
		x = r.screen.DrawText(x, y, "="+v.Players[i].String(), tcell.StyleDefault)
	}
	r.screen.DrawText(0, y+1, "Legend: (M)=movement ($)=coins", dim)

	r.screen.DrawText(0, y+3, v.LastTurn, tcell.StyleDefault)
	for i, line := range v.Message {
		r.screen.DrawText(0, y+5+i, line, tcell.StyleDefault.Foreground(r.palette.Goal.TCellColor()).Bold(true))
	}
	if v.Prompt != "" {
		r.screen.DrawText(0, y+5+len(v.Message), v.Prompt, bold)
	}

	r.screen.Show()
}

// renderTrack draws cells 1..30 in rows of ten.
func (r *Renderer) renderTrack(rules *board.RuleTable, players []entity.Player) {
	for c := board.Start + 1; c <= board.Goal; c++ {
		i := int(c) - 1
		x := (i % cellsPerRow) * cellWidth
		y := trackTop + i/cellsPerRow

		style := tcell.StyleDefault
		label := c.String()
		if id := markerAt(int(c), players); id != "" {
			m, _ := r.palette.Marker(id)
			label = m.Label
			style = style.Foreground(m.TCellColor()).Bold(true)
		}
		x = r.screen.DrawText(x, y, label, style)
		r.screen.DrawText(x, y, ruleTag(rules, c), tcell.StyleDefault.Dim(true))
	}
}

// playerStyle returns the marker style for a seat.
func (r *Renderer) playerStyle(seat int) tcell.Style {
	id := markerP1
	if seat == 1 {
		id = markerP2
	}
	m, _ := r.palette.Marker(id)
	return tcell.StyleDefault.Foreground(m.TCellColor())
}
