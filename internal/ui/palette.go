// Package ui renders the race in the terminal and collects player input.
package ui

import (
	"fmt"

	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/gamedata"
)

// Marker identifiers in palette.json.
const (
	markerP1   = "p1"
	markerP2   = "p2"
	markerBoth = "both"
)

// Marker is a colored label drawn on a board cell.
type Marker struct {
	Label string
	Color string // SGR sequence, empty when colors are off
}

// Palette holds the console escape sequences. The zero value draws plain text.
type Palette struct {
	Reset, Bold, Dim string
	Goal, Warning    string

	P1, P2, Both Marker
}

// NewPalette builds a palette from the embedded marker data. With colors
// disabled only the marker labels are kept.
func NewPalette(colors bool) Palette {
	data := gamedata.MustLoadPalette()
	sgr := func(code int) string {
		if !colors {
			return ""
		}
		return fmt.Sprintf("\033[%dm", code)
	}
	marker := func(id string) Marker {
		m, ok := data.Marker(id)
		if !ok {
			return Marker{Label: "?"}
		}
		return Marker{Label: m.Label, Color: sgr(m.ANSI)}
	}

	p := Palette{
		P1:   marker(markerP1),
		P2:   marker(markerP2),
		Both: marker(markerBoth),
	}
	if colors {
		p.Reset = sgr(0)
		p.Bold = sgr(1)
		p.Dim = sgr(2)
		p.Goal = sgr(data.Goal.ANSI)
		p.Warning = sgr(data.Warning.ANSI)
	}
	return p
}

// markerAt returns which marker, if any, belongs on a cell.
func markerAt(position int, players []entity.Player) string {
	var on1, on2 bool
	if len(players) > 0 {
		on1 = players[0].Position == position
	}
	if len(players) > 1 {
		on2 = players[1].Position == position
	}
	switch {
	case on1 && on2:
		return markerBoth
	case on1:
		return markerP1
	case on2:
		return markerP2
	default:
		return ""
	}
}

func (p Palette) marker(id string) Marker {
	switch id {
	case markerP1:
		return p.P1
	case markerP2:
		return p.P2
	case markerBoth:
		return p.Both
	default:
		return Marker{}
	}
}
