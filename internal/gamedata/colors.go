package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MarkerDef describes how a board marker is drawn: Label is the text shown
// on the cell, Color is used by the full-screen renderer and ANSI is the SGR
// foreground code used by the console renderer.
type MarkerDef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	ANSI  int    `json:"ansi"`
}

// TCellColor returns the marker color as a tcell.Color.
func (m MarkerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Markers []MarkerDef `json:"markers"`
	Goal    MarkerDef   `json:"goal"`
	Warning MarkerDef   `json:"warning"`
}

// Marker returns the marker with the given id.
func (p PaletteFile) Marker(id string) (MarkerDef, bool) {
	for _, m := range p.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return MarkerDef{}, false
}

// LoadPalette loads the marker palette from palette.json.
func LoadPalette() (PaletteFile, error) {
	return Load[PaletteFile]("palette.json")
}

// MustLoadPalette loads the marker palette, panicking on error.
func MustLoadPalette() PaletteFile {
	return MustLoad[PaletteFile]("palette.json")
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
