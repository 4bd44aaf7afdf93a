package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/diceboard/internal/game"
)

func newSimDisplay(t *testing.T) (*ScreenDisplay, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(100, 30)
	d := NewScreenDisplay(NewScreenFrom(sim))
	t.Cleanup(d.Close)
	return d, sim
}

// row returns the text drawn on line y of the simulation screen.
func row(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestScreenDisplayDrawsTrack(t *testing.T) {
	d, sim := newSimDisplay(t)

	d.ShowRules(testRules(t), 42)
	d.ShowBoard(testRules(t), players(5, 12))

	assert.Equal(t, "diceboard  seed 42", row(sim, 0))
	first := row(sim, trackTop)
	assert.True(t, strings.HasPrefix(first, "01"), "first track row %q", first)
	assert.Contains(t, first, "03(M$)")
	assert.Contains(t, first, "P1")
	assert.Contains(t, row(sim, trackTop+1), "P2($)")
}

func TestScreenDisplayTooSmall(t *testing.T) {
	d, sim := newSimDisplay(t)
	sim.SetSize(40, 10)

	d.ShowBoard(testRules(t), players(5, 12))

	assert.Equal(t, "Terminal too small, need 80x14", row(sim, 0))
	assert.Empty(t, row(sim, trackTop))
}

func TestScreenDisplayWaitForRoll(t *testing.T) {
	d, sim := newSimDisplay(t)
	d.ShowBoard(testRules(t), players(0, 0))

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	require.NoError(t, d.WaitForRoll(context.Background(), "Ana"))

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	require.NoError(t, d.WaitForRoll(context.Background(), "Beto"))

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.ErrorIs(t, d.WaitForRoll(context.Background(), "Ana"), ErrQuit)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.ErrorIs(t, d.WaitForRoll(context.Background(), "Ana"), ErrQuit)
}

func TestScreenDisplayOutcome(t *testing.T) {
	d, sim := newSimDisplay(t)
	d.ShowBoard(testRules(t), players(30, 4))
	d.ShowTurn(game.TurnResult{Player: "J1", Dice: 6, From: 24, To: 30, CoinsBefore: 2, CoinsAfter: 2})
	d.ShowOutcome(game.Outcome{Winner: "J1", Reason: game.ReasonReachedGoal})

	var screenText strings.Builder
	_, _, height := sim.GetContents()
	for y := 0; y < height; y++ {
		screenText.WriteString(row(sim, y))
		screenText.WriteString("\n")
	}
	assert.Contains(t, screenText.String(), "Player: J1  Dice: 6  Pos: 24→30  Coins: 2→2")
	assert.Contains(t, screenText.String(), "J1 wins the race!")

	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	d.WaitForExit()
}
