package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/diceboard/internal/board"
	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/game"
)

// ruleTag returns "(M)", "($)", "(M$)" or "" for a cell.
func ruleTag(rules *board.RuleTable, c board.Cell) string {
	var tags string
	if rules.HasMovement(c) {
		tags += "M"
	}
	if rules.HasCoin(c) {
		tags += "$"
	}
	if tags == "" {
		return ""
	}
	return "(" + tags + ")"
}

// cellLabel renders one track cell: the player marker or the zero-padded
// cell number, followed by its rule tag.
func cellLabel(p Palette, rules *board.RuleTable, c board.Cell, players []entity.Player) string {
	mark := c.String()
	if id := markerAt(int(c), players); id != "" {
		m := p.marker(id)
		mark = m.Color + m.Label + p.Reset
	}
	return mark + ruleTag(rules, c)
}

// RenderBoard renders the track, the status line and the legend.
func RenderBoard(p Palette, rules *board.RuleTable, players []entity.Player) string {
	cells := make([]string, 0, int(board.Goal))
	for c := board.Start + 1; c <= board.Goal; c++ {
		cells = append(cells, cellLabel(p, rules, c, players))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")
	b.WriteString(statusLine(p, players))
	b.WriteString("\n")
	b.WriteString(p.Dim + "Legend: (M)=movement ($)=coins" + p.Reset)
	b.WriteString("\n")
	return b.String()
}

func statusLine(p Palette, players []entity.Player) string {
	parts := make([]string, 0, len(players))
	for i := range players {
		parts = append(parts, fmt.Sprintf("%sP%d%s=%s", p.Bold, i+1, p.Reset, players[i].String()))
	}
	return strings.Join(parts, "  |  ")
}

// FormatTurn renders the one-line turn summary.
func FormatTurn(p Palette, r game.TurnResult) string {
	return fmt.Sprintf("%sPlayer:%s %s  %sDice:%s %d  %sPos:%s %d→%d  %sCoins:%s %d→%d",
		p.Bold, p.Reset, r.Player,
		p.Bold, p.Reset, r.Dice,
		p.Bold, p.Reset, r.From, r.To,
		p.Bold, p.Reset, r.CoinsBefore, r.CoinsAfter,
	)
}

// FormatOutcome renders the end-of-game announcement lines.
func FormatOutcome(p Palette, o game.Outcome) []string {
	if o.Reason == game.ReasonOutOfCoins {
		return []string{
			fmt.Sprintf("%s💀 %s ran out of coins.%s", p.Warning, o.Loser, p.Reset),
			fmt.Sprintf("%s🏆 %s wins by forfeit.%s", p.Goal, o.Winner, p.Reset),
		}
	}
	return []string{fmt.Sprintf("%s🏆 %s wins the race!%s", p.Goal, o.Winner, p.Reset)}
}

// FormatRules renders the rule table announcement.
func FormatRules(p Palette, rules *board.RuleTable, seed int64) []string {
	return []string{
		fmt.Sprintf("%sMovement rules:%s %s", p.Bold, p.Reset, board.FormatRules(rules.MovementRules())),
		fmt.Sprintf("%sCoin rules:%s %s", p.Bold, p.Reset, board.FormatRules(rules.CoinRules())),
		fmt.Sprintf("%sSeed:%s %d", p.Bold, p.Reset, seed),
	}
}
