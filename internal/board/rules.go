package board

import (
	"context"
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/diceboard/internal/gamedata"
	"github.com/samdwyer/diceboard/internal/telemetry"
)

// RuleTable maps cells to movement and coin effects. It is built once per
// game and never modified afterwards.
type RuleTable struct {
	movement map[Cell]int
	coins    map[Cell]int
}

// Generate builds a rule table by drawing two random samples of cells from
// the rule range. The slice of candidate cells is shuffled once for the
// movement cells and shuffled again for the coin cells, so exactly two
// shuffles are consumed from rng. Values are assigned in the order they are
// listed in the embedded effect data.
func Generate(ctx context.Context, rng *rand.Rand) (*RuleTable, error) {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "rules.generate")
	defer span.End()

	effects, err := gamedata.LoadEffects()
	if err != nil {
		return nil, fmt.Errorf("load effects: %w", err)
	}

	cells := make([]Cell, 0, int(LastRuleCell-FirstRuleCell)+1)
	for c := FirstRuleCell; c <= LastRuleCell; c++ {
		cells = append(cells, c)
	}

	shuffle := func() {
		rng.Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})
	}

	rt := &RuleTable{
		movement: make(map[Cell]int, gamedata.EffectSetSize),
		coins:    make(map[Cell]int, gamedata.EffectSetSize),
	}

	shuffle()
	for i, def := range effects.Movement {
		delta := def.Delta
		if def.Reset {
			delta = ResetToStart
		}
		rt.movement[cells[i]] = delta
	}

	shuffle()
	for i, def := range effects.Coins {
		rt.coins[cells[i]] = def.Delta
	}

	span.SetAttributes(
		attribute.IntSlice("rules.movement_cells", cellInts(rt.MovementCells())),
		attribute.IntSlice("rules.coin_cells", cellInts(rt.CoinCells())),
	)

	return rt, nil
}

// NewRuleTable builds a rule table from explicit mappings, e.g. to replay a
// known board. Every cell must lie in the rule range.
func NewRuleTable(movement, coins map[Cell]int) (*RuleTable, error) {
	for c := range movement {
		if !c.IsRuleCell() {
			return nil, fmt.Errorf("movement rule on cell %d: outside %d..%d", c, FirstRuleCell, LastRuleCell)
		}
	}
	for c := range coins {
		if !c.IsRuleCell() {
			return nil, fmt.Errorf("coin rule on cell %d: outside %d..%d", c, FirstRuleCell, LastRuleCell)
		}
	}
	return &RuleTable{
		movement: maps.Clone(movement),
		coins:    maps.Clone(coins),
	}, nil
}

// MovementAt returns the movement delta for a cell, if any.
func (rt *RuleTable) MovementAt(c Cell) (int, bool) {
	delta, ok := rt.movement[c]
	return delta, ok
}

// CoinAt returns the coin delta for a cell, if any.
func (rt *RuleTable) CoinAt(c Cell) (int, bool) {
	delta, ok := rt.coins[c]
	return delta, ok
}

// HasMovement reports whether c holds a movement rule.
func (rt *RuleTable) HasMovement(c Cell) bool {
	_, ok := rt.movement[c]
	return ok
}

// HasCoin reports whether c holds a coin rule.
func (rt *RuleTable) HasCoin(c Cell) bool {
	_, ok := rt.coins[c]
	return ok
}

// MovementRules returns a copy of the movement mapping.
func (rt *RuleTable) MovementRules() map[Cell]int {
	return maps.Clone(rt.movement)
}

// CoinRules returns a copy of the coin mapping.
func (rt *RuleTable) CoinRules() map[Cell]int {
	return maps.Clone(rt.coins)
}

// MovementCells returns the movement rule cells in ascending order.
func (rt *RuleTable) MovementCells() []Cell {
	return slices.Sorted(maps.Keys(rt.movement))
}

// CoinCells returns the coin rule cells in ascending order.
func (rt *RuleTable) CoinCells() []Cell {
	return slices.Sorted(maps.Keys(rt.coins))
}

// String renders both mappings as "mov={c:d ...} mon={c:d ...}" with cells
// in ascending order.
func (rt *RuleTable) String() string {
	return "mov=" + FormatRules(rt.movement) + " mon=" + FormatRules(rt.coins)
}

// FormatRules renders a rule mapping as "{cell: delta, ...}" sorted by cell.
// The reset delta is shown as "start".
func FormatRules(rules map[Cell]int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range slices.Sorted(maps.Keys(rules)) {
		if i > 0 {
			b.WriteString(", ")
		}
		delta := rules[c]
		if delta == ResetToStart {
			fmt.Fprintf(&b, "%d: start", c)
			continue
		}
		fmt.Fprintf(&b, "%d: %+d", c, delta)
	}
	b.WriteByte('}')
	return b.String()
}

func cellInts(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = int(c)
	}
	return out
}
