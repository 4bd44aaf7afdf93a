package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/diceboard/internal/telemetry"
)

// TurnResult contains the outcome of resolving one turn.
type TurnResult struct {
	Turn        int    // 1-based turn number
	PlayerIndex int    // 0 or 1
	Player      string // Name of the player who moved
	Dice        int    // Rolled value, 1..6

	From   int // Position before the roll
	Landed int // Position after the plain move; rules are looked up here
	To     int // Final position after any movement effect

	CoinsBefore int
	CoinsAfter  int

	MovementApplied bool
	MovementDelta   int // board.ResetToStart for a reset
	CoinApplied     bool
	CoinDelta       int
}

// ActiveIndex returns the index of the player who moves next. The cursor
// alternates 0, 1, 0, 1, ... starting from the first player.
func (g *Game) ActiveIndex() int {
	return g.turn % 2
}

// RollDice draws a uniform value in 1..6 from the game's random source.
func (g *Game) RollDice() int {
	return g.rng.Intn(6) + 1
}

// PlayTurn resolves one turn for the active player: wait for the
// acknowledgment in interactive mode, roll, move, then apply the movement
// and coin rules of the landing cell. Both rules are keyed on the cell
// reached by the plain move; a movement effect never triggers the rules of
// the cell it leads to.
func (g *Game) PlayTurn(ctx context.Context) (TurnResult, error) {
	idx := g.ActiveIndex()
	player := g.players[idx]

	if g.interactive {
		if err := g.display.WaitForRoll(ctx, player.Name); err != nil {
			return TurnResult{}, err
		}
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	res := TurnResult{
		Turn:        g.turn + 1,
		PlayerIndex: idx,
		Player:      player.Name,
		Dice:        g.RollDice(),
		From:        player.Position,
		CoinsBefore: player.Coins,
	}

	player.Move(res.Dice)
	landed := player.Cell()
	res.Landed = int(landed)

	if delta, ok := g.rules.MovementAt(landed); ok {
		player.ApplyMovementEffect(delta)
		res.MovementApplied = true
		res.MovementDelta = delta
	}
	if delta, ok := g.rules.CoinAt(landed); ok {
		player.ApplyCoinEffect(delta)
		res.CoinApplied = true
		res.CoinDelta = delta
	}

	res.To = player.Position
	res.CoinsAfter = player.Coins
	g.turn++

	span.SetAttributes(
		attribute.Int("turn", res.Turn),
		attribute.String("player", res.Player),
		attribute.Int("dice", res.Dice),
		attribute.Int("position.from", res.From),
		attribute.Int("position.landed", res.Landed),
		attribute.Int("position.to", res.To),
		attribute.Int("coins.before", res.CoinsBefore),
		attribute.Int("coins.after", res.CoinsAfter),
	)

	g.logger.Debug().
		Int("turn", res.Turn).
		Str("player", res.Player).
		Int("dice", res.Dice).
		Int("from", res.From).
		Int("landed", res.Landed).
		Int("to", res.To).
		Int("coins", res.CoinsAfter).
		Bool("movement_rule", res.MovementApplied).
		Bool("coin_rule", res.CoinApplied).
		Msg("turn resolved")

	return res, nil
}

// CheckOutcome applies the end-of-game checks in order. A player on the goal
// with at least one coin wins; the first such player in seat order wins if
// both qualify. Otherwise a player without coins loses and the other wins.
func (g *Game) CheckOutcome() (Outcome, bool) {
	for _, p := range g.players {
		if p.HasFinished() && p.Coins > 0 {
			return Outcome{
				Winner: p.Name,
				Reason: ReasonReachedGoal,
				Turns:  g.turn,
			}, true
		}
	}

	for i, p := range g.players {
		if p.IsBroke() {
			return Outcome{
				Winner: g.players[1-i].Name,
				Loser:  p.Name,
				Reason: ReasonOutOfCoins,
				Turns:  g.turn,
			}, true
		}
	}

	return Outcome{}, false
}
