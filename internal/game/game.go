package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/diceboard/internal/board"
	"github.com/samdwyer/diceboard/internal/entity"
	"github.com/samdwyer/diceboard/internal/random"
	"github.com/samdwyer/diceboard/internal/telemetry"
)

// Display presents the game. Implementations must not modify the game.
type Display interface {
	ShowRules(rules *board.RuleTable, seed int64)
	ShowBoard(rules *board.RuleTable, players []entity.Player)
	// WaitForRoll blocks until the player acknowledges the next roll.
	WaitForRoll(ctx context.Context, player string) error
	ShowTurn(result TurnResult)
	ShowOutcome(outcome Outcome)
}

// Game holds the entire game state.
type Game struct {
	players     [2]*entity.Player
	rules       *board.RuleTable
	rng         *rand.Rand
	seed        int64
	turn        int
	interactive bool
	delay       time.Duration
	display     Display
	logger      zerolog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger. Games are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithRules uses a fixed rule table instead of generating one. No draws are
// taken from the random source for the table.
func WithRules(rules *board.RuleTable) Option {
	return func(g *Game) { g.rules = rules }
}

// WithSleep replaces the pause between simulated turns.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(g *Game) { g.sleep = sleep }
}

// New creates a new game and draws its rule table.
func New(ctx context.Context, cfg Config, display Display, opts ...Option) (*Game, error) {
	if display == nil {
		return nil, fmt.Errorf("game: display is required")
	}
	if cfg.StartCoins < 1 {
		return nil, fmt.Errorf("game: start coins must be at least 1, got %d", cfg.StartCoins)
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, err
	}

	name1, name2 := cfg.Player1, cfg.Player2
	if name1 == "" {
		name1 = DefaultPlayer1
	}
	if name2 == "" {
		name2 = DefaultPlayer2
	}

	g := &Game{
		players: [2]*entity.Player{
			entity.NewPlayer(name1, cfg.StartCoins),
			entity.NewPlayer(name2, cfg.StartCoins),
		},
		rng:         random.New(seed),
		seed:        seed,
		interactive: cfg.Interactive,
		delay:       cfg.TurnDelay,
		display:     display,
		logger:      zerolog.Nop(),
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if g.rules == nil {
		g.rules, err = board.Generate(ctx, g.rng)
		if err != nil {
			return nil, fmt.Errorf("generate rules: %w", err)
		}
	}

	span.SetAttributes(
		attribute.Int64("seed", seed),
		attribute.Bool("interactive", g.interactive),
		attribute.String("rules", g.rules.String()),
	)

	g.logger.Debug().
		Int64("seed", seed).
		Str("movement", board.FormatRules(g.rules.MovementRules())).
		Str("coins", board.FormatRules(g.rules.CoinRules())).
		Msg("rules generated")

	return g, nil
}

// Run executes the main game loop until a player wins.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	g.display.ShowRules(g.rules, g.seed)

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		g.display.ShowBoard(g.rules, g.Players())

		if outcome, done := g.CheckOutcome(); done {
			g.end(ctx, outcome)
			return outcome, nil
		}

		res, err := g.PlayTurn(ctx)
		if err != nil {
			return Outcome{}, fmt.Errorf("turn %d: %w", g.turn+1, err)
		}
		g.display.ShowTurn(res)

		if !g.interactive && g.delay > 0 {
			if err := g.sleep(ctx, g.delay); err != nil {
				return Outcome{}, err
			}
		}
	}
}

// end reports the finished game.
func (g *Game) end(ctx context.Context, outcome Outcome) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("winner", outcome.Winner),
		attribute.String("loser", outcome.Loser),
		attribute.String("reason", outcome.Reason.String()),
		attribute.Int("turns", outcome.Turns),
	)
	span.End()

	g.logger.Info().
		Str("winner", outcome.Winner).
		Str("reason", outcome.Reason.String()).
		Int("turns", outcome.Turns).
		Msg("game over")

	g.display.ShowOutcome(outcome)
}

// Players returns copies of both players in seat order.
func (g *Game) Players() []entity.Player {
	return []entity.Player{*g.players[0], *g.players[1]}
}

// Rules returns the game's rule table.
func (g *Game) Rules() *board.RuleTable { return g.rules }

// Seed returns the seed of the game's random source.
func (g *Game) Seed() int64 { return g.seed }

// Turn returns the number of turns played so far.
func (g *Game) Turn() int { return g.turn }

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
