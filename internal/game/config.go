package game

import (
	"time"

	"github.com/samdwyer/diceboard/internal/entity"
)

// Default player names used when none are given.
const (
	DefaultPlayer1 = "J1"
	DefaultPlayer2 = "J2"
)

// Config holds game configuration options.
type Config struct {
	Player1, Player2 string

	// Interactive games wait for an acknowledgment before every roll.
	// Simulated games pause for TurnDelay after every turn instead.
	Interactive bool

	// Seed for the random source. Nil means an entropy seed is drawn; the
	// seed actually used is available from Game.Seed.
	Seed *int64

	StartCoins int
	TurnDelay  time.Duration
}

// DefaultConfig returns a simulated game between J1 and J2.
func DefaultConfig() Config {
	return Config{
		Player1:    DefaultPlayer1,
		Player2:    DefaultPlayer2,
		StartCoins: entity.DefaultCoins,
		TurnDelay:  600 * time.Millisecond,
	}
}
