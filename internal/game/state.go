// Package game provides the turn loop and state of a two-player race.
package game

// Reason explains how a game ended.
type Reason int

const (
	// ReasonReachedGoal - the winner reached the goal holding at least one coin.
	ReasonReachedGoal Reason = iota
	// ReasonOutOfCoins - the loser ran out of coins and the other player wins.
	ReasonOutOfCoins
)

// String returns a human-readable reason name.
func (r Reason) String() string {
	switch r {
	case ReasonReachedGoal:
		return "reached_goal"
	case ReasonOutOfCoins:
		return "out_of_coins"
	default:
		return "unknown"
	}
}

// Outcome describes a finished game.
type Outcome struct {
	Winner string
	Loser  string // Set only for ReasonOutOfCoins
	Reason Reason
	Turns  int // Turns played before the game ended
}
