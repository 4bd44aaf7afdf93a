// Package entity provides the participants of a race.
package entity

import (
	"fmt"

	"github.com/samdwyer/diceboard/internal/board"
)

// DefaultCoins is the purse every player starts with unless configured otherwise.
const DefaultCoins = 2

// Player represents one participant on the track.
type Player struct {
	Name     string // Display name, fixed for the whole game
	Position int    // Current cell, always within 0..30
	Coins    int    // Current purse, never negative
}

// NewPlayer creates a player at the start of the track.
func NewPlayer(name string, coins int) *Player {
	if coins < 0 {
		coins = 0
	}
	return &Player{
		Name:     name,
		Position: int(board.Start),
		Coins:    coins,
	}
}

// Move advances the player by a dice roll. The position stops at the goal.
func (p *Player) Move(steps int) {
	p.Position = min(int(board.Goal), p.Position+steps)
}

// ApplyMovementEffect moves the player by a movement rule delta.
// board.ResetToStart sends the player back to the start.
func (p *Player) ApplyMovementEffect(delta int) {
	if delta == board.ResetToStart {
		p.Position = int(board.Start)
		return
	}
	p.Position = board.Clamp(p.Position + delta)
}

// ApplyCoinEffect changes the purse by a coin rule delta. A penalty always
// costs exactly one coin, and only when the player has one to give.
func (p *Player) ApplyCoinEffect(delta int) {
	if delta < 0 {
		if p.Coins > 0 {
			p.Coins--
		}
		return
	}
	p.Coins += delta
}

// Cell returns the player's position as a board cell.
func (p *Player) Cell() board.Cell { return board.Cell(p.Position) }

// HasFinished returns true once the player reached the goal.
func (p *Player) HasFinished() bool { return p.Position >= int(board.Goal) }

// IsBroke returns true if the player has no coins left.
func (p *Player) IsBroke() bool { return p.Coins <= 0 }

// String returns "<name> pos=<position> mon=<coins>".
func (p *Player) String() string {
	return fmt.Sprintf("%s pos=%d mon=%d", p.Name, p.Position, p.Coins)
}
