// Package board provides the race track and its randomly assigned cell rules.
package board

import "fmt"

// Cell is a position on the track. Cell 0 is the start, Goal is the finish.
type Cell int

const (
	// Start is where every player begins and where a reset sends them back.
	Start Cell = 0
	// Goal is the last cell of the track. Positions never exceed it.
	Goal Cell = 30

	// FirstRuleCell and LastRuleCell bound the cells that can hold rules.
	// Start and Goal are never rule cells.
	FirstRuleCell Cell = 1
	LastRuleCell  Cell = Goal - 1
)

// ResetToStart is the movement delta that sends a player back to Start
// instead of moving them relative to their position.
const ResetToStart = -999

// IsRuleCell reports whether c may carry a movement or coin rule.
func (c Cell) IsRuleCell() bool {
	return c >= FirstRuleCell && c <= LastRuleCell
}

// Clamp limits a raw position to the track bounds.
func Clamp(position int) int {
	switch {
	case position < int(Start):
		return int(Start)
	case position > int(Goal):
		return int(Goal)
	default:
		return position
	}
}

// String renders the cell the way the board shows it, zero-padded.
func (c Cell) String() string {
	return fmt.Sprintf("%02d", int(c))
}
