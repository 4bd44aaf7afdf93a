package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/diceboard/internal/board"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("J1", DefaultCoins)

	assert.Equal(t, "J1", p.Name)
	assert.Equal(t, 0, p.Position)
	assert.Equal(t, 2, p.Coins)
	assert.Equal(t, "J1 pos=0 mon=2", p.String())

	assert.Equal(t, 0, NewPlayer("J2", -3).Coins, "negative purse is floored")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name  string
		start int
		steps int
		want  int
	}{
		{"from start", 0, 4, 4},
		{"mid track", 12, 6, 18},
		{"exact goal", 24, 6, 30},
		{"overshoot is capped", 28, 5, 30},
		{"already at goal", 30, 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("J1", 2)
			p.Position = tt.start
			p.Move(tt.steps)
			assert.Equal(t, tt.want, p.Position)
		})
	}
}

func TestApplyMovementEffect(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"advance", 10, 3, 13},
		{"back", 10, -5, 5},
		{"back below start", 3, -5, 0},
		{"advance past goal", 29, 3, 30},
		{"reset", 17, board.ResetToStart, 0},
		{"reset at start", 0, board.ResetToStart, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("J1", 2)
			p.Position = tt.start
			p.ApplyMovementEffect(tt.delta)
			assert.Equal(t, tt.want, p.Position)
		})
	}
}

func TestApplyCoinEffect(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"gain two", 2, 2, 4},
		{"gain one", 0, 1, 1},
		{"zero delta", 3, 0, 3},
		{"penalty", 2, -1, 1},
		{"large penalty costs one", 5, -4, 4},
		{"penalty when broke", 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("J1", tt.start)
			p.ApplyCoinEffect(tt.delta)
			assert.Equal(t, tt.want, p.Coins)
		})
	}
}

func TestPositionStaysOnTrack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deltas := []int{2, 1, 3, -5, board.ResetToStart}

	for round := 0; round < 50; round++ {
		p := NewPlayer("J1", 2)
		for step := 0; step < 200; step++ {
			if rng.Intn(2) == 0 {
				p.Move(rng.Intn(6) + 1)
			} else {
				p.ApplyMovementEffect(deltas[rng.Intn(len(deltas))])
			}
			if p.Position < 0 || p.Position > 30 {
				t.Fatalf("round %d step %d: position %d left the track", round, step, p.Position)
			}
		}
	}
}

func TestCoinsNeverNegative(t *testing.T) {
	p := NewPlayer("J1", 1)
	for i := 0; i < 10; i++ {
		p.ApplyCoinEffect(-1)
		if p.Coins < 0 {
			t.Fatalf("after %d penalties coins = %d", i+1, p.Coins)
		}
	}
	assert.Equal(t, 0, p.Coins)
	assert.True(t, p.IsBroke())
}

func TestHasFinished(t *testing.T) {
	p := NewPlayer("J1", 2)
	assert.False(t, p.HasFinished())
	p.Move(40)
	assert.True(t, p.HasFinished())
	assert.Equal(t, board.Goal, p.Cell())
}
