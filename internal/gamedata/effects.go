package gamedata

import "fmt"

// EffectSetSize is the number of cells each rule kind occupies on a board.
const EffectSetSize = 5

// MovementDef is one movement effect value. Reset sends the player back to
// the start of the track and ignores Delta.
type MovementDef struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
	Reset bool   `json:"reset,omitempty"`
}

// CoinDef is one coin effect value.
type CoinDef struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
}

// EffectsFile represents the structure of effects.json.
// Order matters: values are zipped against shuffled cells in file order.
type EffectsFile struct {
	Movement []MovementDef `json:"movement"`
	Coins    []CoinDef     `json:"coins"`
}

// LoadEffects loads the movement and coin value sets from effects.json.
func LoadEffects() (EffectsFile, error) {
	file, err := Load[EffectsFile]("effects.json")
	if err != nil {
		return file, err
	}
	if len(file.Movement) != EffectSetSize {
		return file, fmt.Errorf("effects.json: want %d movement effects, got %d", EffectSetSize, len(file.Movement))
	}
	if len(file.Coins) != EffectSetSize {
		return file, fmt.Errorf("effects.json: want %d coin effects, got %d", EffectSetSize, len(file.Coins))
	}
	return file, nil
}
