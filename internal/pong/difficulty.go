package pong

import (
	"fmt"
	"strings"
)

// Difficulty selects the CPU paddle speed. It is the only knob: the CPU never
// anticipates the ball, it is just faster or slower at following it.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Default CPU paddle speeds per difficulty.
const (
	EasyAISpeed   = 1.5
	MediumAISpeed = 2.0
	HardAISpeed   = 2.5
)

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the lowercase identifier used in flags and config.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the capitalized menu label.
func (d Difficulty) Title() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// AISpeed returns the default CPU paddle speed for d.
func (d Difficulty) AISpeed() float64 {
	switch d {
	case DifficultyEasy:
		return EasyAISpeed
	case DifficultyHard:
		return HardAISpeed
	default:
		return MediumAISpeed
	}
}

// ParseDifficulty converts a name like "hard" into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("pong: unknown difficulty %q (want easy, medium or hard)", s)
}
