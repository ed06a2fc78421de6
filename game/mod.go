package game

import "fmt"

// DefaultSize is the dimension of a standard Damas board.
const DefaultSize = 8

// Color identifies one side of the game.
type Color int

const (
	NoColor Color = iota
	Red
	Blue
)

// Opponent returns the other side. NoColor has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// ParseColor accepts "red" or "blue".
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	default:
		return NoColor, fmt.Errorf("unknown color %q", s)
	}
}

// Outcome is the winner of a finished game.
type Outcome int

const (
	NoOutcome Outcome = iota
	RedWins
	BlueWins
	Draw
)

// Wins returns the outcome where c is the winner.
func Wins(c Color) Outcome {
	switch c {
	case Red:
		return RedWins
	case Blue:
		return BlueWins
	default:
		return NoOutcome
	}
}

// Color returns the winning side, NoColor for a draw or an unfinished game.
func (o Outcome) Color() Color {
	switch o {
	case RedWins:
		return Red
	case BlueWins:
		return Blue
	default:
		return NoColor
	}
}

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red"
	case BlueWins:
		return "blue"
	case Draw:
		return "draw"
	default:
		return ""
	}
}

// Result is reported by IsTerminal once the game is decided.
type Result struct {
	Winner Outcome
}

type StateHash uint64
