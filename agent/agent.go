package agent

import "damas/game"

// Agent chooses a move for a color on a board without mutating it.
type Agent interface {
	// FindMove returns false when the color has no move available
	FindMove(board *game.Board, color game.Color) (game.Move, bool)
	Name() string
}
