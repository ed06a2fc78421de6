package agent

import (
	"damas/game"
	"damas/utils"
)

// Tier is one priority level of the heuristic cascade.
type Tier int

const (
	NoTier Tier = iota
	CaptureTier
	PromoteTier
	DefensiveTier
	OffensiveTier
	RandomTier
)

func (t Tier) String() string {
	switch t {
	case CaptureTier:
		return "capture"
	case PromoteTier:
		return "promote"
	case DefensiveTier:
		return "defensive"
	case OffensiveTier:
		return "offensive"
	case RandomTier:
		return "random"
	default:
		return "none"
	}
}

// Rule produces the candidate moves of one tier.
type Rule struct {
	Tier  Tier
	Moves func(board *game.Board, color game.Color) []game.Move
}

// DefaultRules is the cascade in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Tier: CaptureTier, Moves: CaptureMoves},
		{Tier: PromoteTier, Moves: PromoteMoves},
		{Tier: DefensiveTier, Moves: DefensiveMoves},
		{Tier: OffensiveTier, Moves: OffensiveMoves},
		{Tier: RandomTier, Moves: AllMoves},
	}
}

// CaptureMoves gathers the jumps of every piece of the color.
func CaptureMoves(board *game.Board, color game.Color) []game.Move {
	return utils.Filter(board.LegalMoves(color), game.Move.IsCapture)
}

// PromoteMoves gathers moves of men landing on the promotion row. Kings are skipped.
func PromoteMoves(board *game.Board, color game.Color) []game.Move {
	lastRow := board.PromotionRow(color)
	man := game.NewPiece(color, false)

	var promotions []game.Move
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			if board.At(row, col) != man {
				continue
			}
			for _, move := range board.ValidMoves(row, col) {
				if move.To.Row == lastRow {
					promotions = append(promotions, move)
				}
			}
		}
	}
	return promotions
}

// DefensiveMoves keeps moves whose destination cannot be jumped right away.
func DefensiveMoves(board *game.Board, color game.Color) []game.Move {
	return utils.Filter(board.LegalMoves(color), func(m game.Move) bool {
		return !IsUnderThreat(board, m.To, color)
	})
}

// OffensiveMoves keeps moves advancing toward the opponent's side.
func OffensiveMoves(board *game.Board, color game.Color) []game.Move {
	return utils.Filter(board.LegalMoves(color), func(m game.Move) bool {
		if color == game.Red {
			return m.To.Row < m.From.Row
		}
		return m.To.Row > m.From.Row
	})
}

// AllMoves is every legal move of the color.
func AllMoves(board *game.Board, color game.Color) []game.Move {
	return board.LegalMoves(color)
}

// IsUnderThreat reports whether an opponent piece diagonally adjacent to pos
// has an empty square on the far side of pos to land on. The board is read
// as is, so the square the mover leaves still counts as occupied.
func IsUnderThreat(board *game.Board, pos game.Position, color game.Color) bool {
	opponent := color.Opponent()
	for _, d := range game.Diagonals() {
		adjRow, adjCol := pos.Row+d.Row, pos.Col+d.Col
		jumpRow, jumpCol := pos.Row-d.Row, pos.Col-d.Col

		if !board.IsValidPosition(adjRow, adjCol) || board.At(adjRow, adjCol).Color() != opponent {
			continue
		}
		if board.IsValidPosition(jumpRow, jumpCol) && board.At(jumpRow, jumpCol) == game.Empty {
			return true
		}
	}
	return false
}
