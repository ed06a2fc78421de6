package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewEmptyBoard(DefaultSize)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *Board, row, col int, p Piece) {
	t.Helper()
	require.NoError(t, b.Place(Position{Row: row, Col: col}, p))
}

func totalPieces(b *Board) int {
	return b.CountPieces(RedMan) + b.CountPieces(RedKing) + b.CountPieces(BlueMan) + b.CountPieces(BlueKing)
}

func TestNewBoard(t *testing.T) {
	t.Run("standard layout", func(t *testing.T) {
		b, err := NewBoard(DefaultSize)
		require.NoError(t, err)

		require.Equal(t, 12, b.CountPieces(RedMan), "Red should start with 12 men")
		require.Equal(t, 12, b.CountPieces(BlueMan), "Blue should start with 12 men")
		require.Zero(t, b.CountPieces(RedKing)+b.CountPieces(BlueKing), "No kings at the start")
		require.Equal(t, Red, b.CurrentPlayer(), "Red moves first")
		require.False(t, b.GameOver())
		require.Equal(t, NoOutcome, b.Winner())

		for row := 0; row < b.Size(); row++ {
			for col := 0; col < b.Size(); col++ {
				p := b.At(row, col)
				if p == Empty {
					continue
				}
				require.True(t, IsDark(row, col), "Pieces should only sit on dark squares")
				switch {
				case row <= 2:
					require.Equal(t, BlueMan, p, "Rows 0-2 hold blue")
				case row >= 5:
					require.Equal(t, RedMan, p, "Rows 5-7 hold red")
				default:
					require.Fail(t, "middle rows should be empty")
				}
			}
		}
	})

	t.Run("caller-chosen first player", func(t *testing.T) {
		b, err := NewBoardStartingWith(DefaultSize, Blue)
		require.NoError(t, err)
		require.Equal(t, Blue, b.CurrentPlayer())
	})

	t.Run("rejects unusable sizes", func(t *testing.T) {
		_, err := NewBoard(7)
		require.Error(t, err, "Odd sizes have no symmetric layout")
		_, err = NewBoard(2)
		require.Error(t, err, "Boards smaller than 4 have no middle rows")
		_, err = NewBoardStartingWith(DefaultSize, NoColor)
		require.Error(t, err)
	})

	t.Run("smaller board keeps two empty middle rows", func(t *testing.T) {
		b, err := NewBoard(6)
		require.NoError(t, err)
		require.Equal(t, 6, b.CountPieces(BlueMan))
		require.Equal(t, 6, b.CountPieces(RedMan))
	})
}

func TestIsValidPosition(t *testing.T) {
	b := emptyBoard(t)
	require.True(t, b.IsValidPosition(0, 0))
	require.True(t, b.IsValidPosition(7, 7))
	require.False(t, b.IsValidPosition(-1, 3))
	require.False(t, b.IsValidPosition(3, 8))
	require.False(t, b.IsValidPosition(8, 0))
}

func TestPlace(t *testing.T) {
	b := emptyBoard(t)
	require.Error(t, b.Place(Position{Row: 0, Col: 0}, RedMan), "Light squares cannot hold pieces")
	require.Error(t, b.Place(Position{Row: 9, Col: 0}, RedMan), "Off-board squares are rejected")
	require.NoError(t, b.Place(Position{Row: 0, Col: 0}, Empty), "Clearing any square is allowed")
}

func TestValidMoves(t *testing.T) {
	t.Run("empty square yields nothing", func(t *testing.T) {
		b := emptyBoard(t)
		require.Empty(t, b.ValidMoves(3, 4))
	})

	t.Run("red man moves toward row 0", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedMan)

		moves := b.ValidMoves(5, 2)

		require.ElementsMatch(t, []Move{
			{Kind: Simple, From: Position{5, 2}, To: Position{4, 1}},
			{Kind: Simple, From: Position{5, 2}, To: Position{4, 3}},
		}, moves)
	})

	t.Run("blue man moves toward the last row", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 1, BlueMan)

		moves := b.ValidMoves(2, 1)

		require.ElementsMatch(t, []Move{
			{Kind: Simple, From: Position{2, 1}, To: Position{3, 0}},
			{Kind: Simple, From: Position{2, 1}, To: Position{3, 2}},
		}, moves)
	})

	t.Run("king moves in all four directions", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 4, 3, RedKing)

		require.Len(t, b.ValidMoves(4, 3), 4)
	})

	t.Run("edge pieces stay on the board", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 7, 0, RedMan)

		require.Equal(t, []Move{{Kind: Simple, From: Position{7, 0}, To: Position{6, 1}}}, b.ValidMoves(7, 0))
	})

	t.Run("blue captures red", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 3, BlueMan)
		place(t, b, 3, 4, RedMan)

		moves := b.ValidMoves(2, 3)

		require.Contains(t, moves, Move{Kind: Capture, From: Position{2, 3}, To: Position{4, 5}, Captured: Position{3, 4}})
		require.Contains(t, moves, Move{Kind: Simple, From: Position{2, 3}, To: Position{3, 2}})
		require.Len(t, moves, 2)
	})

	t.Run("no capture when the landing square is taken or off board", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 3, BlueMan)
		place(t, b, 3, 4, RedMan)
		place(t, b, 4, 5, RedMan)
		place(t, b, 6, 7, BlueMan)
		place(t, b, 7, 6, RedMan)

		require.Empty(t, b.CaptureMoves(2, 3), "Occupied landing square blocks the jump")
		require.Empty(t, b.ValidMoves(6, 7), "Jump would leave the board")
	})

	t.Run("own pieces block", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedMan)
		place(t, b, 4, 1, RedMan)
		place(t, b, 4, 3, RedMan)
		place(t, b, 3, 4, RedMan)

		require.Empty(t, b.ValidMoves(5, 2))
	})

	t.Run("repeated queries agree", func(t *testing.T) {
		b, err := NewBoard(DefaultSize)
		require.NoError(t, err)

		require.Equal(t, b.ValidMoves(5, 0), b.ValidMoves(5, 0))
		require.Equal(t, b.LegalMoves(Red), b.LegalMoves(Red))
	})
}

func TestLegalMoves(t *testing.T) {
	b, err := NewBoard(DefaultSize)
	require.NoError(t, err)

	require.Len(t, b.LegalMoves(Red), 7, "Opening position has seven red moves")
	require.Len(t, b.LegalMoves(Blue), 7, "Opening position has seven blue moves")
	require.True(t, b.HasValidMoves(Red))
	require.False(t, emptyBoard(t).HasValidMoves(Red))
}

func TestMakeMove(t *testing.T) {
	t.Run("simple move relocates the piece and passes the turn", func(t *testing.T) {
		b, err := NewBoard(DefaultSize)
		require.NoError(t, err)
		move := Move{Kind: Simple, From: Position{5, 0}, To: Position{4, 1}}

		require.True(t, b.MakeMove(move))

		require.Equal(t, Empty, b.At(5, 0))
		require.Equal(t, RedMan, b.At(4, 1))
		require.Equal(t, Blue, b.CurrentPlayer())
		require.False(t, b.GameOver())
	})

	t.Run("capture removes the jumped piece", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 3, BlueMan)
		place(t, b, 3, 4, RedMan)
		place(t, b, 7, 0, RedMan)
		b.SetCurrentPlayer(Blue)

		b.MakeMove(Move{Kind: Capture, From: Position{2, 3}, To: Position{4, 5}, Captured: Position{3, 4}})

		require.Equal(t, Empty, b.At(3, 4))
		require.Equal(t, BlueMan, b.At(4, 5))
		require.Equal(t, 1, b.CountSide(Red))
		require.Equal(t, Red, b.CurrentPlayer())
	})

	t.Run("red man reaching row 0 is crowned", func(t *testing.T) {
		for _, to := range []Position{{0, 1}, {0, 3}} {
			b := emptyBoard(t)
			place(t, b, 1, 2, RedMan)

			b.MakeMove(Move{Kind: Simple, From: Position{1, 2}, To: to})

			require.Equal(t, RedKing, b.At(to.Row, to.Col), "Landing on row 0 should promote")
		}
	})

	t.Run("blue man reaching the last row is crowned", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 6, 1, BlueMan)
		place(t, b, 0, 7, RedMan)
		b.SetCurrentPlayer(Blue)

		b.MakeMove(Move{Kind: Simple, From: Position{6, 1}, To: Position{7, 2}})

		require.Equal(t, BlueKing, b.At(7, 2))
	})

	t.Run("kings never lose their crown", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 0, 1, RedKing)
		place(t, b, 7, 6, BlueMan)

		b.MakeMove(Move{Kind: Simple, From: Position{0, 1}, To: Position{1, 2}})

		require.Equal(t, RedKing, b.At(1, 2))
	})

	t.Run("capture with a follow-up jump keeps the turn", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedMan)
		place(t, b, 4, 3, BlueMan)
		place(t, b, 2, 5, BlueMan)

		b.MakeMove(Move{Kind: Capture, From: Position{5, 2}, To: Position{3, 4}, Captured: Position{4, 3}})

		require.Equal(t, Red, b.CurrentPlayer(), "Red should continue the chain")
		require.Equal(t, []Move{{Kind: Capture, From: Position{3, 4}, To: Position{1, 6}, Captured: Position{2, 5}}}, b.CaptureMoves(3, 4))
		require.False(t, b.GameOver())
	})

	t.Run("capture without a follow-up passes the turn", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedMan)
		place(t, b, 4, 3, BlueMan)
		place(t, b, 0, 7, BlueMan)

		b.MakeMove(Move{Kind: Capture, From: Position{5, 2}, To: Position{3, 4}, Captured: Position{4, 3}})

		require.Equal(t, Blue, b.CurrentPlayer())
	})

	t.Run("promotion happens mid-chain", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 5, RedMan)
		place(t, b, 1, 4, BlueMan)
		place(t, b, 1, 2, BlueMan)

		b.MakeMove(Move{Kind: Capture, From: Position{2, 5}, To: Position{0, 3}, Captured: Position{1, 4}})

		require.Equal(t, RedKing, b.At(0, 3), "Landing on row 0 crowns even during a chain")
		require.Equal(t, Red, b.CurrentPlayer(), "The new king can jump backwards over (1,2)")
		require.Equal(t, []Move{{Kind: Capture, From: Position{0, 3}, To: Position{2, 1}, Captured: Position{1, 2}}}, b.CaptureMoves(0, 3))
	})

	t.Run("capturing the last piece ends the game", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedMan)
		place(t, b, 4, 3, BlueMan)

		b.MakeMove(Move{Kind: Capture, From: Position{5, 2}, To: Position{3, 4}, Captured: Position{4, 3}})

		require.True(t, b.GameOver())
		require.Equal(t, RedWins, b.Winner())
	})
}

func TestPassTurn(t *testing.T) {
	b := emptyBoard(t)
	place(t, b, 5, 2, RedMan)
	place(t, b, 1, 0, BlueMan)
	place(t, b, 0, 1, RedMan)

	b.PassTurn()
	require.Equal(t, Blue, b.CurrentPlayer())
	require.False(t, b.GameOver())

	b.PassTurn()
	require.Equal(t, Red, b.CurrentPlayer())
}

func TestIsTerminal(t *testing.T) {
	t.Run("game in progress", func(t *testing.T) {
		b, err := NewBoard(DefaultSize)
		require.NoError(t, err)

		_, ok := b.IsTerminal()
		require.False(t, ok)
	})

	t.Run("no red pieces means blue wins", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 3, BlueMan)

		result, ok := b.IsTerminal()
		require.True(t, ok)
		require.Equal(t, Result{Winner: BlueWins}, result)
	})

	t.Run("no blue pieces means red wins", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, RedKing)

		result, ok := b.IsTerminal()
		require.True(t, ok)
		require.Equal(t, RedWins, result.Winner)
	})

	t.Run("side to move without moves loses", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 1, 0, RedMan)
		place(t, b, 0, 1, BlueMan)

		result, ok := b.IsTerminal()
		require.True(t, ok)
		require.Equal(t, BlueWins, result.Winner, "Red is blocked so blue wins")
	})
}

func TestClone(t *testing.T) {
	b, err := NewBoard(DefaultSize)
	require.NoError(t, err)

	clone := b.Clone()
	require.Equal(t, b, clone)
	require.Equal(t, b.Hash(), clone.Hash())

	clone.MakeMove(Move{Kind: Simple, From: Position{5, 0}, To: Position{4, 1}})

	require.Equal(t, RedMan, b.At(5, 0), "Original should be untouched")
	require.Equal(t, Red, b.CurrentPlayer(), "Original should be untouched")
	require.NotEqual(t, b.Hash(), clone.Hash())
}

func TestRandomPlayoutProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := 0; game < 20; game++ {
		b, err := NewBoard(DefaultSize)
		require.NoError(t, err)
		previous := totalPieces(b)
		require.LessOrEqual(t, previous, 32)

		for step := 0; step < 400 && !b.GameOver(); step++ {
			moves := b.LegalMoves(b.CurrentPlayer())
			require.NotEmpty(t, moves, "A live game always has a move for the side to move")

			for _, m := range moves {
				require.True(t, b.IsValidPosition(m.To.Row, m.To.Col), "Destination must be on the board")
				require.Equal(t, Empty, b.At(m.To.Row, m.To.Col), "Destination must be empty")
			}

			move := moves[rng.Intn(len(moves))]
			wasKing := b.At(move.From.Row, move.From.Col).IsKing()
			b.MakeMove(move)

			if wasKing {
				require.True(t, b.At(move.To.Row, move.To.Col).IsKing(), "Kings never de-promote")
			}
			current := totalPieces(b)
			require.LessOrEqual(t, current, previous, "Piece count never grows")
			previous = current
		}
	}
}

func TestString(t *testing.T) {
	b, err := NewBoard(DefaultSize)
	require.NoError(t, err)

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 9)
	require.Equal(t, "  0 1 2 3 4 5 6 7", lines[0])
	require.Equal(t, 12, strings.Count(out, "b"))
	require.Equal(t, 12, strings.Count(out, "r"))
	require.Equal(t, 8, strings.Count(out, "."), "Two empty middle rows of four dark squares")
}

func TestEvaluate(t *testing.T) {
	b, err := NewBoard(DefaultSize)
	require.NoError(t, err)
	require.Zero(t, Evaluate(b, Red))

	b = emptyBoard(t)
	place(t, b, 5, 2, RedKing)
	place(t, b, 2, 3, BlueMan)
	require.InDelta(t, 1.0/3.0, Evaluate(b, Red), 0.0001, "King weighs two men")
	require.InDelta(t, -1.0/3.0, Evaluate(b, Blue), 0.0001)
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("5,0 4,1")
	require.NoError(t, err)
	require.Equal(t, Position{5, 0}, from)
	require.Equal(t, Position{4, 1}, to)

	_, _, err = ParseMove("5,0")
	require.Error(t, err)
	_, _, err = ParseMove("a,0 4,1")
	require.Error(t, err)
}

func TestColorAndPiece(t *testing.T) {
	require.Equal(t, Blue, Red.Opponent())
	require.Equal(t, Red, Blue.Opponent())
	require.Equal(t, NoColor, NoColor.Opponent())

	c, err := ParseColor("blue")
	require.NoError(t, err)
	require.Equal(t, Blue, c)
	_, err = ParseColor("green")
	require.Error(t, err)

	require.Equal(t, RedKing, RedMan.Promoted())
	require.Equal(t, BlueKing, BlueKing.Promoted())
	require.Equal(t, Empty, Empty.Promoted())
	require.Equal(t, "blue_king", BlueKing.String())
	require.Equal(t, Blue, Wins(Blue).Color())
	require.Equal(t, "draw", Draw.String())
}
