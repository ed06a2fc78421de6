package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"damas/utils"
)

var (
	forwardRed  = []Position{{-1, -1}, {-1, 1}}
	forwardBlue = []Position{{1, -1}, {1, 1}}
	diagonals   = []Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Diagonals returns the four diagonal unit steps.
func Diagonals() []Position {
	return append([]Position(nil), diagonals...)
}

// Board holds the cells, the side to move and the game result.
// A Board is not safe for concurrent mutation; use Clone to explore.
type Board struct {
	size          int
	cells         []Piece // Row-major, stride size
	currentPlayer Color
	gameOver      bool
	winner        Outcome
}

// NewBoard returns a board of the given size with the standard layout and red to move.
func NewBoard(size int) (*Board, error) {
	return NewBoardStartingWith(size, Red)
}

// NewBoardStartingWith is NewBoard with a caller-chosen first player.
func NewBoardStartingWith(size int, first Color) (*Board, error) {
	if first != Red && first != Blue {
		return nil, fmt.Errorf("invalid starting player %v", first)
	}
	b, err := NewEmptyBoard(size)
	if err != nil {
		return nil, err
	}
	b.initialize()
	b.currentPlayer = first
	return b, nil
}

// NewEmptyBoard returns a board with no pieces and red to move. Pieces are
// added with Place; it is meant for composing positions.
func NewEmptyBoard(size int) (*Board, error) {
	if size < 4 || size%2 != 0 {
		return nil, fmt.Errorf("invalid board size %d: must be even and at least 4", size)
	}
	return &Board{
		size:          size,
		cells:         make([]Piece, size*size),
		currentPlayer: Red,
	}, nil
}

// initialize fills the dark squares: blue on the top rows, red on the bottom
// rows, leaving the two middle rows empty.
func (b *Board) initialize() {
	rowsPerSide := b.size/2 - 1
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if !IsDark(row, col) {
				continue
			}
			switch {
			case row < rowsPerSide:
				b.set(row, col, BlueMan)
			case row >= b.size-rowsPerSide:
				b.set(row, col, RedMan)
			}
		}
	}
	b.gameOver = false
	b.winner = NoOutcome
}

// IsDark reports whether the square is playable.
func IsDark(row, col int) bool {
	return (row+col)%2 == 1
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) CurrentPlayer() Color {
	return b.currentPlayer
}

func (b *Board) GameOver() bool {
	return b.gameOver
}

func (b *Board) Winner() Outcome {
	return b.winner
}

// At returns the piece on a square, Empty when out of bounds.
func (b *Board) At(row, col int) Piece {
	if !b.IsValidPosition(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// Place puts a piece on a dark square, replacing its content.
func (b *Board) Place(pos Position, p Piece) error {
	if !b.IsValidPosition(pos.Row, pos.Col) {
		return fmt.Errorf("position %s is off the board", pos)
	}
	if p != Empty && !IsDark(pos.Row, pos.Col) {
		return fmt.Errorf("position %s is not a dark square", pos)
	}
	b.set(pos.Row, pos.Col, p)
	return nil
}

// SetCurrentPlayer chooses the side to move when composing a position.
func (b *Board) SetCurrentPlayer(c Color) {
	b.currentPlayer = c
}

func (b *Board) set(row, col int, p Piece) {
	b.cells[row*b.size+col] = p
}

// IsValidPosition checks bounds.
func (b *Board) IsValidPosition(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// PromotionRow is the row where men of the given color become kings.
func (b *Board) PromotionRow(c Color) int {
	if c == Red {
		return 0
	}
	return b.size - 1
}

// ValidMoves returns the single-step moves of the piece on (row, col).
// Multi-jumps are discovered by querying again from the landing square.
func (b *Board) ValidMoves(row, col int) []Move {
	piece := b.At(row, col)
	if piece == Empty {
		return nil
	}

	color := piece.Color()
	opponent := color.Opponent()

	var directions []Position
	switch {
	case piece.IsKing():
		directions = diagonals
	case color == Red:
		directions = forwardRed
	default:
		directions = forwardBlue
	}

	var moves []Move
	from := Position{Row: row, Col: col}
	for _, d := range directions {
		next := Position{Row: row + d.Row, Col: col + d.Col}
		if !b.IsValidPosition(next.Row, next.Col) {
			continue
		}
		target := b.At(next.Row, next.Col)
		if target == Empty {
			moves = append(moves, Move{Kind: Simple, From: from, To: next})
			continue
		}
		if target.Color() != opponent {
			continue
		}
		landing := Position{Row: next.Row + d.Row, Col: next.Col + d.Col}
		if b.IsValidPosition(landing.Row, landing.Col) && b.At(landing.Row, landing.Col) == Empty {
			moves = append(moves, Move{Kind: Capture, From: from, To: landing, Captured: next})
		}
	}
	return moves
}

// CaptureMoves returns only the jumps available to the piece on (row, col).
func (b *Board) CaptureMoves(row, col int) []Move {
	return utils.Filter(b.ValidMoves(row, col), Move.IsCapture)
}

// LegalMoves returns the moves of every piece of the color, scanning row by row.
func (b *Board) LegalMoves(c Color) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col).Color() == c {
				moves = append(moves, b.ValidMoves(row, col)...)
			}
		}
	}
	return moves
}

// MakeMove applies a move previously returned by ValidMoves. It never
// rejects a move; passing anything else leaves the board undefined.
func (b *Board) MakeMove(move Move) bool {
	piece := b.At(move.From.Row, move.From.Col)

	b.set(move.To.Row, move.To.Col, piece)
	b.set(move.From.Row, move.From.Col, Empty)
	if move.IsCapture() {
		b.set(move.Captured.Row, move.Captured.Col, Empty)
	}

	if !piece.IsKing() && move.To.Row == b.PromotionRow(piece.Color()) {
		b.set(move.To.Row, move.To.Col, piece.Promoted())
	}

	// The mover keeps the turn while the same piece can jump again
	if len(b.CaptureMoves(move.To.Row, move.To.Col)) == 0 {
		b.currentPlayer = b.currentPlayer.Opponent()
	}

	b.updateResult()
	return true
}

// PassTurn hands the move to the opponent without touching the cells.
func (b *Board) PassTurn() {
	b.currentPlayer = b.currentPlayer.Opponent()
	b.updateResult()
}

func (b *Board) updateResult() {
	if result, ok := b.IsTerminal(); ok {
		b.gameOver = true
		b.winner = result.Winner
	}
}

// IsTerminal reports the result when one side has no pieces left or the side
// to move cannot move.
func (b *Board) IsTerminal() (Result, bool) {
	if b.CountSide(Red) == 0 {
		return Result{Winner: BlueWins}, true
	}
	if b.CountSide(Blue) == 0 {
		return Result{Winner: RedWins}, true
	}
	if !b.HasValidMoves(b.currentPlayer) {
		return Result{Winner: Wins(b.currentPlayer.Opponent())}, true
	}
	return Result{}, false
}

// CountPieces counts exact matches, so men and kings are tallied separately.
func (b *Board) CountPieces(p Piece) int {
	count := 0
	for _, cell := range b.cells {
		if cell == p {
			count++
		}
	}
	return count
}

// CountSide counts men and kings of a color.
func (b *Board) CountSide(c Color) int {
	return b.CountPieces(NewPiece(c, false)) + b.CountPieces(NewPiece(c, true))
}

func (b *Board) HasValidMoves(c Color) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col).Color() == c && len(b.ValidMoves(row, col)) > 0 {
				return true
			}
		}
	}
	return false
}

// Clone returns a fully independent copy.
func (b *Board) Clone() *Board {
	cells := make([]Piece, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		size:          b.size,
		cells:         cells,
		currentPlayer: b.currentPlayer,
		gameOver:      b.gameOver,
		winner:        b.winner,
	}
}

// Hash identifies the position: size, side to move and cells.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	binary.Write(hasher, binary.LittleEndian, int64(b.currentPlayer))

	for _, cell := range b.cells {
		hasher.Write([]byte{byte(cell)})
	}

	return StateHash(hasher.Sum64())
}

// String prints the board with row and column numbers; r/b are men, R/B
// kings and '.' an empty dark square.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < b.size; col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := 0; row < b.size; row++ {
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < b.size; col++ {
			sb.WriteByte(' ')
			if IsDark(row, col) {
				sb.WriteByte(b.At(row, col).symbol())
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
