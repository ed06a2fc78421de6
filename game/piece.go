package game

// Piece is the content of a single cell.
type Piece int

const (
	Empty Piece = iota
	RedMan
	BlueMan
	RedKing
	BlueKing
)

// NewPiece builds the piece of the given color and rank.
func NewPiece(c Color, king bool) Piece {
	switch {
	case c == Red && king:
		return RedKing
	case c == Red:
		return RedMan
	case c == Blue && king:
		return BlueKing
	case c == Blue:
		return BlueMan
	default:
		return Empty
	}
}

// Color returns the owner of the piece, NoColor for an empty cell.
func (p Piece) Color() Color {
	switch p {
	case RedMan, RedKing:
		return Red
	case BlueMan, BlueKing:
		return Blue
	default:
		return NoColor
	}
}

func (p Piece) IsKing() bool {
	return p == RedKing || p == BlueKing
}

// Promoted returns the king of the same color. Kings and empty cells are unchanged.
func (p Piece) Promoted() Piece {
	if p == Empty {
		return Empty
	}
	return NewPiece(p.Color(), true)
}

func (p Piece) String() string {
	switch p {
	case RedMan:
		return "red"
	case BlueMan:
		return "blue"
	case RedKing:
		return "red_king"
	case BlueKing:
		return "blue_king"
	default:
		return ""
	}
}

// symbol is the single character used by Board.String.
func (p Piece) symbol() byte {
	switch p {
	case RedMan:
		return 'r'
	case BlueMan:
		return 'b'
	case RedKing:
		return 'R'
	case BlueKing:
		return 'B'
	default:
		return '.'
	}
}
