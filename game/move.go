package game

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveKind tells a plain step from a jump.
type MoveKind int

const (
	Simple MoveKind = iota
	Capture
)

func (k MoveKind) String() string {
	if k == Capture {
		return "capture"
	}
	return "simple"
}

// Position is a board coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move represents a single step or jump. Captured is only meaningful for captures.
type Move struct {
	Kind     MoveKind
	From     Position
	To       Position
	Captured Position
}

func (m Move) IsCapture() bool {
	return m.Kind == Capture
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%s->%s x%s", m.From, m.To, m.Captured)
	}
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// ParsePosition reads a "row,col" coordinate.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return Position{Row: row, Col: col}, nil
}

// ParseMove reads "row,col row,col" into the source and destination squares.
// The kind of move is resolved by the caller against the legal moves.
func ParseMove(s string) (from, to Position, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, Position{}, fmt.Errorf("invalid move %q: want \"row,col row,col\"", s)
	}
	if from, err = ParsePosition(fields[0]); err != nil {
		return Position{}, Position{}, err
	}
	if to, err = ParsePosition(fields[1]); err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}
