package agent

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"damas/game"

	"golang.org/x/exp/rand"
)

// Selector breaks ties between equally ranked moves. A fixed seed replays
// the same picks.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// NewSeed draws a seed from crypto/rand, falling back to the clock.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SelectRandomMove picks uniformly among moves, false when there are none.
func (s *Selector) SelectRandomMove(moves []game.Move) (game.Move, bool) {
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}

// ResolveSeed keeps a configured seed; 0 asks for a fresh one, reported by generated.
func ResolveSeed(seed uint64) (resolved uint64, generated bool) {
	if seed == 0 {
		return NewSeed(), true
	}
	return seed, false
}
