package gamemaster

import (
	"errors"
	"fmt"

	"damas/agent"
	"damas/engine"
	"damas/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is a move applied to the session board, with a snapshot of the
// position it produced.
type Update struct {
	Player game.Color
	Move   game.Move
	Board  *game.Board
}

// UpdateGetter returns the oldest unread update, false when there is none.
type UpdateGetter func() (Update, bool)

// Session is a game between a human and an agent. It is driven by a single
// goroutine.
type Session struct {
	board    *game.Board
	human    game.Color
	engine   *engine.Engine
	pending  []Update
	seen     int            // Engine updates already published
	chaining *game.Position // Square of the piece that must keep jumping
}

// seat stands in for the human in the engine; it never answers.
type seat struct{}

func (seat) FindMove(*game.Board, game.Color) (game.Move, bool) { return game.Move{}, false }
func (seat) Name() string { return "human" }

func NewSession(board *game.Board, human game.Color, opponent agent.Agent, options ...engine.Option) *Session {
	agents := map[game.Color]agent.Agent{
		human:            seat{},
		human.Opponent(): opponent,
	}
	return &Session{
		board:  board,
		human:  human,
		engine: engine.Local(board, agents, options...),
	}
}

// Init plays the agent's opening turn if it moves first and returns the
// board with a getter for the moves applied from now on.
func (s *Session) Init() (*game.Board, UpdateGetter) {
	s.playAgent()
	return s.board, func() (Update, bool) {
		if len(s.pending) == 0 {
			return Update{}, false
		}
		u := s.pending[0]
		s.pending = s.pending[1:]
		return u, true
	}
}

func (s *Session) Board() *game.Board {
	return s.board
}

func (s *Session) Human() game.Color {
	return s.human
}

// Moves lists what the human may play now: the chaining piece's jumps
// during a chain, otherwise every legal move.
func (s *Session) Moves() []game.Move {
	if s.board.GameOver() || s.board.CurrentPlayer() != s.human {
		return nil
	}
	if s.chaining != nil {
		return s.board.CaptureMoves(s.chaining.Row, s.chaining.Col)
	}
	return s.board.LegalMoves(s.human)
}

// Resolve finds the allowed move between two squares.
func (s *Session) Resolve(from, to game.Position) (game.Move, error) {
	for _, m := range s.Moves() {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return game.Move{}, fmt.Errorf("%w: %s->%s", ErrIllegalMove, from, to)
}

// Play applies the human's move and, once the human's turn is over, the
// agent's reply.
func (s *Session) Play(move game.Move) error {
	if s.board.GameOver() {
		return ErrGameOver
	}
	if s.board.CurrentPlayer() != s.human {
		return ErrNotYourTurn
	}
	if !slices.Contains(s.Moves(), move) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	s.board.MakeMove(move)
	s.publish(s.human, move)

	if s.board.GameOver() {
		log.Info().Msgf("game over, winner: %s", s.board.Winner())
		return nil
	}

	if move.IsCapture() && s.board.CurrentPlayer() == s.human {
		to := move.To
		s.chaining = &to
		return nil
	}
	s.chaining = nil

	// A simple move may leave a jump behind; the turn still ends
	if s.board.CurrentPlayer() == s.human {
		s.board.PassTurn()
	}

	s.playAgent()
	return nil
}

func (s *Session) playAgent() {
	color := s.human.Opponent()
	if s.board.GameOver() || s.board.CurrentPlayer() != color {
		return
	}
	if !s.engine.PlayTurn(color) {
		log.Warn().Msgf("%s agent has no move", color)
		return
	}
	for _, u := range s.engine.Updates[s.seen:] {
		s.pending = append(s.pending, Update{Player: u.Player, Move: u.Move, Board: s.board.Clone()})
	}
	s.seen = len(s.engine.Updates)

	if s.board.GameOver() {
		log.Info().Msgf("game over, winner: %s", s.board.Winner())
	}
}

func (s *Session) publish(player game.Color, move game.Move) {
	s.pending = append(s.pending, Update{Player: player, Move: move, Board: s.board.Clone()})
}
