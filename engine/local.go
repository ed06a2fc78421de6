package engine

import (
	"time"

	"damas/agent"
	"damas/experiments/metrics"
	"damas/game"
	"damas/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

type Engine struct {
	Board   *game.Board
	Agents  map[game.Color]agent.Agent
	Updates []Update

	maxTurns int
	selector *agent.Selector
	metrics  metrics.Collector
	turn     int
}

// Update is one applied move and the position it produced.
type Update struct {
	Player game.Color
	Move   game.Move
	Hash   game.StateHash
}

// decider is implemented by agents able to report the tier behind a move.
type decider interface {
	Decide(board *game.Board, color game.Color) (game.Move, agent.Tier, bool)
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithSelector sets the source used to continue capture chains.
func WithSelector(selector *agent.Selector) Option {
	return func(e *Engine) {
		if selector != nil {
			e.selector = selector
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// Local drives a board with one agent per color.
func Local(board *game.Board, agents map[game.Color]agent.Agent, options ...Option) *Engine {
	if board == nil {
		panic("board is required")
	}
	if agents[game.Red] == nil || agents[game.Blue] == nil {
		panic("need an agent for both colors")
	}

	e := &Engine{ // Default values
		Board:    board,
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.selector == nil {
		e.selector = agent.NewSelector(agent.NewSeed())
	}
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	starting := e.Board.CurrentPlayer()
	e.metrics.Start(starting)

	log.Info().Msgf("%s (%s) is starting against %s (%s)",
		starting, e.Agents[starting].Name(), starting.Opponent(), e.Agents[starting.Opponent()].Name())

	outcome := game.NoOutcome
	for !e.Board.GameOver() {
		if e.turn >= e.maxTurns {
			log.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
			outcome = game.Draw
			break
		}

		color := e.Board.CurrentPlayer()
		if !e.PlayTurn(color) {
			log.Warn().Msgf("%s agent returned no move, halting", color)
			outcome = game.Wins(color.Opponent())
			break
		}
	}

	if e.Board.GameOver() {
		outcome = e.Board.Winner()
	}

	log.Info().Msgf("game over after %d turns, winner: %s", e.turn, outcome)

	gameMetric, moveMetrics := e.metrics.Complete(outcome, game.Evaluate(e.Board, game.Red))
	return outcome, gameMetric, moveMetrics
}

// PlayTurn asks the color's agent for a move, applies it and finishes the
// turn. It returns false when the agent has no move.
func (e *Engine) PlayTurn(color game.Color) bool {
	start := time.Now()
	move, tier, ok := e.decide(color)
	if !ok {
		return false
	}

	e.turn++
	e.metrics.AddTurn()
	e.apply(color, move, tier, time.Since(start))
	e.FinishTurn(color, move)
	return true
}

func (e *Engine) decide(color game.Color) (game.Move, agent.Tier, bool) {
	player := e.Agents[color]
	if d, ok := player.(decider); ok {
		return d.Decide(e.Board, color)
	}
	move, ok := player.FindMove(e.Board, color)
	return move, agent.NoTier, ok
}

// FinishTurn continues a capture chain from the last move's landing square
// with random jumps while the color keeps the turn, then hands the turn over
// if the board did not.
func (e *Engine) FinishTurn(color game.Color, last game.Move) {
	for last.IsCapture() && !e.Board.GameOver() && e.Board.CurrentPlayer() == color {
		start := time.Now()
		next, ok := e.selector.SelectRandomMove(e.Board.CaptureMoves(last.To.Row, last.To.Col))
		if !ok {
			break
		}
		log.Debug().Msgf("%s continues the chain", color)
		e.apply(color, next, agent.CaptureTier, time.Since(start))
		last = next
	}

	// A simple move may leave the mover with a jump; the turn still ends
	if !e.Board.GameOver() && e.Board.CurrentPlayer() == color {
		e.Board.PassTurn()
	}
}

func (e *Engine) apply(color game.Color, move game.Move, tier agent.Tier, elapsed time.Duration) {
	e.Board.MakeMove(move)
	hash := e.Board.Hash()

	e.Updates = append(e.Updates, Update{Player: color, Move: move, Hash: hash})
	e.metrics.AddMove(metrics.MoveMetric{
		Step:     e.turn,
		Player:   color.String(),
		Move:     move.String(),
		Tier:     tier.String(),
		Capture:  move.IsCapture(),
		Hash:     hash,
		Duration: elapsed,
	})

	log.Debug().Msgf("turn %d: %s plays %s (%s)", e.turn, color, move, tier)
}

// Turns is the number of agent turns played so far.
func (e *Engine) Turns() int {
	return e.turn
}
