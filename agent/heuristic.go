package agent

import "damas/game"

type Option func(h *Heuristic)

// WithSeed makes the tie-break reproducible.
func WithSeed(seed uint64) Option {
	return func(h *Heuristic) {
		h.selector = NewSelector(seed)
	}
}

func WithSelector(selector *Selector) Option {
	return func(h *Heuristic) {
		if selector != nil {
			h.selector = selector
		}
	}
}

// WithRules replaces the cascade, e.g. to evaluate a single tier.
func WithRules(rules []Rule) Option {
	return func(h *Heuristic) {
		if len(rules) > 0 {
			h.rules = rules
		}
	}
}

// Heuristic plays the first non-empty tier of a fixed rule cascade,
// picking at random inside the tier.
type Heuristic struct {
	rules    []Rule
	selector *Selector
}

func NewHeuristic(options ...Option) *Heuristic {
	h := &Heuristic{ // Default values
		rules: DefaultRules(),
	}
	for _, option := range options {
		option(h)
	}
	if h.selector == nil {
		h.selector = NewSelector(NewSeed())
	}
	return h
}

// GetBestMove returns false when the color has no legal move.
func (h *Heuristic) GetBestMove(board *game.Board, color game.Color) (game.Move, bool) {
	move, _, ok := h.Decide(board, color)
	return move, ok
}

// Decide is GetBestMove that also reports which tier produced the move.
func (h *Heuristic) Decide(board *game.Board, color game.Color) (game.Move, Tier, bool) {
	for _, rule := range h.rules {
		moves := rule.Moves(board, color)
		if len(moves) == 0 {
			continue
		}
		move, _ := h.selector.SelectRandomMove(moves)
		return move, rule.Tier, true
	}
	return game.Move{}, NoTier, false
}

// SelectRandomMove picks among an externally filtered list, such as the
// captures continuing a chain.
func (h *Heuristic) SelectRandomMove(moves []game.Move) (game.Move, bool) {
	return h.selector.SelectRandomMove(moves)
}

func (h *Heuristic) FindMove(board *game.Board, color game.Color) (game.Move, bool) {
	return h.GetBestMove(board, color)
}

func (h *Heuristic) Name() string {
	return "heuristic"
}

// RandomAgent plays any legal move.
type RandomAgent struct {
	selector *Selector
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{selector: NewSelector(seed)}
}

func (a *RandomAgent) FindMove(board *game.Board, color game.Color) (game.Move, bool) {
	return a.selector.SelectRandomMove(board.LegalMoves(color))
}

func (a *RandomAgent) Name() string {
	return "random"
}
