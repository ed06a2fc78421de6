package metrics

import (
	"time"

	"damas/game"
)

type AgentConfig struct {
	ID    int
	Agent string // Agent name, e.g. "heuristic"
	Seed  uint64
}

type MoveMetric struct {
	Step     int    // Agent turn the move belongs to
	Player   string // Color
	Move     string
	Tier     string
	Capture  bool
	Hash     game.StateHash
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Turns          int
	Material       float64 // Evaluate from red's perspective at the end
}

type Collector interface {
	Start(starting game.Color)
	AddMove(metric MoveMetric)
	AddTurn()
	Complete(winner game.Outcome, material float64) (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Color
	startTime time.Time
	turns     int
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Color) {
	m.starting = starting
	m.startTime = time.Now()
	m.turns = 0
	m.moves = nil
}

func (m *collector) AddMove(metric MoveMetric) {
	m.moves = append(m.moves, metric)
}

func (m *collector) AddTurn() {
	m.turns++
}

func (m *collector) Complete(winner game.Outcome, material float64) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.starting.String(),
		Winner:         winner.String(),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
		Turns:          m.turns,
		Material:       material,
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Color)  {}
func (m *dummyCollector) AddMove(metric MoveMetric) {}
func (m *dummyCollector) AddTurn()                  {}
func (m *dummyCollector) Complete(winner game.Outcome, material float64) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner.String(), Material: material}, nil
}
