package experiments

import (
	"fmt"

	"damas/agent"
	"damas/engine"
	"damas/experiments/metrics"
	"damas/game"
	"damas/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Experiment)

// Experiment plays every matchup a number of times and stores the records
// under OutputDir.
type Experiment struct {
	Name      string
	OutputDir string
	Games     int // Per match up
	MaxTurns  int
	BoardSize int
}

func WithGames(games int) Option {
	return func(e *Experiment) {
		if games > 0 {
			e.Games = games
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Experiment) {
		if turns > 0 {
			e.MaxTurns = turns
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(e *Experiment) {
		if dir != "" {
			e.OutputDir = dir
		}
	}
}

func WithBoardSize(size int) Option {
	return func(e *Experiment) {
		if size > 0 {
			e.BoardSize = size
		}
	}
}

func New(name string, options ...Option) *Experiment {
	e := &Experiment{ // Default values
		Name:      name,
		OutputDir: meta.OUTPUT_DIR,
		Games:     meta.NUM_GAMES,
		MaxTurns:  meta.MAX_TURNS,
		BoardSize: meta.BOARD_SIZE,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// HeuristicVsRandom pairs the heuristic against the random baseline and
// against itself.
func HeuristicVsRandom(seed uint64, options ...Option) (string, error) {
	heuristic := metrics.AgentConfig{ID: 1, Agent: "heuristic", Seed: seed}
	mirror := metrics.AgentConfig{ID: 2, Agent: "heuristic", Seed: seed + 1}
	baseline := metrics.AgentConfig{ID: 0, Agent: "random", Seed: seed + 2}

	configs := []metrics.AgentConfig{baseline, heuristic, mirror}
	matchUps := [][]metrics.AgentConfig{
		{heuristic, baseline},
		{heuristic, mirror},
	}
	return New("heuristic_vs_random", options...).Run(configs, matchUps)
}

// Run plays each matchup with the first config as red and the second as
// blue, alternating which color starts, and returns the records directory.
func (e *Experiment) Run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return "", fmt.Errorf("matchup %d needs 2 agents, got %d", mi+1, len(matchup))
		}
		red, blue := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between red=%+v and blue=%+v...", mi+1, len(matchUps), red, blue)

		for i := 0; i < e.Games; i++ {
			starting := game.Red
			if i%2 == 1 {
				starting = game.Blue
			}

			outcome, gameMetric, moveMetrics, err := e.runGame(red, blue, starting, uint64(i))
			if err != nil {
				return "", err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	return e.store(configs, gameRecords, moveRecords)
}

func (e *Experiment) store(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(e.OutputDir, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game. Seeds are offset by the game index so repeated
// games differ but stay reproducible.
func (e *Experiment) runGame(red, blue metrics.AgentConfig, starting game.Color, offset uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoardStartingWith(e.BoardSize, starting)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, err
	}
	redAgent, err := createAgent(red, offset)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, err
	}
	blueAgent, err := createAgent(blue, offset)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, err
	}

	agents := map[game.Color]agent.Agent{game.Red: redAgent, game.Blue: blueAgent}
	eng := engine.Local(board, agents,
		engine.WithMaxTurns(e.MaxTurns),
		engine.WithSelector(agent.NewSelector(red.Seed^blue.Seed+offset)),
		engine.WithMetrics(),
	)

	outcome, gameMetric, moveMetrics := eng.Run()
	return outcome, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, offset uint64) (agent.Agent, error) {
	seed := config.Seed + offset
	switch config.Agent {
	case "heuristic":
		return agent.NewHeuristic(agent.WithSeed(seed)), nil
	case "random":
		return agent.NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", config.Agent)
	}
}
