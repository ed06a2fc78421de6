package engine

import (
	"damas/experiments/metrics"
	"damas/game"
)

// Runner plays a game till there's a winner or the turn cap is reached
type Runner interface {
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
