package planner

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Layout is the intermediate state of one scenario: where the objects are,
// which center serves each, and the resulting average service distance.
type Layout struct {
	Points      []Point
	Assignment  []int
	AvgDistance Kilometers
}

// BuildLayout runs sampling, assignment and the distance model for cfg.
// cfg is assumed valid.
func BuildLayout(cfg Config) Layout {
	points := GenerateObjects(cfg, cfg.Seed)
	assignment := AssignObjectsToCenters(points, cfg)
	return Layout{
		Points:      points,
		Assignment:  assignment,
		AvgDistance: AverageDistance(points, assignment, cfg),
	}
}

// SolveScenario runs one scenario end to end: object placement, assignment,
// average distance, crew sizing and cost. An infeasible scenario is not an
// error; it is reported through ScenarioResult.Feasible.
func SolveScenario(cfg Config, months int) (ScenarioResult, error) {
	if err := cfg.Validate(); err != nil {
		return ScenarioResult{}, fmt.Errorf("solve scenario: %w", err)
	}
	if months <= 0 {
		return ScenarioResult{}, fmt.Errorf("solve scenario: months must be positive, got %d", months)
	}

	layout := BuildLayout(cfg)
	result := CostEstimate(cfg, months, layout.AvgDistance)

	logrus.WithFields(logrus.Fields{
		"scenario":        result.ScenarioKey.String(),
		"objects":         cfg.NumObjects,
		"avg_distance_km": float64(layout.AvgDistance),
		"objects_per_day": result.ObjectsPerDay,
		"crews":           result.Crews,
		"feasible":        result.Feasible,
		"total":           float64(result.Total),
	}).Debug("scenario solved")

	return result, nil
}
