// Package testutil provides shared test helpers for planner and its
// sub-packages.
package testutil

import (
	"math"
	"testing"

	"github.com/crewplan/crewplan/planner"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// SingleCenterConfig returns a default config with one center at the origin
// and no jitter, so every object sits exactly on the depot.
func SingleCenterConfig(numObjects int) planner.Config {
	cfg := planner.DefaultConfig()
	cfg.NumObjects = numObjects
	cfg.RegionalCenters = []planner.Point{{X: 0, Y: 0}}
	cfg.JitterStdDev = 0
	return cfg
}

// Result builds a feasible ScenarioResult with the given total for heuristic tests.
func Result(network planner.NetworkType, warehouses, months, crews int, total planner.Money) planner.ScenarioResult {
	return planner.ScenarioResult{
		ScenarioKey: planner.ScenarioKey{Network: network, Warehouses: warehouses, Months: months},
		Crews:       crews,
		Feasible:    true,
		Wages:       total,
		Total:       total,
	}
}

// Infeasible builds an infeasible ScenarioResult.
func Infeasible(network planner.NetworkType, warehouses, months int) planner.ScenarioResult {
	return planner.ScenarioResult{
		ScenarioKey: planner.ScenarioKey{Network: network, Warehouses: warehouses, Months: months},
		Crews:       planner.UnboundedCrews,
	}
}
