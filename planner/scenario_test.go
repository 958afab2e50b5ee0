package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveScenario_TenObjects(t *testing.T) {
	// GIVEN 10 objects, direct network, one warehouse, other defaults
	cfg := DefaultConfig().WithNumObjects(10)

	// WHEN solved for two months
	r, err := SolveScenario(cfg, 2)

	// THEN at least one crew and the total is the component sum
	require.NoError(t, err)
	assert.True(t, r.Feasible)
	assert.GreaterOrEqual(t, r.Crews, 1)
	assert.Equal(t, r.Wages+r.VehicleCost+r.LodgingCost+r.PerDiemCost, r.Total)
	assert.Greater(t, float64(r.AvgDistance), 0.0)
}

func TestSolveScenario_Deterministic(t *testing.T) {
	cfg := DefaultConfig().WithWarehouses(4)
	r1, err := SolveScenario(cfg, 3)
	require.NoError(t, err)
	r2, err := SolveScenario(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestSolveScenario_InvalidConfig_FailsFast(t *testing.T) {
	cfg := DefaultConfig().WithWarehouses(9)

	_, err := SolveScenario(cfg, 2)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "warehouses", ve.Field)
}

func TestSolveScenario_NonPositiveMonths_Error(t *testing.T) {
	_, err := SolveScenario(DefaultConfig(), 0)
	assert.Error(t, err)
}

func TestSolveScenario_ZeroObjects_ZeroResult(t *testing.T) {
	r, err := SolveScenario(DefaultConfig().WithNumObjects(0), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Crews)
	assert.Zero(t, r.Total)
	assert.Zero(t, r.AvgDistance)
}

func TestSolveScenario_FarCenters_Infeasible(t *testing.T) {
	// GIVEN objects clustered 2000 km from the only warehouse
	cfg := DefaultConfig()
	cfg.RegionalCenters = []Point{{X: 0, Y: 0}, {X: 2000, Y: 0}}
	cfg.JitterStdDev = 0

	// WHEN solved
	r, err := SolveScenario(cfg, 2)

	// THEN the scenario is reported infeasible, not as an error
	require.NoError(t, err)
	assert.False(t, r.Feasible)
	assert.Equal(t, UnboundedCrews, r.Crews)
}

func TestBuildLayout_ConsistentParts(t *testing.T) {
	cfg := DefaultConfig().WithNumObjects(50).WithWarehouses(4)
	layout := BuildLayout(cfg)
	assert.Len(t, layout.Points, 50)
	assert.Len(t, layout.Assignment, 50)
	assert.Equal(t, AverageDistance(layout.Points, layout.Assignment, cfg), layout.AvgDistance)
}
