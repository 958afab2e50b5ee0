package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObjects_SameSeed_IdenticalPoints(t *testing.T) {
	// GIVEN the same configuration and seed
	cfg := DefaultConfig()

	// WHEN objects are generated twice
	p1 := GenerateObjects(cfg, 123)
	p2 := GenerateObjects(cfg, 123)

	// THEN the point sets are identical
	require.Len(t, p1, cfg.NumObjects)
	assert.Equal(t, p1, p2)
}

func TestGenerateObjects_DifferentSeeds_DifferentPoints(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEqual(t, GenerateObjects(cfg, 1), GenerateObjects(cfg, 2))
}

func TestGenerateObjects_ZeroJitter_PointsOnCenters(t *testing.T) {
	// GIVEN no jitter
	cfg := DefaultConfig()
	cfg.JitterStdDev = 0
	cfg.NumObjects = 200

	// WHEN objects are generated
	points := GenerateObjects(cfg, 0)

	// THEN every point coincides with a center, and all centers get used
	used := make(map[Point]int)
	for _, p := range points {
		assert.Contains(t, cfg.RegionalCenters, p)
		used[p]++
	}
	assert.Len(t, used, len(cfg.RegionalCenters))
}

func TestGenerateObjects_EmptyInputs_EmptyResult(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumObjects = 0
	assert.Empty(t, GenerateObjects(cfg, 0))

	cfg = DefaultConfig()
	cfg.RegionalCenters = nil
	assert.Empty(t, GenerateObjects(cfg, 0))
}

func TestGenerateObjects_JitterSpread_MatchesStdDev(t *testing.T) {
	// GIVEN a single center and a large sample
	cfg := DefaultConfig()
	cfg.RegionalCenters = []Point{{X: 50, Y: 50}}
	cfg.NumObjects = 20000

	points := GenerateObjects(cfg, 9)

	// THEN the sample mean is near the center and the spread near 20 km
	var sumX, sumSq float64
	for _, p := range points {
		dx := float64(p.X) - 50
		sumX += dx
		sumSq += dx * dx
	}
	n := float64(len(points))
	assert.InDelta(t, 0, sumX/n, 1.0)
	assert.InDelta(t, 400, sumSq/n, 40)
}

func TestAssignObjectsToCenters_NearestCenter(t *testing.T) {
	cfg := DefaultConfig()
	points := []Point{
		{X: 1, Y: 1},
		{X: 99, Y: 2},
		{X: 3, Y: 97},
		{X: 80, Y: 90},
	}

	got := AssignObjectsToCenters(points, cfg)

	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestAssignObjectsToCenters_TieGoesToLowestIndex(t *testing.T) {
	cfg := DefaultConfig()
	// (50,0) is equidistant from centers 0 and 1; (50,50) from all four.
	got := AssignObjectsToCenters([]Point{{X: 50, Y: 0}, {X: 50, Y: 50}}, cfg)
	assert.Equal(t, []int{0, 0}, got)
}

func TestAssignObjectsToCenters_NoCenters_Nil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegionalCenters = nil
	assert.Nil(t, AssignObjectsToCenters([]Point{{X: 1, Y: 1}}, cfg))
}
