package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Euclidean(t *testing.T) {
	assert.InDelta(t, 5.0, float64(Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})), 1e-12)
	assert.InDelta(t, 5.0, float64(Distance(Point{X: 3, Y: 4}, Point{X: 0, Y: 0})), 1e-12)
	assert.Equal(t, Kilometers(0), Distance(Point{X: 7, Y: 7}, Point{X: 7, Y: 7}))
}

func TestNetworkFactor(t *testing.T) {
	assert.Equal(t, 1.3, NetworkFactor(NetworkDirect))
	assert.Equal(t, 1.0, NetworkFactor(NetworkNetworked))
}

func TestAverageDistance_SingleWarehouse_UsesFirstCenter(t *testing.T) {
	// GIVEN one warehouse; assignment points elsewhere but must be ignored
	cfg := DefaultConfig().WithNetwork(NetworkNetworked)
	points := []Point{{X: 3, Y: 4}, {X: 6, Y: 8}}
	assignment := []int{3, 3}

	// WHEN averaged
	got := AverageDistance(points, assignment, cfg)

	// THEN distances are measured to (0,0): (5 + 10) / 2
	assert.InDelta(t, 7.5, float64(got), 1e-9)
}

func TestAverageDistance_DirectNetwork_AppliesFactor(t *testing.T) {
	cfg := DefaultConfig()
	got := AverageDistance([]Point{{X: 3, Y: 4}}, []int{0}, cfg)
	assert.InDelta(t, 6.5, float64(got), 1e-9)
}

func TestAverageDistance_MultipleWarehouses_UsesAssignedCenter(t *testing.T) {
	// GIVEN two used centers and one center with no objects
	cfg := DefaultConfig().WithNetwork(NetworkNetworked).WithWarehouses(3)
	cfg.RegionalCenters = []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 1000, Y: 1000}}
	points := []Point{{X: 3, Y: 4}, {X: 100, Y: 6}}
	assignment := AssignObjectsToCenters(points, cfg)

	// WHEN averaged
	got := AverageDistance(points, assignment, cfg)

	// THEN (5 + 6) / 2; the empty center contributes nothing
	assert.Equal(t, []int{0, 1}, assignment)
	assert.InDelta(t, 5.5, float64(got), 1e-9)
}

func TestAverageDistance_MismatchedAssignment_Recomputed(t *testing.T) {
	cfg := DefaultConfig().WithNetwork(NetworkNetworked).WithWarehouses(4)
	points := []Point{{X: 3, Y: 4}, {X: 100, Y: 6}}
	got := AverageDistance(points, nil, cfg)
	assert.InDelta(t, 5.5, float64(got), 1e-9)
}

func TestAverageDistance_EmptySet_Zero(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Kilometers(0), AverageDistance(nil, nil, cfg))
	assert.Equal(t, Kilometers(0), AverageDistance([]Point{}, []int{}, cfg.WithWarehouses(4)))
}

func TestAverageDistance_MoreWarehouses_Shorter(t *testing.T) {
	// GIVEN the default spread of objects
	cfg := DefaultConfig()
	points := GenerateObjects(cfg, cfg.Seed)
	assignment := AssignObjectsToCenters(points, cfg)

	// WHEN measured with one and with four warehouses
	one := AverageDistance(points, assignment, cfg)
	four := AverageDistance(points, assignment, cfg.WithWarehouses(4))

	// THEN serving from the nearest center is much shorter
	assert.Less(t, float64(four), float64(one)/2)
}
