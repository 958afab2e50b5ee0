package planner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Road-network multipliers applied to straight-line distance.
const (
	directNetworkFactor    = 1.3 // detour through the hub
	networkedNetworkFactor = 1.0
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) Kilometers {
	return Kilometers(floats.Distance(
		[]float64{float64(a.X), float64(a.Y)},
		[]float64{float64(b.X), float64(b.Y)},
		2,
	))
}

// NetworkFactor returns the road-inefficiency multiplier for n.
// Unknown networks are treated as networked (factor 1.0).
func NetworkFactor(n NetworkType) float64 {
	if n == NetworkDirect {
		return directNetworkFactor
	}
	return networkedNetworkFactor
}

// AverageDistance returns the mean road distance from objects to the depot
// that serves them, scaled by the network factor.
//
// With one warehouse every object is served from RegionalCenters[0] and the
// assignment is ignored. With more, each object is measured to its assigned
// center; groups are summed and divided by the total object count, so centers
// without objects contribute nothing. An empty point set yields 0.
//
// If assignment does not line up with points it is recomputed.
func AverageDistance(points []Point, assignment []int, cfg Config) Kilometers {
	if len(points) == 0 || len(cfg.RegionalCenters) == 0 {
		return 0
	}
	factor := NetworkFactor(cfg.Network)

	if cfg.Warehouses <= 1 {
		depot := cfg.RegionalCenters[0]
		dists := make([]float64, len(points))
		for i, p := range points {
			dists[i] = float64(Distance(p, depot)) * factor
		}
		return Kilometers(stat.Mean(dists, nil))
	}

	if len(assignment) != len(points) {
		assignment = AssignObjectsToCenters(points, cfg)
	}
	groupTotals := make([]float64, len(cfg.RegionalCenters))
	for i, p := range points {
		ci := assignment[i]
		groupTotals[ci] += float64(Distance(p, cfg.RegionalCenters[ci])) * factor
	}
	return Kilometers(floats.Sum(groupTotals) / float64(len(points)))
}
