package planner

import "math"

// GenerateObjects places cfg.NumObjects synthetic objects. Each object picks a
// regional center uniformly at random and is offset by 2-D Gaussian noise with
// standard deviation cfg.JitterStdDev.
//
// The result depends only on (NumObjects, RegionalCenters, JitterStdDev, seed):
// identical inputs always produce identical points.
func GenerateObjects(cfg Config, seed int64) []Point {
	if cfg.NumObjects <= 0 || len(cfg.RegionalCenters) == 0 {
		return []Point{}
	}

	rng := NewPartitionedRNG(seed)
	centerRNG := rng.ForSubsystem(SubsystemCenterChoice)
	jitterRNG := rng.ForSubsystem(SubsystemJitter)
	sigma := float64(cfg.JitterStdDev)

	points := make([]Point, cfg.NumObjects)
	for i := range points {
		c := cfg.RegionalCenters[centerRNG.Intn(len(cfg.RegionalCenters))]
		points[i] = Point{
			X: c.X + Kilometers(jitterRNG.NormFloat64()*sigma),
			Y: c.Y + Kilometers(jitterRNG.NormFloat64()*sigma),
		}
	}
	return points
}

// AssignObjectsToCenters maps each point to the index of its nearest regional
// center. Ties go to the lowest index. Returns nil when there are no centers.
func AssignObjectsToCenters(points []Point, cfg Config) []int {
	if len(cfg.RegionalCenters) == 0 {
		return nil
	}
	assignment := make([]int, len(points))
	for i, p := range points {
		best, bestDist := 0, math.Inf(1)
		for ci, c := range cfg.RegionalCenters {
			// Strict less-than keeps the first center on equal distances.
			if d := float64(Distance(p, c)); d < bestDist {
				best, bestDist = ci, d
			}
		}
		assignment[i] = best
	}
	return assignment
}
