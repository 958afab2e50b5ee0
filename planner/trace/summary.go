// Package trace breaks a scenario layout down per regional center.
package trace

import "github.com/crewplan/crewplan/planner"

// CenterLoad aggregates the objects assigned to one regional center.
type CenterLoad struct {
	Index        int
	Center       planner.Point
	Objects      int
	MeanDistance planner.Kilometers // straight-line, without network factor
	MaxDistance  planner.Kilometers
}

// AssignmentSummary aggregates a nearest-center assignment.
type AssignmentSummary struct {
	TotalObjects  int
	Centers       []CenterLoad // one per regional center, in config order
	BusiestCenter int          // index of the center with most objects; -1 if none
	EmptyCenters  int
}

// Summarize computes per-center statistics for an assignment.
// Safe for empty input (returns zero-value loads and BusiestCenter -1).
func Summarize(points []planner.Point, assignment []int, cfg planner.Config) *AssignmentSummary {
	summary := &AssignmentSummary{
		Centers:       make([]CenterLoad, len(cfg.RegionalCenters)),
		BusiestCenter: -1,
	}
	for i, c := range cfg.RegionalCenters {
		summary.Centers[i] = CenterLoad{Index: i, Center: c}
	}
	if len(assignment) != len(points) {
		assignment = planner.AssignObjectsToCenters(points, cfg)
	}

	for i, p := range points {
		load := &summary.Centers[assignment[i]]
		d := planner.Distance(p, load.Center)
		load.Objects++
		load.MeanDistance += d
		if d > load.MaxDistance {
			load.MaxDistance = d
		}
		summary.TotalObjects++
	}

	busiest := 0
	for i := range summary.Centers {
		load := &summary.Centers[i]
		if load.Objects == 0 {
			summary.EmptyCenters++
			continue
		}
		load.MeanDistance /= planner.Kilometers(load.Objects)
		if load.Objects > busiest {
			busiest = load.Objects
			summary.BusiestCenter = i
		}
	}
	return summary
}
