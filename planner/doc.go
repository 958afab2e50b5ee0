// Package planner provides the estimation engine for crewplan.
//
// # Reading Guide
//
// The pipeline runs strictly top to bottom; each file owns one stage:
//   - sampling.go: synthetic object placement around regional centers and nearest-center assignment
//   - distance.go: Euclidean distance with the road-network multiplier, average service distance
//   - capacity.go: objects one crew can service per working day
//   - crews.go: minimum crew count for a horizon (or ErrInfeasible)
//   - cost.go: wages, vehicles, lodging and per-diem for that crew count
//   - scenario.go / matrix.go: one scenario end to end, and the fixed comparison matrix
//
// # Sub-packages
//
//   - planner/report/: grouping, comparative heuristics and the text report
//   - planner/trace/: per-center assignment breakdown for a single scenario
//   - planner/metrics/: Prometheus gauges for a result set
//
// # Units
//
// Coordinates and distances are kilometres. Durations use Minutes or Hours, and
// every money amount is a Money value in the same currency as the cost rates.
// The distinct types keep a distance from being passed where a duration is expected.
package planner
