package report

import "github.com/crewplan/crewplan/planner"

// Findings emitted by DeriveHeuristics.
const (
	FindingLongerHorizon  = "Longer horizon reduces required crews and total cost."
	FindingMoreWarehouses = "More warehouses reduce total cost."
	FindingBetterNetwork  = "A better road network reduces total cost."
)

const baselineMonths = 2

var longerHorizons = []int{3, 4}

// DeriveHeuristics turns a result set into qualitative findings. Three
// independent rules run in order; each emits at most one finding, taken from
// the first scenario pair that demonstrates it. Missing evidence means the
// finding is omitted, so the result may be shorter than three or empty.
func DeriveHeuristics(results planner.ResultSet) []string {
	var findings []string
	if longerHorizonHelps(results) {
		findings = append(findings, FindingLongerHorizon)
	}
	if moreWarehousesHelp(results) {
		findings = append(findings, FindingMoreWarehouses)
	}
	if betterNetworkHelps(results) {
		findings = append(findings, FindingBetterNetwork)
	}
	return findings
}

func longerHorizonHelps(results planner.ResultSet) bool {
	for _, g := range Group(results) {
		base, ok := g.At(baselineMonths)
		if !ok {
			continue
		}
		for _, m := range longerHorizons {
			if later, ok := g.At(m); ok && cheaper(later, base) {
				return true
			}
		}
	}
	return false
}

func moreWarehousesHelp(results planner.ResultSet) bool {
	for _, network := range planner.MatrixNetworks {
		one, ok1 := results.Find(planner.ScenarioKey{Network: network, Warehouses: 1, Months: baselineMonths})
		four, ok4 := results.Find(planner.ScenarioKey{Network: network, Warehouses: 4, Months: baselineMonths})
		if ok1 && ok4 && cheaper(four, one) {
			return true
		}
	}
	return false
}

func betterNetworkHelps(results planner.ResultSet) bool {
	for _, wh := range planner.MatrixWarehouses {
		direct, okD := results.Find(planner.ScenarioKey{Network: planner.NetworkDirect, Warehouses: wh, Months: baselineMonths})
		networked, okN := results.Find(planner.ScenarioKey{Network: planner.NetworkNetworked, Warehouses: wh, Months: baselineMonths})
		if okD && okN && cheaper(networked, direct) {
			return true
		}
	}
	return false
}

// cheaper reports whether a strictly beats b. Infeasible results never enter
// cost arithmetic: a feasible result beats an infeasible one, and an
// infeasible result beats nothing.
func cheaper(a, b planner.ScenarioResult) bool {
	if !a.Feasible {
		return false
	}
	if !b.Feasible {
		return true
	}
	return a.Total < b.Total
}
