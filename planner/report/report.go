// Package report groups scenario results, derives comparative findings and
// renders the text report.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/crewplan/crewplan/planner"
)

// Title is the top-level heading of every generated report.
const Title = "Technical and Economic Report"

// ScenarioGroup holds the results sharing one (network, warehouses) pair,
// sorted by months ascending.
type ScenarioGroup struct {
	Network    planner.NetworkType
	Warehouses int
	Results    []planner.ScenarioResult
}

// Heading returns the section title, e.g. "Direct roads, 4 warehouses".
func (g ScenarioGroup) Heading() string {
	unit := "warehouses"
	if g.Warehouses == 1 {
		unit = "warehouse"
	}
	return fmt.Sprintf("%s roads, %d %s", g.Network.Title(), g.Warehouses, unit)
}

// At returns the group's result for the given horizon.
func (g ScenarioGroup) At(months int) (planner.ScenarioResult, bool) {
	for _, r := range g.Results {
		if r.Months == months {
			return r, true
		}
	}
	return planner.ScenarioResult{}, false
}

// Group partitions results by (network, warehouses) in order of first
// appearance. Within a group results are sorted by months ascending.
func Group(results planner.ResultSet) []ScenarioGroup {
	type groupKey struct {
		network    planner.NetworkType
		warehouses int
	}
	index := make(map[groupKey]int)
	var groups []ScenarioGroup
	for _, r := range results {
		k := groupKey{r.Network, r.Warehouses}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, ScenarioGroup{Network: r.Network, Warehouses: r.Warehouses})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	for i := range groups {
		slices.SortStableFunc(groups[i].Results, func(a, b planner.ScenarioResult) int {
			return a.Months - b.Months
		})
	}
	return groups
}

// FormatLine renders one bullet line body for r.
func FormatLine(r planner.ScenarioResult) string {
	if !r.Feasible {
		return fmt.Sprintf("%d months: not achievable", r.Months)
	}
	return fmt.Sprintf("%d months: crews %d, total %.2f", r.Months, r.Crews, float64(r.Total))
}

// GenerateReport renders results as a markdown document: a title, one
// section per scenario group and a closing Conclusions section.
func GenerateReport(results planner.ResultSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", Title)

	for _, g := range Group(results) {
		fmt.Fprintf(&b, "\n## %s\n\n", g.Heading())
		for _, r := range g.Results {
			fmt.Fprintf(&b, "- %s\n", FormatLine(r))
		}
	}

	b.WriteString("\n## Conclusions\n\n")
	findings := DeriveHeuristics(results)
	if len(findings) == 0 {
		b.WriteString("- No comparative findings for these scenarios.\n")
	}
	for _, f := range findings {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}
