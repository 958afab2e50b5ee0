package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewplan/crewplan/planner"
	"github.com/crewplan/crewplan/planner/internal/testutil"
)

func TestGroup_PartitionsAndSortsByMonths(t *testing.T) {
	// GIVEN interleaved results with months out of order
	results := planner.ResultSet{
		testutil.Result(direct, 1, 4, 1, 10),
		testutil.Result(networked, 4, 2, 1, 20),
		testutil.Result(direct, 1, 2, 1, 30),
		testutil.Result(direct, 1, 3, 1, 40),
	}

	// WHEN grouped
	groups := Group(results)

	// THEN groups keep first-appearance order and months ascend
	require.Len(t, groups, 2)
	assert.Equal(t, direct, groups[0].Network)
	assert.Equal(t, 1, groups[0].Warehouses)
	assert.Equal(t, []int{2, 3, 4}, []int{groups[0].Results[0].Months, groups[0].Results[1].Months, groups[0].Results[2].Months})
	assert.Equal(t, networked, groups[1].Network)
	assert.Len(t, groups[1].Results, 1)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
}

func TestScenarioGroup_Heading(t *testing.T) {
	assert.Equal(t, "Direct roads, 1 warehouse", ScenarioGroup{Network: direct, Warehouses: 1}.Heading())
	assert.Equal(t, "Networked roads, 4 warehouses", ScenarioGroup{Network: networked, Warehouses: 4}.Heading())
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "2 months: crews 5, total 4750000.00", FormatLine(testutil.Result(direct, 4, 2, 5, 4750000)))
	assert.Equal(t, "3 months: not achievable", FormatLine(testutil.Infeasible(direct, 1, 3)))
}

func TestGenerateReport_Structure(t *testing.T) {
	// GIVEN a small result set with one infeasible scenario
	results := planner.ResultSet{
		testutil.Result(direct, 1, 3, 4, 1200.5),
		testutil.Infeasible(direct, 1, 2),
		testutil.Result(direct, 4, 2, 2, 600),
	}

	// WHEN rendered
	out := GenerateReport(results)

	// THEN title, sections, bullets and conclusions are present in order
	assert.True(t, strings.HasPrefix(out, "# "+Title+"\n"))
	assert.Contains(t, out, "## Direct roads, 1 warehouse\n\n- 2 months: not achievable\n- 3 months: crews 4, total 1200.50\n")
	assert.Contains(t, out, "## Direct roads, 4 warehouses\n\n- 2 months: crews 2, total 600.00\n")
	conclusions := strings.Index(out, "## Conclusions")
	require.Positive(t, conclusions)
	assert.Greater(t, conclusions, strings.Index(out, "## Direct roads, 4 warehouses"))
	assert.Contains(t, out[conclusions:], "- "+FindingMoreWarehouses)
	assert.NotContains(t, out, "Inf")
}

func TestGenerateReport_NoFindings(t *testing.T) {
	out := GenerateReport(planner.ResultSet{testutil.Result(direct, 1, 2, 1, 100)})
	assert.Contains(t, out, "## Conclusions\n\n- No comparative findings for these scenarios.\n")
}

func TestGenerateReport_EmptyResults_StillTitled(t *testing.T) {
	out := GenerateReport(nil)
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "## Conclusions")
}

func TestGenerateReport_FullMatrix(t *testing.T) {
	results, err := planner.RunFullMatrix([]int{2, 3, 4})
	require.NoError(t, err)

	out := GenerateReport(results)

	assert.Contains(t, out, Title)
	assert.Equal(t, 4, strings.Count(out, "\n## ")-1, "four scenario sections plus Conclusions")
	assert.Equal(t, 12, strings.Count(out, " months: "))
}
