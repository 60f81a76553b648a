package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobuddy/ecobuddy/internal/engine"
	"github.com/ecobuddy/ecobuddy/internal/report"
)

func referenceSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Total: 2727,
		Level: engine.LevelModerate,
		CategoryData: []engine.CategoryTotal{
			{Name: "transportation", Value: 432, Percentage: 16},
			{Name: "home", Value: 45, Percentage: 2},
			{Name: "food", Value: 1650, Percentage: 61},
			{Name: "consumption", Value: 600, Percentage: 22},
		},
	}
}

func TestBuildProjections(t *testing.T) {
	projections := report.BuildProjections(2727)
	require.Len(t, projections, 3)

	tests := []struct {
		idx       int
		target    float64
		saving    float64
		trees     int
		miles     int
		timeframe string
	}{
		// 2727*0.2 = 545.4 → saving 545, trees 545/21 → 26, miles 545/0.41 → 1329
		{idx: 0, target: 2182, saving: 545, trees: 26, miles: 1329, timeframe: "1 year"},
		// 2727*0.4 = 1090.8 → saving 1091, trees 52, miles 2661
		{idx: 1, target: 1636, saving: 1091, trees: 52, miles: 2661, timeframe: "2 years"},
		// 2727*0.6 = 1636.2 → saving 1636, trees 78, miles 3990
		{idx: 2, target: 1091, saving: 1636, trees: 78, miles: 3990, timeframe: "3 years"},
	}

	for _, tt := range tests {
		p := projections[tt.idx]
		assert.InDelta(t, tt.target, p.Target, 1e-9, p.Name)
		assert.InDelta(t, tt.saving, p.Saving, 1e-9, p.Name)
		assert.Equal(t, tt.trees, p.TreesEquivalent, p.Name)
		assert.Equal(t, tt.miles, p.MilesEquivalent, p.Name)
		assert.Equal(t, tt.timeframe, p.Timeframe, p.Name)
	}
}

func TestBuild(t *testing.T) {
	payload := report.Build(referenceSnapshot(), report.Profile{Name: "Alex", Email: "alex@example.com"})

	assert.True(t, strings.HasPrefix(payload.ReportID, "ECO-"))
	assert.False(t, payload.GeneratedAt.IsZero())
	assert.Equal(t, "Alex", payload.Profile.Name)

	// Priority focus is the highest-emitting category.
	assert.Equal(t, "food", payload.Priority.Name)
	assert.InDelta(t, 660, payload.PotentialReduction, 1e-9) // 1650 * 0.4

	require.Len(t, payload.Benchmarks, 3)
	global := payload.Benchmarks[0]
	assert.Equal(t, "Global Average (2023)", global.Label)
	assert.False(t, global.Above) // 2727 < 4800
	assert.Equal(t, -43, global.DiffPercent)

	target := payload.Benchmarks[2]
	assert.True(t, target.Above) // 2727 > 2000
	assert.Equal(t, 36, target.DiffPercent)

	require.Len(t, payload.Insights, 4)
	assert.Equal(t, "transportation", payload.Insights[0].Name)
	assert.Contains(t, payload.Insights[0].Lines[0], "Daily impact")

	// Action plan comes from the priority category's tables.
	assert.NotEmpty(t, payload.Plan.Immediate)
	assert.Contains(t, payload.Plan.Immediate[0], "meat")

	require.Len(t, payload.Projections, 3)
	assert.NotEmpty(t, payload.Methodology)
	assert.NotEmpty(t, payload.Limitations)
}

func TestNewReportID_Unique(t *testing.T) {
	a := report.NewReportID()
	b := report.NewReportID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("ECO-")+8)
}

func TestPlanFor_UnknownFallsBackToConsumption(t *testing.T) {
	plan := report.PlanFor("something_else")
	assert.Equal(t, report.PlanFor("consumption"), plan)
}

func TestTips(t *testing.T) {
	tips := report.Tips("home")
	require.NotEmpty(t, tips)
	assert.Contains(t, tips[0], "LED")

	assert.Equal(t, []string{"No specific tips available"}, report.Tips("unknown"))
}
