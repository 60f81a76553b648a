package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
	"github.com/ecobuddy/ecobuddy/internal/engine"
)

// TestImpactLevel_Boundaries verifies the classification is a monotonic step
// function and that boundary values take the higher band.
func TestImpactLevel_Boundaries(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{total: 0, want: engine.LevelLow},
		{total: 999.99, want: engine.LevelLow},
		{total: 1000, want: engine.LevelModerate},
		{total: 2999.99, want: engine.LevelModerate},
		{total: 3000, want: engine.LevelHigh},
		{total: 5999.99, want: engine.LevelHigh},
		{total: 6000, want: engine.LevelVeryHigh},
		{total: 50000, want: engine.LevelVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.ImpactLevel(tt.total), "total %v", tt.total)
	}
}

// submitAll walks the full questionnaire in catalog order with the given
// answers, mirroring the calculator flow.
func submitAll(t *testing.T, answers map[string]string) *engine.Store {
	t.Helper()
	store := engine.NewStore()
	for _, q := range catalog.Questions() {
		raw, ok := answers[q.ID]
		require.True(t, ok, "missing answer for %s", q.ID)
		engine.Submit(store, q, raw)
	}
	return store
}

// TestAggregate_EndToEnd runs the reference scenario: 100 km/week in a petrol
// car, high-meat diet, moderate food waste, regular shopping, 300 kWh/month
// partially renewable, 2 flights/year.
func TestAggregate_EndToEnd(t *testing.T) {
	store := submitAll(t, map[string]string{
		catalog.QuestionCarUsage:    "100",
		catalog.QuestionCarType:     "petrol",
		catalog.QuestionFlights:     "2",
		catalog.QuestionElectricity: "300",
		catalog.QuestionRenewable:   "partial",
		catalog.QuestionDiet:        "high_meat",
		catalog.QuestionFoodWaste:   "moderate",
		catalog.QuestionShopping:    "regularly",
	})

	snap := engine.Aggregate(store)

	// 20 + 12 + 400 + 45 + 1500 + 150 + 600 = 2727
	assert.InDelta(t, 2727, snap.Total, 1e-9)
	assert.Equal(t, engine.LevelModerate, snap.Level)

	require.Len(t, snap.CategoryData, 4)
	wantValues := map[string]float64{
		"transportation": 432,
		"home":           45,
		"food":           1650,
		"consumption":    600,
	}
	var sum float64
	for _, ct := range snap.CategoryData {
		assert.InDelta(t, wantValues[ct.Name], ct.Value, 1e-9, ct.Name)
		sum += ct.Value
	}
	assert.InDelta(t, snap.Total, sum, 1e-9, "total must equal sum of category totals")
}

// TestAggregate_Percentages verifies percentage shares sum to 100 within
// rounding tolerance when the total is positive, and are exactly 0 otherwise.
func TestAggregate_Percentages(t *testing.T) {
	t.Run("positive total", func(t *testing.T) {
		store := engine.NewStore()
		engine.Submit(store, mustQuestion(t, catalog.QuestionCarUsage), "50")
		engine.Submit(store, mustQuestion(t, catalog.QuestionDiet), "vegetarian")
		engine.Submit(store, mustQuestion(t, catalog.QuestionShopping), "rarely")

		snap := engine.Aggregate(store)
		sum := 0
		for _, ct := range snap.CategoryData {
			assert.GreaterOrEqual(t, ct.Percentage, 0)
			sum += ct.Percentage
		}
		tolerance := len(snap.CategoryData)
		assert.InDelta(t, 100, sum, float64(tolerance))
	})

	t.Run("zero total", func(t *testing.T) {
		store := engine.NewStore()
		engine.Submit(store, mustQuestion(t, catalog.QuestionCarUsage), "0")

		snap := engine.Aggregate(store)
		assert.Zero(t, snap.Total)
		for _, ct := range snap.CategoryData {
			assert.Zero(t, ct.Percentage, ct.Name)
			assert.Zero(t, ct.Value, ct.Name)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		snap := engine.Aggregate(engine.NewStore())
		assert.Zero(t, snap.Total)
		assert.Equal(t, engine.LevelLow, snap.Level)
		require.Len(t, snap.CategoryData, 4)
	})
}

// TestHighestCategory verifies max selection and the catalog-order tie-break.
func TestHighestCategory(t *testing.T) {
	t.Run("clear maximum", func(t *testing.T) {
		store := engine.NewStore()
		engine.Submit(store, mustQuestion(t, catalog.QuestionDiet), "high_meat")
		engine.Submit(store, mustQuestion(t, catalog.QuestionCarUsage), "10")

		top := engine.HighestCategory(engine.Aggregate(store))
		assert.Equal(t, "food", top.Name)
	})

	t.Run("tie resolves to earlier category", func(t *testing.T) {
		store := engine.NewStore()
		// transportation 300 (flights) vs food 300 (vegan diet)
		engine.Submit(store, mustQuestion(t, catalog.QuestionFlights), "1.5")
		engine.Submit(store, mustQuestion(t, catalog.QuestionDiet), "vegan")

		top := engine.HighestCategory(engine.Aggregate(store))
		assert.Equal(t, "transportation", top.Name)
	})
}

// TestAggregate_RevisedAnswer verifies upserts keep one record per question
// so totals never double-count a revised answer.
func TestAggregate_RevisedAnswer(t *testing.T) {
	store := engine.NewStore()
	q := mustQuestion(t, catalog.QuestionFlights)
	engine.Submit(store, q, "10")
	engine.Submit(store, q, "1")

	snap := engine.Aggregate(store)
	assert.InDelta(t, 200, snap.Total, 1e-9)
	assert.Equal(t, 1, store.Len())
}

// TestAggregate_UnknownQuestionExcluded verifies answers whose question ID is
// no longer in the catalog (a stale or tampered restored session) count toward
// neither the total nor any category, keeping the total equal to the sum of
// the category subtotals.
func TestAggregate_UnknownQuestionExcluded(t *testing.T) {
	store := engine.NewStoreWith([]engine.Answer{
		{QuestionID: catalog.QuestionFlights, Value: "2", Emissions: 400},
		{QuestionID: "retired_question", Value: "x", Emissions: 500},
	})

	snap := engine.Aggregate(store)
	assert.InDelta(t, 400.0, snap.Total, 1e-9)

	var sum float64
	for _, ct := range snap.CategoryData {
		sum += ct.Value
	}
	assert.InDelta(t, snap.Total, sum, 1e-9)
}
