package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
)

func TestQuestions_CatalogShape(t *testing.T) {
	questions := catalog.Questions()
	require.Len(t, questions, 8)
	assert.Equal(t, len(questions), catalog.Count())

	seen := make(map[string]bool)
	validCategories := make(map[catalog.Category]bool)
	for _, c := range catalog.Categories() {
		validCategories[c] = true
	}

	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.True(t, validCategories[q.Category], "question %s has unknown category %q", q.ID, q.Category)

		if q.Kind == catalog.InputSingleChoice {
			assert.NotEmpty(t, q.Options, "single-choice question %s needs options", q.ID)
		} else {
			assert.Empty(t, q.Options, "non-choice question %s must not carry options", q.ID)
		}
	}
}

func TestQuestions_Order(t *testing.T) {
	var ids []string
	for _, q := range catalog.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{
		catalog.QuestionCarUsage,
		catalog.QuestionCarType,
		catalog.QuestionFlights,
		catalog.QuestionElectricity,
		catalog.QuestionRenewable,
		catalog.QuestionDiet,
		catalog.QuestionFoodWaste,
		catalog.QuestionShopping,
	}, ids)
}

func TestByID(t *testing.T) {
	q, ok := catalog.ByID(catalog.QuestionElectricity)
	require.True(t, ok)
	assert.Equal(t, catalog.CategoryHome, q.Category)
	assert.Equal(t, "kWh", q.Unit)
	assert.InDelta(t, 0.5, q.EmissionFactor, 1e-9)

	_, ok = catalog.ByID("does_not_exist")
	assert.False(t, ok)
}

func TestCategoryOf(t *testing.T) {
	cat, ok := catalog.CategoryOf(catalog.QuestionShopping)
	require.True(t, ok)
	assert.Equal(t, catalog.CategoryConsumption, cat)

	_, ok = catalog.CategoryOf("nope")
	assert.False(t, ok)
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []catalog.Category{
		catalog.CategoryTransportation,
		catalog.CategoryHome,
		catalog.CategoryFood,
		catalog.CategoryConsumption,
	}, catalog.Categories())
}

func TestInputKind_String(t *testing.T) {
	assert.Equal(t, "singleChoice", catalog.InputSingleChoice.String())
	assert.Equal(t, "number", catalog.InputNumeric.String())
	assert.Equal(t, "slider", catalog.InputSlider.String())
}
