package engine

import (
	"math"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
)

// Impact level labels.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
	LevelVeryHigh = "Very High"
)

// Impact level boundaries in annual kg CO2e. Boundaries are inclusive-low /
// exclusive-high: a total exactly at a boundary takes the higher band.
const (
	ThresholdModerate = 1000.0
	ThresholdHigh     = 3000.0
	ThresholdVeryHigh = 6000.0
)

// ImpactLevel classifies a total into one of the four impact bands.
func ImpactLevel(total float64) string {
	switch {
	case total < ThresholdModerate:
		return LevelLow
	case total < ThresholdHigh:
		return LevelModerate
	case total < ThresholdVeryHigh:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// Aggregate derives the analytics snapshot from the answer store: grand
// total, per-category subtotals in catalog order, rounded percentage shares
// (0 when the total is 0), and the impact level. Answers for question IDs not
// in the catalog (a stale or tampered session) are excluded entirely, so the
// total always equals the sum of the category subtotals.
func Aggregate(store *Store) Snapshot {
	var total float64
	byCategory := make(map[catalog.Category]float64, len(catalog.Categories()))

	for _, a := range store.Answers() {
		cat, ok := catalog.CategoryOf(a.QuestionID)
		if !ok {
			continue
		}
		total += a.Emissions
		byCategory[cat] += a.Emissions
	}

	data := make([]CategoryTotal, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		value := byCategory[cat]
		pct := 0
		if total > 0 {
			pct = int(math.Round(value / total * 100))
		}
		data = append(data, CategoryTotal{
			Name:       string(cat),
			Value:      value,
			Percentage: pct,
		})
	}

	return Snapshot{
		Total:        total,
		Level:        ImpactLevel(total),
		CategoryData: data,
	}
}

// HighestCategory returns the highest-emitting category. Ties resolve to the
// category appearing first in catalog order.
func HighestCategory(s Snapshot) CategoryTotal {
	var top CategoryTotal
	for i, ct := range s.CategoryData {
		if i == 0 || ct.Value > top.Value {
			top = ct
		}
	}
	return top
}
