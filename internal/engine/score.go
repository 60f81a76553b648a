package engine

import (
	"math"
	"strconv"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
)

// carTypeFactors maps a car-type selection to kg CO2e per km, applied to the
// weekly driving distance answered earlier.
var carTypeFactors = map[string]float64{
	"electric": 0.05,
	"hybrid":   0.08,
	"petrol":   0.12,
	"diesel":   0.14,
	"none":     0,
}

// renewableFactors discount the stored electricity emissions. An unrecognized
// selection applies no discount (factor 1.0) rather than zeroing the answer.
var renewableFactors = map[string]float64{
	"full":    0.1,
	"partial": 0.3,
	"none":    1.0,
}

// lookupTables hold the fixed annual kg CO2e contributions for the
// discrete-choice questions. Unknown selections contribute 0.
var lookupTables = map[string]map[string]float64{
	catalog.QuestionDiet: {
		"vegan":       300,
		"vegetarian":  500,
		"pescatarian": 600,
		"low_meat":    1000,
		"high_meat":   1500,
	},
	catalog.QuestionFoodWaste: {
		"none":     0,
		"little":   50,
		"moderate": 150,
		"high":     300,
	},
	catalog.QuestionShopping: {
		"rarely":       100,
		"occasionally": 300,
		"regularly":    600,
		"frequently":   1000,
	},
}

// HasLookupTable reports whether the question is scored through a discrete
// lookup table rather than a linear emission factor.
func HasLookupTable(questionID string) bool {
	_, ok := lookupTables[questionID]
	return ok
}

// parseNumeric converts a raw answer value to a finite non-negative float.
// Anything else collapses to 0.
func parseNumeric(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Score computes the emissions contribution in kg CO2e for a raw answer to
// the given question. Two questions depend on a sibling answer already in the
// store:
//
//   - car_type multiplies the weekly driving distance by a per-type factor;
//     with no distance answered yet it contributes 0.
//   - renewable_energy carries no contribution of its own; its effect is the
//     retroactive rewrite applied by RecomputeDependent.
//
// Score never fails. Unknown selections and malformed numbers contribute 0.
func Score(q catalog.Question, raw string, store *Store) float64 {
	switch q.ID {
	case catalog.QuestionCarType:
		usage, ok := store.Get(catalog.QuestionCarUsage)
		if !ok {
			return 0
		}
		return parseNumeric(usage.Value) * carTypeFactors[raw]
	case catalog.QuestionRenewable:
		return 0
	}

	if table, ok := lookupTables[q.ID]; ok {
		return table[raw]
	}

	return parseNumeric(raw) * q.EmissionFactor
}

// RecomputeDependent applies the one scoring rule with a side effect outside
// the submitted question's own record: selecting a renewable-energy option
// rewrites the already-stored electricity answer to
//
//	electricity kWh × electricity factor × renewable factor
//
// The special case is deliberately hard-coded to this question pair; there is
// no general dependency graph. If the electricity answer is absent nothing
// happens (no retroactive computation is attempted).
func RecomputeDependent(store *Store, questionID, raw string) {
	if questionID != catalog.QuestionRenewable {
		return
	}

	elec, ok := store.Get(catalog.QuestionElectricity)
	if !ok {
		return
	}

	elecQ, ok := catalog.ByID(catalog.QuestionElectricity)
	if !ok {
		return
	}

	factor, ok := renewableFactors[raw]
	if !ok {
		factor = 1.0
	}

	store.setEmissions(catalog.QuestionElectricity,
		parseNumeric(elec.Value)*elecQ.EmissionFactor*factor)
}

// Submit scores the raw value, upserts the resulting answer, and runs the
// dependent-answer recompute step. It returns the stored answer.
func Submit(store *Store, q catalog.Question, raw string) Answer {
	a := Answer{
		QuestionID: q.ID,
		Value:      raw,
		Emissions:  Score(q, raw, store),
	}
	store.Put(a)
	RecomputeDependent(store, q.ID, raw)
	return a
}
