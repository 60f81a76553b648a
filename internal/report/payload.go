// Package report builds the structured report payload handed to the document
// collaborator: benchmarks, per-category insights, a tiered action plan, and
// projected-savings scenarios with environmental equivalencies. The engine
// supplies numbers and text; pagination and layout stay with the renderer.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
	"github.com/ecobuddy/ecobuddy/internal/charts"
	"github.com/ecobuddy/ecobuddy/internal/engine"
)

// Environmental equivalence divisors for projected savings.
const (
	// TreeAbsorptionKgPerYear is the kg CO2 one tree absorbs per year.
	TreeAbsorptionKgPerYear = 21.0

	// CarKgPerMile is the kg CO2 emitted per mile driven.
	CarKgPerMile = 0.41
)

// PriorityReductionRate is the assumed achievable reduction for the priority
// category shown in the action-plan header.
const PriorityReductionRate = 0.4

// Profile is the optional user information printed on the report cover.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Benchmark compares the user's total against one fixed reference value.
type Benchmark struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	DiffPercent int     `json:"diffPercent"`
	Above       bool    `json:"above"`
}

// CategoryInsight carries the per-category analysis lines.
type CategoryInsight struct {
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Percentage int      `json:"percentage"`
	Lines      []string `json:"lines"`
}

// Projection is one reduction scenario with its savings and equivalencies.
type Projection struct {
	Name            string  `json:"name"`
	Reduction       float64 `json:"reduction"`
	Timeframe       string  `json:"timeframe"`
	Target          float64 `json:"target"`
	Saving          float64 `json:"saving"`
	TreesEquivalent int     `json:"treesEquivalent"`
	MilesEquivalent int     `json:"milesEquivalent"`
}

// Payload is the full structured report.
type Payload struct {
	ReportID           string               `json:"reportId"`
	GeneratedAt        time.Time            `json:"generatedAt"`
	Profile            Profile              `json:"profile"`
	Snapshot           engine.Snapshot      `json:"snapshot"`
	Benchmarks         []Benchmark          `json:"benchmarks"`
	Insights           []CategoryInsight    `json:"insights"`
	Priority           engine.CategoryTotal `json:"priority"`
	PotentialReduction float64              `json:"potentialReduction"`
	Plan               ActionPlan           `json:"plan"`
	Projections        []Projection         `json:"projections"`
	Methodology        []string             `json:"methodology"`
	Limitations        []string             `json:"limitations"`
}

// scenarios are the fixed reduction scenarios.
var scenarios = []struct {
	name      string
	reduction float64
	timeframe string
}{
	{name: "Conservative (20% reduction)", reduction: 0.2, timeframe: "1 year"},
	{name: "Moderate (40% reduction)", reduction: 0.4, timeframe: "2 years"},
	{name: "Aggressive (60% reduction)", reduction: 0.6, timeframe: "3 years"},
}

// Build derives the full report payload from an analytics snapshot.
func Build(snap engine.Snapshot, profile Profile) Payload {
	priority := engine.HighestCategory(snap)

	return Payload{
		ReportID:           NewReportID(),
		GeneratedAt:        time.Now(),
		Profile:            profile,
		Snapshot:           snap,
		Benchmarks:         buildBenchmarks(snap.Total),
		Insights:           buildInsights(snap),
		Priority:           priority,
		PotentialReduction: math.Round(priority.Value * PriorityReductionRate),
		Plan:               PlanFor(priority.Name),
		Projections:        BuildProjections(snap.Total),
		Methodology:        methodology,
		Limitations:        limitations,
	}
}

// NewReportID generates a short report identifier like "ECO-01HX4GQZ".
func NewReportID() string {
	id := ulid.Make().String()
	return "ECO-" + id[len(id)-8:]
}

func buildBenchmarks(total float64) []Benchmark {
	refs := []struct {
		label string
		value float64
	}{
		{label: "Global Average (2023)", value: charts.GlobalAverage},
		{label: "Developed Countries Average", value: charts.DevelopedAverage},
		{label: "Paris Agreement Target (2030)", value: charts.SustainableTarget},
	}

	out := make([]Benchmark, 0, len(refs))
	for _, ref := range refs {
		out = append(out, Benchmark{
			Label:       ref.label,
			Value:       ref.value,
			DiffPercent: int(math.Round((total - ref.value) / ref.value * 100)),
			Above:       total > ref.value,
		})
	}
	return out
}

func buildInsights(snap engine.Snapshot) []CategoryInsight {
	out := make([]CategoryInsight, 0, len(snap.CategoryData))
	for _, ct := range snap.CategoryData {
		out = append(out, CategoryInsight{
			Name:       ct.Name,
			Value:      ct.Value,
			Percentage: ct.Percentage,
			Lines:      insightLines(ct.Name, ct.Value),
		})
	}
	return out
}

func insightLines(category string, value float64) []string {
	switch category {
	case string(catalog.CategoryTransportation):
		return []string{
			fmt.Sprintf("Daily impact: ~%d kg CO₂e", int(math.Round(value/365))),
			"Primary sources: Vehicle fuel, air travel, public transport",
			"Reduction potential: 30-60% through behavior changes",
		}
	case string(catalog.CategoryHome):
		return []string{
			fmt.Sprintf("Monthly impact: ~%d kg CO₂e", int(math.Round(value/12))),
			"Primary sources: Electricity, heating, cooling, appliances",
			"Reduction potential: 20-50% through efficiency improvements",
		}
	case string(catalog.CategoryFood):
		return []string{
			fmt.Sprintf("Weekly impact: ~%d kg CO₂e", int(math.Round(value/52))),
			"Primary sources: Meat consumption, food transport, packaging",
			"Reduction potential: 25-70% through dietary changes",
		}
	default:
		return []string{
			"Per purchase impact varies significantly",
			"Primary sources: Manufacturing, shipping, packaging, disposal",
			"Reduction potential: 40-80% through conscious consumption",
		}
	}
}

// BuildProjections derives the fixed reduction scenarios for a total:
// target footprint, absolute annual saving, and the trees-planted and
// miles-not-driven equivalencies, all rounded to integers for display.
func BuildProjections(total float64) []Projection {
	out := make([]Projection, 0, len(scenarios))
	for _, sc := range scenarios {
		saving := math.Round(total * sc.reduction)
		out = append(out, Projection{
			Name:            sc.name,
			Reduction:       sc.reduction,
			Timeframe:       sc.timeframe,
			Target:          math.Round(total * (1 - sc.reduction)),
			Saving:          saving,
			TreesEquivalent: int(math.Round(saving / TreeAbsorptionKgPerYear)),
			MilesEquivalent: int(math.Round(saving / CarKgPerMile)),
		})
	}
	return out
}

var methodology = []string{
	"This assessment uses established carbon footprint calculation methodologies.",
	"Transportation: Based on EPA emission factors for various transport modes, considering fuel type, efficiency, and average annual usage patterns.",
	"Home Energy: Calculated using regional electricity grid emission factors and natural gas consumption patterns, adjusted for home size and efficiency.",
	"Food & Diet: Based on life-cycle assessment data from peer-reviewed studies, considering production, processing, transport, and waste.",
	"Consumption: Estimated using expenditure-based calculations with environmentally-extended input-output models for various product categories.",
	"Data Sources: EPA Greenhouse Gas Equivalencies Calculator; IPCC Guidelines for National Greenhouse Gas Inventories; Carnegie Mellon EIO-LCA Model; Our World in Data Environmental Database.",
}

var limitations = []string{
	"This assessment provides estimates based on general consumption patterns",
	"Actual emissions may vary based on specific brands, products, and behaviors",
	"Some indirect emissions (scope 3) may not be fully captured",
	"Regional variations in energy sources affect accuracy",
	"Seasonal variations in behavior are averaged over the year",
}
