// Package charts shapes analytics snapshots into chart-ready series for the
// external chart-rendering collaborator: a category pie, a benchmark
// comparison bar chart, and a per-category radar profile. Only data shaping
// lives here; drawing is the collaborator's concern.
package charts

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
	"github.com/ecobuddy/ecobuddy/internal/engine"
)

// Benchmark constants in annual kg CO2e, used for the comparison chart and
// report benchmarking. Not all are plotted; the developed/developing averages
// feed the report's global-context section.
const (
	GlobalAverage     = 4800.0
	DevelopedAverage  = 9200.0
	DevelopingAverage = 3800.0
	SustainableTarget = 2000.0
)

// MinInlineLabelShare is the share below which a pie slice keeps its legend
// entry but drops its inline label.
const MinInlineLabelShare = 0.05

// RadarScaleFactor pads the shared radar axis above the largest category.
const RadarScaleFactor = 1.2

// PiePoint is one slice of the category-breakdown pie.
type PiePoint struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Share       float64 `json:"share"`
	InlineLabel bool    `json:"inlineLabel"`
}

// ComparisonRow is one bar of the benchmark comparison chart.
type ComparisonRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RadarAxis is one axis of the emissions-profile radar. FullMark is the
// shared scale across all axes.
type RadarAxis struct {
	Subject  string  `json:"subject"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"fullMark"`
}

// radarSubjects shortens category names for the radar display.
var radarSubjects = map[string]string{
	string(catalog.CategoryTransportation): "Transport",
	string(catalog.CategoryHome):           "Home",
	string(catalog.CategoryFood):           "Food",
	string(catalog.CategoryConsumption):    "Goods",
}

// Title capitalizes a category name for display. Rune-aware, so names with a
// multi-byte first character stay valid UTF-8.
func Title(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Pie builds the category-breakdown pie series. Every category keeps a point
// (for the legend) even when its inline label is suppressed.
func Pie(s engine.Snapshot) []PiePoint {
	points := make([]PiePoint, 0, len(s.CategoryData))
	for _, ct := range s.CategoryData {
		share := 0.0
		if s.Total > 0 {
			share = ct.Value / s.Total
		}
		points = append(points, PiePoint{
			Name:        Title(ct.Name),
			Value:       ct.Value,
			Share:       share,
			InlineLabel: share >= MinInlineLabelShare,
		})
	}
	return points
}

// Comparison builds the three fixed comparison rows: the user's total against
// the global average and the sustainable target.
func Comparison(s engine.Snapshot) []ComparisonRow {
	return []ComparisonRow{
		{Name: "Your Footprint", Value: s.Total},
		{Name: "Global Average", Value: GlobalAverage},
		{Name: "Sustainable Target", Value: SustainableTarget},
	}
}

// Radar builds the emissions-profile radar series with a shared full-mark of
// the maximum category value scaled by RadarScaleFactor.
func Radar(s engine.Snapshot) []RadarAxis {
	var maxValue float64
	for _, ct := range s.CategoryData {
		if ct.Value > maxValue {
			maxValue = ct.Value
		}
	}
	fullMark := maxValue * RadarScaleFactor

	axes := make([]RadarAxis, 0, len(s.CategoryData))
	for _, ct := range s.CategoryData {
		subject, ok := radarSubjects[ct.Name]
		if !ok {
			subject = Title(ct.Name)
		}
		axes = append(axes, RadarAxis{
			Subject:  subject,
			Value:    ct.Value,
			FullMark: fullMark,
		})
	}
	return axes
}

// InlineLabelText renders the inline pie label, e.g. "Food 61%". Returns ""
// for suppressed labels.
func InlineLabelText(p PiePoint) string {
	if !p.InlineLabel {
		return ""
	}
	return fmt.Sprintf("%s %.0f%%", p.Name, p.Share*100)
}
