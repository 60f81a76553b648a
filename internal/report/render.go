package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ecobuddy/ecobuddy/internal/charts"
	"github.com/ecobuddy/ecobuddy/internal/format"
)

// RenderMarkdown renders the payload as a markdown document mirroring the
// report's section order: cover details, executive summary, benchmarks,
// category analysis, action plan, projections, and methodology.
func RenderMarkdown(p Payload) string {
	var b strings.Builder

	b.WriteString("# Carbon Footprint Assessment Report\n\n")
	b.WriteString("Comprehensive Environmental Impact Analysis\n\n")

	b.WriteString("## Report Details\n\n")
	name := p.Profile.Name
	if name == "" {
		name = "Individual Assessment"
	}
	fmt.Fprintf(&b, "- Prepared for: %s\n", name)
	if p.Profile.Email != "" {
		fmt.Fprintf(&b, "- Contact: %s\n", p.Profile.Email)
	}
	fmt.Fprintf(&b, "- Assessment Date: %s\n", p.GeneratedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "- Report ID: %s\n\n", p.ReportID)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "Annual Carbon Footprint: **%s**\n\n", format.Kg(p.Snapshot.Total))
	fmt.Fprintf(&b, "Environmental Impact Level: **%s**\n\n", p.Snapshot.Level)

	b.WriteString("### Global Context & Benchmarking\n\n")
	for _, bm := range p.Benchmarks {
		direction := "below"
		if bm.Above {
			direction = "above"
		}
		fmt.Fprintf(&b, "- %s: %s (%d%% %s)\n",
			bm.Label, format.Kg(bm.Value), abs(bm.DiffPercent), direction)
	}
	b.WriteString("\n")

	b.WriteString("### Emissions by Category\n\n")
	for _, ct := range p.Snapshot.CategoryData {
		fmt.Fprintf(&b, "- %s: %s (%s)\n",
			charts.Title(ct.Name), format.Kg(ct.Value), format.Percent(ct.Percentage))
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Category Analysis\n\n")
	for _, insight := range p.Insights {
		fmt.Fprintf(&b, "### %s\n\n", charts.Title(insight.Name))
		fmt.Fprintf(&b, "Annual Emissions: %s — %s of total\n\n",
			format.Kg(insight.Value), format.Percent(insight.Percentage))
		for _, line := range insight.Lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Comprehensive Action Plan\n\n")
	fmt.Fprintf(&b, "Priority Focus: **%s** — %s of your carbon footprint. "+
		"Potential annual reduction: %s.\n\n",
		charts.Title(p.Priority.Name), format.Percent(p.Priority.Percentage),
		format.Kg(p.PotentialReduction))

	writeActionSection(&b, "Immediate Actions (Start Today)", p.Plan.Immediate)
	writeActionSection(&b, "Short-term Goals (1-6 months)", p.Plan.ShortTerm)
	writeActionSection(&b, "Long-term Investments (6+ months)", p.Plan.LongTerm)

	b.WriteString("## Projected Impact & Savings\n\n")
	for _, proj := range p.Projections {
		fmt.Fprintf(&b, "### %s\n\n", proj.Name)
		fmt.Fprintf(&b, "- Target footprint: %s annually\n", format.Kg(proj.Target))
		fmt.Fprintf(&b, "- Annual savings: %s\n", format.Kg(proj.Saving))
		fmt.Fprintf(&b, "- Timeframe: %s\n", proj.Timeframe)
		fmt.Fprintf(&b, "- Equivalent to: %s trees planted or %s miles not driven\n\n",
			format.Number(int64(proj.TreesEquivalent)), format.Number(int64(proj.MilesEquivalent)))
	}

	writeActionSection(&b, "Key Facts & Tips", p.Plan.Tips)

	b.WriteString("## Methodology & Data Sources\n\n")
	for _, line := range p.Methodology {
		fmt.Fprintf(&b, "%s\n\n", line)
	}

	b.WriteString("## Limitations & Considerations\n\n")
	for _, line := range p.Limitations {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	return b.String()
}

// RenderHTML renders the payload as an HTML document via goldmark.
func RenderHTML(p Payload) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(p)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

func writeActionSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
