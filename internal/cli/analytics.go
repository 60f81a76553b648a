package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecobuddy/ecobuddy/internal/cache"
	"github.com/ecobuddy/ecobuddy/internal/charts"
	"github.com/ecobuddy/ecobuddy/internal/engine"
	"github.com/ecobuddy/ecobuddy/internal/format"
	"github.com/ecobuddy/ecobuddy/internal/report"
)

// comparisonBarWidth is the width of the widest comparison bar.
const comparisonBarWidth = 36

// newAnalyticsCmd creates the analytics command: the category pie, benchmark
// comparison and radar profile for the saved snapshot, plus reduction tips for
// the highest-emitting category. The --data flag accepts an encoded snapshot
// (the shareable payload) and stores it as the new saved result.
func newAnalyticsCmd(app *App) *cobra.Command {
	var data, outputFormat string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show your footprint breakdown, comparisons and tips",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unsupported output format: %s", outputFormat)
			}

			var snap engine.Snapshot
			if data != "" {
				decoded, err := engine.DecodeSnapshot(data)
				if err != nil {
					return fmt.Errorf("invalid --data payload: %w", err)
				}
				if err := decoded.Validate(); err != nil {
					return fmt.Errorf("invalid --data payload: %w", err)
				}
				snap = decoded
				if err := app.Cache.SaveSnapshot(snap); err != nil {
					return fmt.Errorf("failed to save shared snapshot: %w", err)
				}
				logger.Debug().Float64("total", snap.Total).Msg("imported shared snapshot")
			} else {
				loaded, err := app.Cache.LoadSnapshot()
				switch {
				case err == nil:
					snap = loaded
				case errors.Is(err, cache.ErrNotFound), errors.Is(err, cache.ErrCorrupt):
					fmt.Fprintln(cmd.OutOrStdout(), "No saved results yet. Run \"ecobuddy calc\" first.")
					return nil
				default:
					return err
				}
			}

			if outputFormat == "json" {
				encoded, err := snap.Encode()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
				return nil
			}

			renderAnalytics(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "render analytics from an encoded snapshot instead of the cache")
	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text or json")
	return cmd
}

func renderAnalytics(out io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(out, "Your Carbon Footprint: %s, %s Impact\n\n", format.Kg(snap.Total), snap.Level)

	fmt.Fprintln(out, "Category Breakdown")
	for _, p := range charts.Pie(snap) {
		label := charts.InlineLabelText(p)
		if label == "" {
			label = p.Name
		}
		fmt.Fprintf(out, "  %-22s %s\n", label, format.Kg(p.Value))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "How You Compare")
	rows := charts.Comparison(snap)
	maxValue := 0.0
	for _, row := range rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
	}
	for _, row := range rows {
		bar := ""
		if maxValue > 0 {
			// Clamped so an out-of-range value can never produce a
			// negative repeat count.
			n := int(math.Round(row.Value / maxValue * comparisonBarWidth))
			if n < 0 {
				n = 0
			}
			if n > comparisonBarWidth {
				n = comparisonBarWidth
			}
			bar = strings.Repeat("█", n)
		}
		fmt.Fprintf(out, "  %-20s %-*s %s\n", row.Name, comparisonBarWidth, bar, format.Kg(row.Value))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Emissions Profile")
	for _, axis := range charts.Radar(snap) {
		fmt.Fprintf(out, "  %-10s %s (scale to %s)\n",
			axis.Subject, format.Kg(axis.Value), format.Kg(axis.FullMark))
	}

	highest := engine.HighestCategory(snap)
	if highest.Value <= 0 {
		return
	}

	fmt.Fprintf(out, "\nTop Reduction Tips (%s)\n", charts.Title(highest.Name))
	for _, tip := range report.Tips(highest.Name) {
		fmt.Fprintf(out, "  • %s\n", tip)
	}
	fmt.Fprintf(out, "\nDid you know? Cutting your %s emissions by 20%% would lower your total footprint by about %s.\n",
		highest.Name, format.Percent(int(math.Round(float64(highest.Percentage)*0.2))))
}
