package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecobuddy/ecobuddy/internal/cache"
	"github.com/ecobuddy/ecobuddy/internal/report"
)

// newReportCmd creates the report command: it builds the full structured
// report from the saved snapshot and writes it as Markdown or HTML.
func newReportCmd(app *App) *cobra.Command {
	var outPath, outputFormat, name, email string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a personalized footprint report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := app.Cache.LoadSnapshot()
			switch {
			case err == nil:
			case errors.Is(err, cache.ErrNotFound), errors.Is(err, cache.ErrCorrupt):
				fmt.Fprintln(cmd.OutOrStdout(), "No saved results yet. Run \"ecobuddy calc\" first.")
				return nil
			default:
				return err
			}

			payload := report.Build(snap, report.Profile{Name: name, Email: email})

			var rendered, ext string
			switch outputFormat {
			case "markdown":
				rendered = report.RenderMarkdown(payload)
				ext = "md"
			case "html":
				rendered, err = report.RenderHTML(payload)
				if err != nil {
					return fmt.Errorf("failed to render report: %w", err)
				}
				ext = "html"
			default:
				return fmt.Errorf("unsupported report format: %s", outputFormat)
			}

			if outPath == "" {
				outPath = fmt.Sprintf("%s.%s", payload.ReportID, ext)
			}
			if err := os.WriteFile(outPath, []byte(rendered), 0600); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			logger.Info().Str("report_id", payload.ReportID).Str("path", outPath).Msg("report generated")
			fmt.Fprintf(cmd.OutOrStdout(), "Report %s written to %s\n", payload.ReportID, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (defaults to <report-id>.<ext> in the current directory)")
	cmd.Flags().StringVar(&outputFormat, "format", "markdown", "report format: markdown or html")
	cmd.Flags().StringVar(&name, "name", "", "name to print on the report cover")
	cmd.Flags().StringVar(&email, "email", "", "email to print on the report cover")
	return cmd
}
