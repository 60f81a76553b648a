package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newResetCmd creates the reset command, which discards the saved session and
// snapshot.
func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved session and results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Cache.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			logger.Info().Str("cache_dir", app.Cache.Dir()).Msg("cache cleared")
			fmt.Fprintln(cmd.OutOrStdout(), "Saved session and results discarded.")
			return nil
		},
	}
}
