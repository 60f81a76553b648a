package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ecobuddy/ecobuddy/internal/cache"
	"github.com/ecobuddy/ecobuddy/internal/engine"
	"github.com/ecobuddy/ecobuddy/internal/format"
	"github.com/ecobuddy/ecobuddy/internal/tui"
)

// newCalcCmd creates the interactive calculator command. A saved session is
// resumed where the user left off; quitting mid-way persists progress, and
// completing the questionnaire persists the analytics snapshot.
func newCalcCmd(app *App) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Answer the footprint questionnaire interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("the calculator requires an interactive terminal")
			}

			if reset {
				if err := app.Cache.Clear(); err != nil {
					return fmt.Errorf("failed to reset saved session: %w", err)
				}
			}

			store := engine.NewStore()
			index := 0
			showResults := false

			state, err := app.Cache.LoadSession()
			switch {
			case err == nil:
				store = engine.NewStoreWith(state.Answers)
				index = state.Index
				showResults = state.ShowingResults
				logger.Debug().Int("index", index).Msg("resuming saved session")
			case errors.Is(err, cache.ErrNotFound):
				// Fresh start.
			case errors.Is(err, cache.ErrCorrupt):
				cmd.PrintErrln("Saved session could not be read; starting fresh.")
			default:
				return err
			}

			program := tea.NewProgram(tui.New(store, index, showResults), tea.WithAltScreen())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("calculator failed: %w", err)
			}

			model, ok := final.(tui.Model)
			if !ok {
				return errors.New("calculator returned an unexpected model")
			}

			session := cache.SessionState{
				Index:          model.Index(),
				ShowingResults: model.ShowingResults(),
				Answers:        model.Store().Answers(),
			}
			if err := app.Cache.SaveSession(session); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			if model.ShowingResults() {
				snap := engine.Aggregate(model.Store())
				if err := app.Cache.SaveSnapshot(snap); err != nil {
					return fmt.Errorf("failed to save results: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved results: %s, %s Impact. Run \"ecobuddy analytics\" to explore them.\n",
					format.Kg(snap.Total), snap.Level)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "discard any saved session before starting")
	return cmd
}
