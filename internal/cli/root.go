// Package cli wires the Cobra command tree: the interactive calculator,
// analytics, report generation, the chat assistant, and cache maintenance.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecobuddy/ecobuddy/internal/cache"
	"github.com/ecobuddy/ecobuddy/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// App holds the shared state built once per invocation: configuration and the
// cache store. Subcommands receive it instead of re-loading on their own.
type App struct {
	Config   config.Config
	Cache    *cache.Store
	closeLog func() error
}

// NewRootCmd creates the root Cobra command for the ecobuddy CLI. It loads
// configuration, initializes logging, opens the cache store, and wires up the
// subcommands (calc, analytics, report, chat, reset).
func NewRootCmd(ver string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "ecobuddy",
		Short:         "EcoBuddy personal carbon footprint calculator",
		Long:          "EcoBuddy: estimate your annual carbon footprint, explore the breakdown, and get a reduction plan",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Logging.Level = "debug"
			}

			lg, closeFn, err := config.InitLogger(cfg.Logging)
			if err != nil {
				return err
			}
			logger = lg

			store, err := cache.NewStore(cfg.CacheDir)
			if err != nil {
				return err
			}

			app.Config = cfg
			app.Cache = store
			app.closeLog = closeFn

			logger.Debug().Str("cache_dir", store.Dir()).Msg("cache store ready")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app.closeLog != nil {
				return app.closeLog()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(
		newCalcCmd(app),
		newAnalyticsCmd(app),
		newReportCmd(app),
		newChatCmd(app),
		newResetCmd(app),
	)

	return cmd
}

const rootCmdExample = `  # Answer the questionnaire interactively
  ecobuddy calc

  # Show your footprint breakdown and charts
  ecobuddy analytics

  # Render analytics from a shared snapshot payload
  ecobuddy analytics --data '{"total":2727,...}'

  # Generate a personalized report
  ecobuddy report --out my-report.md --name "Ada"

  # Ask the sustainability assistant a question
  ecobuddy chat "How can I cut my commute emissions?"`
