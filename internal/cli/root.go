// Package cli defines the libby command line. Without a subcommand it
// opens the GUI.
package cli

import (
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegod100/libby/internal/logger"
	"github.com/codegod100/libby/internal/ui"
)

// Runner holds the dependencies of the commands so tests can swap them.
type Runner struct {
	// NewApp creates the Fyne application. Defaults to app.NewWithID.
	NewApp func() fyne.App
	// Launch runs the GUI. Defaults to ui.Launch.
	Launch func(a fyne.App, log zerolog.Logger)
	// LogWriter receives log output. Defaults to os.Stderr.
	LogWriter io.Writer
}

func (r *Runner) defaults() {
	if r.NewApp == nil {
		r.NewApp = func() fyne.App { return app.NewWithID(ui.AppID) }
	}
	if r.Launch == nil {
		r.Launch = ui.Launch
	}
	if r.LogWriter == nil {
		r.LogWriter = os.Stderr
	}
}

type rootOptions struct {
	logLevel string
	logJSON  bool
}

// NewRootCommand builds the command tree.
func NewRootCommand(r Runner) *cobra.Command {
	r.defaults()
	opts := &rootOptions{}
	log := logger.Nop()

	cmd := &cobra.Command{
		Use:   "libby",
		Short: "A cute three page desktop demo",
		Long: `Libby opens a small window with three pages:

- an animated canvas of hearts and sparkles that dodge the mouse
- a static content page
- a settings page for the username shown on the first page

Configuration is stored in the platform preferences of ` + ui.AppID + `.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log = logger.New(logger.Options{Writer: r.LogWriter, Level: level, JSON: opts.logJSON})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Debug().Msg("starting gui")
			r.Launch(r.NewApp(), log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); defaults to $"+logger.EnvLevel+" or info")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON lines")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(configCmd(&r, func() zerolog.Logger { return log }))
	return cmd
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCommand(Runner{}).Execute()
}
