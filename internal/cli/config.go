package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegod100/libby/internal/config"
	"github.com/codegod100/libby/internal/logger"
)

func configCmd(r *Runner, log func() zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the stored configuration",
	}

	settings := func() *config.Settings {
		return config.NewSettings(r.NewApp())
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings().Load()
			if err != nil {
				l := logger.Component(log(), "config")
				l.Warn().Err(err).Msg("showing defaults")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\nusername: %q\n", cfg.Version, cfg.Username)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-username NAME",
		Short: "Store the username shown on the first page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings().SetUsername(args[0]); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			l := logger.Component(log(), "config")
			l.Info().Str("username", args[0]).Msg("username saved")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Remove the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings().Reset()
			l := logger.Component(log(), "config")
			l.Info().Msg("config reset")
			return nil
		},
	})

	return cmd
}
