// Package cli builds the cobra command tree. Every command constructs
// its dependencies through the DI container and tears them down when
// it finishes.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/app/config"
	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

var cfgFile string

// NewRoot builds the root command with all subcommands.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scrivo",
		Short:         "Voice assistant core: notes, agenda and reminders by voice command",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")

	cmd.AddCommand(
		newAssistCmd(),
		newWatchCmd(),
		newNotesCmd(),
		newAgendaCmd(),
		newRemindersCmd(),
		newSettingsCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runWithContainer wraps a command body with config loading, logger
// setup and container lifecycle.
func runWithContainer(fn func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		app.InitGlobalLogger(cfg.LogLevel)

		c, err := di.NewContainer(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		return fn(cmd.Context(), c, cmd, args)
	}
}
