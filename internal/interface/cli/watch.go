package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

// newWatchCmd runs the due-item scheduler in the foreground until
// interrupted, firing desktop notifications for due reminders and
// upcoming appointments.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the reminder/appointment notification scheduler",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := c.Scheduler().Start(ctx); err != nil {
				return fmt.Errorf("start scheduler: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching for due items every %s (Ctrl-C to stop)\n",
				c.Config().Scheduler.SweepInterval)

			<-ctx.Done()
			return c.Scheduler().Stop()
		}),
	}
}
