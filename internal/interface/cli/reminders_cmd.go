package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

func newRemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage reminders",
	}
	cmd.AddCommand(newRemindersListCmd(), newRemindersDeleteCmd())
	return cmd
}

func newRemindersListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders ordered by remind time",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			return printReminders(ctx, c, cmd.OutOrStdout(), all)
		}),
	}
	cmd.Flags().BoolVar(&all, "all", false, "include already notified reminders")
	return cmd
}

func newRemindersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reminder-id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reminder id %q", args[0])
			}
			return c.Reminders().Delete(ctx, id)
		}),
	}
}

func printReminders(ctx context.Context, c *di.Container, out io.Writer, includeNotified bool) error {
	reminders, err := c.Reminders().FindAll(ctx, includeNotified)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Fprintln(out, c.Locale().Get("no_reminders", nil))
		return nil
	}

	for _, r := range reminders {
		marker := " "
		if r.Notified {
			marker = "✓"
		}
		fmt.Fprintf(out, "#%d %s %s  %s\n", r.ID, marker, r.RemindAt.Format("2006-01-02 15:04"), r.Message)
	}
	return nil
}
