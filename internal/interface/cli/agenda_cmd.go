package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

func newAgendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Manage calendar appointments",
	}
	cmd.AddCommand(newAgendaListCmd(), newAgendaDeleteCmd())
	return cmd
}

func newAgendaListCmd() *cobra.Command {
	var fromFlag, toFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments ordered by time",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			from, err := parseBoundFlag(fromFlag)
			if err != nil {
				return err
			}
			to, err := parseBoundFlag(toFlag)
			if err != nil {
				return err
			}
			return printAppointments(ctx, c, cmd.OutOrStdout(), from, to)
		}),
	}
	cmd.Flags().StringVar(&fromFlag, "from", "", "lower bound (2006-01-02 or 2006-01-02T15:04)")
	cmd.Flags().StringVar(&toFlag, "to", "", "upper bound (inclusive)")
	return cmd
}

func newAgendaDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <appointment-id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid appointment id %q", args[0])
			}
			return c.Appointments().Delete(ctx, id)
		}),
	}
}

func parseBoundFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid datetime %q", value)
}

func printAppointments(ctx context.Context, c *di.Container, out io.Writer, from, to *time.Time) error {
	appointments, err := c.Appointments().FindRange(ctx, from, to)
	if err != nil {
		return err
	}
	if len(appointments) == 0 {
		fmt.Fprintln(out, c.Locale().Get("no_appointments", nil))
		return nil
	}

	for _, a := range appointments {
		marker := " "
		if a.Notified {
			marker = "✓"
		}
		fmt.Fprintf(out, "#%d %s %s  %s", a.ID, marker, a.At.Format("2006-01-02 15:04"), a.Title)
		if a.Description != "" {
			fmt.Fprintf(out, " — %s", a.Description)
		}
		fmt.Fprintln(out)
	}
	return nil
}
