package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/application/service"
	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

// newAssistCmd processes one transcribed utterance: resolve it into a
// structured command, dispatch it, and print the outcome. This is the
// same path the voice pipeline drives, minus audio capture.
func newAssistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assist [text...]",
		Short: "Interpret a transcribed instruction and execute it",
		Long: `Interpret a transcribed instruction through the language-model backend
and execute the resulting action. Reads stdin when no text is given.`,
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSpace(string(raw))
			}
			if text == "" {
				return fmt.Errorf("nothing to interpret")
			}

			call := c.Resolver().Resolve(ctx, text)
			result := c.Dispatcher().Dispatch(ctx, call)

			out := cmd.OutOrStdout()
			switch result.Kind {
			case service.ResultOpenView:
				// A GUI host opens the matching window here; on the
				// command line we print the corresponding listing.
				return printView(ctx, c, out, result.View)
			default:
				fmt.Fprintln(out, result.Message)
				return nil
			}
		}),
	}
}

func printView(ctx context.Context, c *di.Container, out io.Writer, view service.ViewKind) error {
	loc := c.Locale()
	switch view {
	case service.ViewNotes:
		fmt.Fprintln(out, loc.Get("show_notes", nil))
		return printNotes(ctx, c, out, "")
	case service.ViewAppointments:
		fmt.Fprintln(out, loc.Get("show_appointments", nil))
		return printAppointments(ctx, c, out, nil, nil)
	case service.ViewReminders:
		fmt.Fprintln(out, loc.Get("show_reminders", nil))
		return printReminders(ctx, c, out, false)
	}
	return nil
}
