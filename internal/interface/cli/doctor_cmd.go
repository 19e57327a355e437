package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

// newDoctorCmd runs startup diagnostics: storage health and backend
// reachability. Informational only; a down backend does not prevent
// the rest of the tool from working.
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check storage and backend health",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := c.Store().Ping(); err != nil {
				fmt.Fprintf(out, "storage: FAIL (%v)\n", err)
			} else {
				fmt.Fprintln(out, "storage: OK")
			}

			if c.Resolver().Ping(ctx) {
				fmt.Fprintf(out, "backend: OK (%s, model %s)\n",
					c.Config().Backend.URL, c.Config().Backend.Model)
			} else {
				fmt.Fprintf(out, "backend: UNREACHABLE (%s)\n", c.Config().Backend.URL)
			}
			return nil
		}),
	}
}
