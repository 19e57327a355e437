package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
)

// newSettingsCmd exposes the persisted key/value preferences the GUI
// stores (recording mode, max recording length and the like).
func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write persisted preferences",
	}

	var def string
	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a setting value",
		Args:  cobra.ExactArgs(1),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			value, err := c.Settings().Get(ctx, args[0], def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}),
	}
	get.Flags().StringVar(&def, "default", "", "value to print when the key is absent")

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Insert or overwrite a setting",
		Args:  cobra.ExactArgs(2),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			return c.Settings().Save(ctx, args[0], args[1])
		}),
	}

	cmd.AddCommand(get, set)
	return cmd
}
