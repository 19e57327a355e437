package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/scrivoapp/scrivo/internal/domain/model/note"
	"github.com/scrivoapp/scrivo/internal/infrastructure/di"
	"github.com/scrivoapp/scrivo/internal/infrastructure/export"
	"github.com/scrivoapp/scrivo/internal/locale"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage saved notes and lists",
	}
	cmd.AddCommand(
		newNotesListCmd(),
		newNotesCheckCmd(),
		newNotesDeleteCmd(),
		newNotesExportCmd(),
	)
	return cmd
}

func newNotesListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			return printNotes(ctx, c, cmd.OutOrStdout(), category)
		}),
	}
	cmd.Flags().StringVar(&category, "category", "", "only show one category")
	return cmd
}

func newNotesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <note-id> <item text>",
		Short: "Toggle a checklist item",
		Args:  cobra.MinimumNArgs(2),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}
			item := strings.Join(args[1:], " ")

			ok, err := c.Notes().CheckItem(ctx, id, item)
			if err != nil {
				return err
			}
			loc := c.Locale()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), loc.Get("item_not_found", locale.Args{"item": item}))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc.Get("item_toggled", locale.Args{"item": item}))
			return nil
		}),
	}
}

func newNotesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}
			return c.Notes().Delete(ctx, id)
		}),
	}
}

func newNotesExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all notes as Markdown files",
		RunE: runWithContainer(func(ctx context.Context, c *di.Container, cmd *cobra.Command, args []string) error {
			notes, err := c.Notes().FindAll(ctx)
			if err != nil {
				return err
			}
			count, err := export.New(afero.NewOsFs()).Export(dir, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes to %s\n", count, dir)
			return nil
		}),
	}
	cmd.Flags().StringVar(&dir, "dir", "./notes-export", "destination directory")
	return cmd
}

// printNotes renders the notes listing shared by `notes list` and the
// open-notes-view signal.
func printNotes(ctx context.Context, c *di.Container, out io.Writer, category string) error {
	var (
		notes []*note.Note
		err   error
	)
	if category != "" {
		notes, err = c.Notes().FindByCategory(ctx, category)
	} else {
		notes, err = c.Notes().FindAll(ctx)
	}
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(out, c.Locale().Get("no_notes", nil))
		return nil
	}

	for _, n := range notes {
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(out, "#%d [%s] %s (%s, %s)\n", n.ID, n.Type, title, n.Category,
			n.UpdatedAt.Format("2006-01-02 15:04"))

		if n.IsList() {
			items, err := n.Items()
			if err != nil {
				fmt.Fprintf(out, "    (unreadable list content)\n")
				continue
			}
			for _, item := range items {
				mark := " "
				if item.Checked {
					mark = "x"
				}
				fmt.Fprintf(out, "    [%s] %s\n", mark, item.Item)
			}
		} else if n.Content != "" {
			fmt.Fprintf(out, "    %s\n", firstLine(n.Content))
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
