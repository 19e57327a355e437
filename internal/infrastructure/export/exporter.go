// Package export writes notes out as Markdown files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/scrivoapp/scrivo/internal/domain/model/note"
)

// Exporter renders notes to Markdown on any afero filesystem.
type Exporter struct {
	fs afero.Fs
}

// New creates an exporter writing through fs.
func New(fs afero.Fs) *Exporter {
	return &Exporter{fs: fs}
}

// Export writes one file per note into dir and returns how many files
// were written. Checklist notes render as task lists.
func (e *Exporter) Export(dir string, notes []*note.Note) (int, error) {
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create export directory: %w", err)
	}

	written := 0
	for _, n := range notes {
		path := filepath.Join(dir, fileName(n))
		if err := afero.WriteFile(e.fs, path, []byte(render(n)), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

func fileName(n *note.Note) string {
	title := slugify(n.Title)
	if title == "" {
		title = "note"
	}
	return fmt.Sprintf("%d-%s.md", n.ID, title)
}

func render(n *note.Note) string {
	var b strings.Builder
	if n.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", n.Title)
	}

	if n.IsList() {
		items, err := n.Items()
		if err != nil {
			// Corrupt list content still exports; raw beats lost.
			b.WriteString(n.Content)
			b.WriteString("\n")
			return b.String()
		}
		for _, item := range items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Item)
		}
		return b.String()
	}

	b.WriteString(n.Content)
	b.WriteString("\n")
	return b.String()
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
