package note

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type discriminates free-text notes from checklist notes.
// It is fixed at creation time and never changes afterwards.
type Type string

const (
	TypeText Type = "text"
	TypeList Type = "list"
)

// Note is a stored note. For TypeList notes Content holds a JSON array
// of ListItem entries in insertion order; for TypeText it is free-form.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Category  string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListItem is one entry of a checklist note.
type ListItem struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

// IsList reports whether the note is a checklist.
func (n *Note) IsList() bool {
	return n.Type == TypeList
}

// Items decodes the checklist entries of a list note.
func (n *Note) Items() ([]ListItem, error) {
	if !n.IsList() {
		return nil, fmt.Errorf("note %d is not a list", n.ID)
	}
	var items []ListItem
	if err := json.Unmarshal([]byte(n.Content), &items); err != nil {
		return nil, fmt.Errorf("decode list content of note %d: %w", n.ID, err)
	}
	return items, nil
}

// EncodeItems serializes checklist entries for storage.
func EncodeItems(items []ListItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list content: %w", err)
	}
	return string(b), nil
}

// NewItems converts plain item texts into unchecked checklist entries,
// preserving order.
func NewItems(texts []string) []ListItem {
	items := make([]ListItem, 0, len(texts))
	for _, t := range texts {
		items = append(items, ListItem{Item: t})
	}
	return items
}
