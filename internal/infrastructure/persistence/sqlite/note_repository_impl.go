package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/scrivoapp/scrivo/internal/domain/model/note"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
)

// NoteRepositoryImpl implements repository.NoteRepository with SQLite.
type NoteRepositoryImpl struct {
	store *Store
}

// NewNoteRepository creates a new SQLite-based note repository.
func NewNoteRepository(store *Store) repository.NoteRepository {
	return &NoteRepositoryImpl{store: store}
}

const noteColumns = "id, title, content, category, note_type, created_at, updated_at"

// SaveNote stores a free-text note.
func (r *NoteRepositoryImpl) SaveNote(ctx context.Context, content, category, title string) (int64, error) {
	now := formatTime(time.Now())

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result, err := r.store.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, category, note_type, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, content, category, string(note.TypeText), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("save note failed: %w", err)
	}
	return result.LastInsertId()
}

// SaveList stores a checklist note with every item unchecked.
func (r *NoteRepositoryImpl) SaveList(ctx context.Context, title string, items []string, category string) (int64, error) {
	content, err := note.EncodeItems(note.NewItems(items))
	if err != nil {
		return 0, err
	}
	now := formatTime(time.Now())

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result, err := r.store.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, category, note_type, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, content, category, string(note.TypeList), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("save list failed: %w", err)
	}
	return result.LastInsertId()
}

// AddToList appends items to an existing checklist note. The read and
// the write happen under the same lock, so concurrent appends never
// lose entries.
func (r *NoteRepositoryImpl) AddToList(ctx context.Context, noteID int64, items []string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok, err := r.loadItems(ctx, noteID)
	if err != nil || !ok {
		return false, err
	}

	current = append(current, note.NewItems(items)...)
	if err := r.storeItems(ctx, noteID, current); err != nil {
		return false, err
	}
	return true, nil
}

// CheckItem toggles the checked flag of the first entry matching
// itemText after trimming and lowercasing both sides.
func (r *NoteRepositoryImpl) CheckItem(ctx context.Context, noteID int64, itemText string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok, err := r.loadItems(ctx, noteID)
	if err != nil || !ok {
		return false, err
	}

	target := strings.ToLower(strings.TrimSpace(itemText))
	found := false
	for i := range current {
		if strings.ToLower(strings.TrimSpace(current[i].Item)) == target {
			current[i].Checked = !current[i].Checked
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := r.storeItems(ctx, noteID, current); err != nil {
		return false, err
	}
	return true, nil
}

// FindListByTitle scans checklist notes in descending update order and
// returns the first whose title contains the given text,
// case-insensitively. The tie-break between equally recent matches is
// intentionally left to the scan order.
func (r *NoteRepositoryImpl) FindListByTitle(ctx context.Context, title string) (*note.Note, error) {
	notes, err := r.findWhere(ctx, "WHERE note_type = ?", string(note.TypeList))
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(strings.TrimSpace(title))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(strings.TrimSpace(n.Title)), target) {
			return n, nil
		}
	}
	return nil, nil
}

// FindAll returns every note, newest updated first.
func (r *NoteRepositoryImpl) FindAll(ctx context.Context) ([]*note.Note, error) {
	return r.findWhere(ctx, "")
}

// FindByCategory returns the notes of one category, newest updated first.
func (r *NoteRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]*note.Note, error) {
	return r.findWhere(ctx, "WHERE category = ?", category)
}

// Delete removes a note. Absent ids are ignored.
func (r *NoteRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete note failed: %w", err)
	}
	return nil
}

// loadItems fetches a note's checklist entries. The second return value
// is false when the note is absent or not a list. Callers must hold the
// store lock.
func (r *NoteRepositoryImpl) loadItems(ctx context.Context, noteID int64) ([]note.ListItem, bool, error) {
	var content, noteType string
	err := r.store.db.QueryRowContext(ctx,
		"SELECT content, note_type FROM notes WHERE id = ?", noteID,
	).Scan(&content, &noteType)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load note %d failed: %w", noteID, err)
	}
	if noteType != string(note.TypeList) {
		return nil, false, nil
	}

	n := &note.Note{ID: noteID, Content: content, Type: note.Type(noteType)}
	items, err := n.Items()
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

// storeItems writes back checklist entries and bumps updated_at.
// Callers must hold the store lock.
func (r *NoteRepositoryImpl) storeItems(ctx context.Context, noteID int64, items []note.ListItem) error {
	content, err := note.EncodeItems(items)
	if err != nil {
		return err
	}
	_, err = r.store.db.ExecContext(ctx,
		"UPDATE notes SET content = ?, updated_at = ? WHERE id = ?",
		content, formatTime(time.Now()), noteID,
	)
	if err != nil {
		return fmt.Errorf("update note %d failed: %w", noteID, err)
	}
	return nil
}

func (r *NoteRepositoryImpl) findWhere(ctx context.Context, where string, args ...interface{}) ([]*note.Note, error) {
	query := "SELECT " + noteColumns + " FROM notes " + where + " ORDER BY updated_at DESC"

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes failed: %w", err)
	}
	defer rows.Close()

	var notes []*note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func scanNote(rows *sql.Rows) (*note.Note, error) {
	var (
		n                    note.Note
		noteType             string
		createdAt, updatedAt string
	)
	if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &noteType, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan note failed: %w", err)
	}
	n.Type = note.Type(noteType)

	var err error
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
