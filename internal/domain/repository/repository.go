// Package repository defines the persistence interfaces the application
// layer depends on. Implementations live under
// internal/infrastructure/persistence.
package repository

import (
	"context"
	"time"

	"github.com/scrivoapp/scrivo/internal/domain/model/note"
	"github.com/scrivoapp/scrivo/internal/domain/model/schedule"
)

// NoteRepository persists free-text and checklist notes.
type NoteRepository interface {
	// SaveNote stores a free-text note and returns its id.
	SaveNote(ctx context.Context, content, category, title string) (int64, error)

	// SaveList stores a checklist note with all items unchecked,
	// insertion order preserved.
	SaveList(ctx context.Context, title string, items []string, category string) (int64, error)

	// AddToList appends items to an existing checklist note. Returns
	// false when the note does not exist or is not a list.
	AddToList(ctx context.Context, noteID int64, items []string) (bool, error)

	// CheckItem toggles the checked flag of the first entry whose
	// trimmed, lowercased text equals itemText. Returns false when no
	// entry matches or the note is not a list.
	CheckItem(ctx context.Context, noteID int64, itemText string) (bool, error)

	// FindListByTitle returns the most recently updated checklist note
	// whose title contains the given text (case-insensitive), or nil.
	FindListByTitle(ctx context.Context, title string) (*note.Note, error)

	// FindAll returns every note, newest updated first.
	FindAll(ctx context.Context) ([]*note.Note, error)

	// FindByCategory returns notes of one category, newest updated first.
	FindByCategory(ctx context.Context, category string) ([]*note.Note, error)

	// Delete removes a note. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository persists calendar appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, title string, at time.Time, description string) (int64, error)

	// FindRange returns appointments ordered by time ascending,
	// optionally bounded inclusively on either side (nil = unbounded).
	FindRange(ctx context.Context, from, to *time.Time) ([]*schedule.Appointment, error)

	// FindUpcoming returns unnotified appointments due within the window
	// [now, now+within], ascending.
	FindUpcoming(ctx context.Context, within time.Duration) ([]*schedule.Appointment, error)

	// FindPastUnnotified returns overdue appointments that were never
	// notified, ascending.
	FindPastUnnotified(ctx context.Context) ([]*schedule.Appointment, error)

	// MarkNotified flags an appointment as notified. Idempotent.
	MarkNotified(ctx context.Context, id int64) error

	Delete(ctx context.Context, id int64) error
}

// ReminderRepository persists one-shot reminders.
type ReminderRepository interface {
	Create(ctx context.Context, message string, remindAt time.Time) (int64, error)

	// FindPending returns unnotified reminders whose time has passed,
	// ascending by remind time.
	FindPending(ctx context.Context) ([]*schedule.Reminder, error)

	// FindAll returns reminders ascending by remind time; notified ones
	// are included only when includeNotified is set.
	FindAll(ctx context.Context, includeNotified bool) ([]*schedule.Reminder, error)

	// MarkNotified flags a reminder as notified. Idempotent.
	MarkNotified(ctx context.Context, id int64) error

	Delete(ctx context.Context, id int64) error
}

// SettingRepository is a persisted key/value table for user preferences.
type SettingRepository interface {
	// Get returns the stored value, or def when the key is absent.
	Get(ctx context.Context, key, def string) (string, error)

	// Save inserts or overwrites a key.
	Save(ctx context.Context, key, value string) error
}
