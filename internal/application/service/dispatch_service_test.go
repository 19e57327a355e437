package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/domain/model/note"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
	"github.com/scrivoapp/scrivo/internal/infrastructure/persistence/sqlite"
	"github.com/scrivoapp/scrivo/internal/locale"
)

type dispatchFixture struct {
	svc          *DispatchService
	store        *sqlite.Store
	notes        repository.NoteRepository
	appointments repository.AppointmentRepository
	reminders    repository.ReminderRepository
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	loc, err := locale.New("en")
	require.NoError(t, err)

	f := &dispatchFixture{
		store:        store,
		notes:        sqlite.NewNoteRepository(store),
		appointments: sqlite.NewAppointmentRepository(store),
		reminders:    sqlite.NewReminderRepository(store),
	}
	f.svc = NewDispatchService(f.notes, f.appointments, f.reminders, loc,
		app.NewLogger(app.LogLevelError, io.Discard))
	return f
}

func TestDispatch_NilCommand(t *testing.T) {
	f := newDispatchFixture(t)

	result := f.svc.Dispatch(context.Background(), nil)
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "I didn't understand the command", result.Message)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	f := newDispatchFixture(t)

	result := f.svc.Dispatch(context.Background(), &Command{Name: "launch_rocket"})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "Unknown command: launch_rocket", result.Message)
}

func TestDispatch_SaveNote(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	result := f.svc.Dispatch(ctx, &Command{
		Name: "save_note",
		Args: map[string]interface{}{"content": "buy milk", "title": "Groceries"},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Contains(t, result.Message, "Note saved")

	notes, err := f.notes.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "buy milk", notes[0].Content)
	// Missing category takes the schema default.
	assert.Equal(t, "general", notes[0].Category)
}

func TestDispatch_SaveList_Defaults(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	result := f.svc.Dispatch(ctx, &Command{
		Name: "save_list",
		Args: map[string]interface{}{"items": []interface{}{"milk", "bread"}},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "List 'List' saved (2 items)", result.Message)

	got, err := f.notes.FindListByTitle(ctx, "List")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "general", got.Category)

	items, err := got.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDispatch_AddToList(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	_, err := f.notes.SaveList(ctx, "Weekend Shopping", []string{"eggs"}, "general")
	require.NoError(t, err)

	result := f.svc.Dispatch(ctx, &Command{
		Name: "add_to_list",
		Args: map[string]interface{}{
			"list_title": "shopping",
			"items":      []interface{}{"butter"},
		},
	})
	assert.Equal(t, "Added to 'Weekend Shopping'", result.Message)

	got, err := f.notes.FindListByTitle(ctx, "shopping")
	require.NoError(t, err)
	items, err := got.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "butter", items[1].Item)
}

func TestDispatch_AddToList_NotFound(t *testing.T) {
	f := newDispatchFixture(t)

	result := f.svc.Dispatch(context.Background(), &Command{
		Name: "add_to_list",
		Args: map[string]interface{}{
			"list_title": "missing",
			"items":      []interface{}{"x"},
		},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "List 'missing' not found", result.Message)
}

// staleListRepo reports a list on lookup that is gone by write time,
// as when another writer deletes it between the two statements.
type staleListRepo struct {
	repository.NoteRepository
}

func (r staleListRepo) FindListByTitle(ctx context.Context, title string) (*note.Note, error) {
	return &note.Note{ID: 9999, Title: "Ghost", Type: note.TypeList}, nil
}

func TestDispatch_AddToList_DeletedBetweenLookupAndWrite(t *testing.T) {
	f := newDispatchFixture(t)

	loc, err := locale.New("en")
	require.NoError(t, err)
	svc := NewDispatchService(staleListRepo{f.notes}, f.appointments, f.reminders, loc,
		app.NewLogger(app.LogLevelError, io.Discard))

	result := svc.Dispatch(context.Background(), &Command{
		Name: "add_to_list",
		Args: map[string]interface{}{
			"list_title": "ghost",
			"items":      []interface{}{"x"},
		},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "List 'ghost' not found", result.Message)
}

func TestDispatch_CreateAppointment(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	result := f.svc.Dispatch(ctx, &Command{
		Name: "create_appointment",
		Args: map[string]interface{}{
			"title":       "Dentist",
			"datetime":    "2026-09-01T10:00:00",
			"description": "bring card",
		},
	})
	assert.Equal(t, "Appointment created: Dentist (2026-09-01T10:00:00)", result.Message)

	all, err := f.appointments.FindRange(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Dentist", all[0].Title)
	assert.Equal(t, "bring card", all[0].Description)
}

func TestDispatch_CreateAppointment_BadDatetime(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	result := f.svc.Dispatch(ctx, &Command{
		Name: "create_appointment",
		Args: map[string]interface{}{"title": "Dentist", "datetime": "tomorrow"},
	})
	assert.Equal(t, "I couldn't read the date 'tomorrow'", result.Message)

	all, err := f.appointments.FindRange(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDispatch_SetReminder(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	result := f.svc.Dispatch(ctx, &Command{
		Name: "set_reminder",
		Args: map[string]interface{}{
			"message":   "call mom",
			"remind_at": "2026-09-01T18:00",
		},
	})
	assert.Equal(t, "Reminder set: 2026-09-01T18:00", result.Message)

	all, err := f.reminders.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "call mom", all[0].Message)
}

func TestDispatch_OpenViewCommands(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		view ViewKind
	}{
		{"list_notes", ViewNotes},
		{"list_appointments", ViewAppointments},
		{"list_reminders", ViewReminders},
	}
	for _, tc := range cases {
		result := f.svc.Dispatch(ctx, &Command{Name: tc.name})
		assert.Equal(t, ResultOpenView, result.Kind, tc.name)
		assert.Equal(t, tc.view, result.View, tc.name)
	}
}

func TestDispatch_InvalidArguments(t *testing.T) {
	f := newDispatchFixture(t)

	// items must be an array of strings.
	result := f.svc.Dispatch(context.Background(), &Command{
		Name: "save_list",
		Args: map[string]interface{}{"items": "not an array"},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Contains(t, result.Message, "Error: ")
}

func TestDispatch_StoreFailureIsLocalized(t *testing.T) {
	f := newDispatchFixture(t)
	require.NoError(t, f.store.Close())

	result := f.svc.Dispatch(context.Background(), &Command{
		Name: "save_note",
		Args: map[string]interface{}{"content": "x"},
	})
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Contains(t, result.Message, "Error: ")
}

func TestParseCommandTime(t *testing.T) {
	accepted := []string{
		"2026-09-01T10:00:00",
		"2026-09-01T10:00",
		"2026-09-01 10:00",
		"2026-09-01",
	}
	for _, value := range accepted {
		_, ok := parseCommandTime(value)
		assert.True(t, ok, value)
	}

	rejected := []string{"", "tomorrow", "10:00", "01/09/2026"}
	for _, value := range rejected {
		_, ok := parseCommandTime(value)
		assert.False(t, ok, value)
	}
}
