package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
	"github.com/scrivoapp/scrivo/internal/locale"
)

// ViewKind identifies a UI view the caller should open instead of
// displaying a message.
type ViewKind int

const (
	ViewNotes ViewKind = iota + 1
	ViewAppointments
	ViewReminders
)

// ResultKind discriminates the two dispatch outcomes.
type ResultKind int

const (
	// ResultMessage carries a localized string to display.
	ResultMessage ResultKind = iota
	// ResultOpenView instructs the caller to open a view.
	ResultOpenView
)

// Result is the dispatch outcome: either a user-facing message or an
// open-view signal. Callers switch on Kind.
type Result struct {
	Kind    ResultKind
	Message string
	View    ViewKind
}

// MessageResult wraps a display message.
func MessageResult(text string) Result {
	return Result{Kind: ResultMessage, Message: text}
}

// OpenViewResult wraps an open-view signal.
func OpenViewResult(view ViewKind) Result {
	return Result{Kind: ResultOpenView, View: view}
}

// DispatchService executes resolved commands against the store and
// renders localized confirmations. Every failure becomes a localized
// message; nothing propagates to the caller.
type DispatchService struct {
	notes        repository.NoteRepository
	appointments repository.AppointmentRepository
	reminders    repository.ReminderRepository
	loc          *locale.Table
	log          *app.Logger
}

// NewDispatchService creates a new dispatcher.
func NewDispatchService(
	notes repository.NoteRepository,
	appointments repository.AppointmentRepository,
	reminders repository.ReminderRepository,
	loc *locale.Table,
	log *app.Logger,
) *DispatchService {
	return &DispatchService{
		notes:        notes,
		appointments: appointments,
		reminders:    reminders,
		loc:          loc,
		log:          log,
	}
}

// Typed argument structures, one per action, with schema defaults
// applied after decoding.

type saveNoteArgs struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type saveListArgs struct {
	Title    string   `json:"title"`
	Items    []string `json:"items"`
	Category string   `json:"category"`
}

type addToListArgs struct {
	ListTitle string   `json:"list_title"`
	Items     []string `json:"items"`
}

type createAppointmentArgs struct {
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Description string `json:"description"`
}

type setReminderArgs struct {
	Message  string `json:"message"`
	RemindAt string `json:"remind_at"`
}

// Dispatch executes a resolved command. A nil command means the
// resolver found no call and yields the "not understood" message.
func (s *DispatchService) Dispatch(ctx context.Context, cmd *Command) Result {
	if cmd == nil {
		return MessageResult(s.loc.Get("not_understood", nil))
	}
	s.log.Info("dispatch: %s(%v)", cmd.Name, cmd.Args)

	switch cmd.Name {
	case "save_note":
		return s.saveNote(ctx, cmd)
	case "save_list":
		return s.saveList(ctx, cmd)
	case "add_to_list":
		return s.addToList(ctx, cmd)
	case "create_appointment":
		return s.createAppointment(ctx, cmd)
	case "set_reminder":
		return s.setReminder(ctx, cmd)
	case "list_notes":
		return OpenViewResult(ViewNotes)
	case "list_appointments":
		return OpenViewResult(ViewAppointments)
	case "list_reminders":
		return OpenViewResult(ViewReminders)
	default:
		return MessageResult(s.loc.Get("unknown_command", locale.Args{"name": cmd.Name}))
	}
}

func (s *DispatchService) saveNote(ctx context.Context, cmd *Command) Result {
	var args saveNoteArgs
	if err := decodeArgs(cmd.Args, &args); err != nil {
		return s.errorResult(err)
	}
	if args.Category == "" {
		args.Category = "general"
	}

	id, err := s.notes.SaveNote(ctx, args.Content, args.Category, args.Title)
	if err != nil {
		return s.errorResult(err)
	}
	return MessageResult(s.loc.Get("note_saved", locale.Args{"nid": strconv.FormatInt(id, 10)}))
}

func (s *DispatchService) saveList(ctx context.Context, cmd *Command) Result {
	var args saveListArgs
	if err := decodeArgs(cmd.Args, &args); err != nil {
		return s.errorResult(err)
	}
	if args.Title == "" {
		args.Title = s.loc.Get("default_list_title", nil)
	}
	if args.Category == "" {
		args.Category = "general"
	}

	if _, err := s.notes.SaveList(ctx, args.Title, args.Items, args.Category); err != nil {
		return s.errorResult(err)
	}
	return MessageResult(s.loc.Get("list_saved", locale.Args{
		"title": args.Title,
		"count": strconv.Itoa(len(args.Items)),
	}))
}

// addToList re-resolves the target list by title right before writing;
// a cached note reference could be stale by dispatch time.
func (s *DispatchService) addToList(ctx context.Context, cmd *Command) Result {
	var args addToListArgs
	if err := decodeArgs(cmd.Args, &args); err != nil {
		return s.errorResult(err)
	}

	existing, err := s.notes.FindListByTitle(ctx, args.ListTitle)
	if err != nil {
		return s.errorResult(err)
	}
	if existing == nil {
		return MessageResult(s.loc.Get("list_not_found", locale.Args{"title": args.ListTitle}))
	}

	ok, err := s.notes.AddToList(ctx, existing.ID, args.Items)
	if err != nil {
		return s.errorResult(err)
	}
	if !ok {
		// The list vanished between lookup and write.
		return MessageResult(s.loc.Get("list_not_found", locale.Args{"title": args.ListTitle}))
	}
	return MessageResult(s.loc.Get("added_to_list", locale.Args{"title": existing.Title}))
}

func (s *DispatchService) createAppointment(ctx context.Context, cmd *Command) Result {
	var args createAppointmentArgs
	if err := decodeArgs(cmd.Args, &args); err != nil {
		return s.errorResult(err)
	}

	at, ok := parseCommandTime(args.Datetime)
	if !ok {
		return MessageResult(s.loc.Get("bad_datetime", locale.Args{"value": args.Datetime}))
	}

	if _, err := s.appointments.Create(ctx, args.Title, at, args.Description); err != nil {
		return s.errorResult(err)
	}
	return MessageResult(s.loc.Get("appointment_created", locale.Args{
		"title": args.Title,
		"dt":    args.Datetime,
	}))
}

func (s *DispatchService) setReminder(ctx context.Context, cmd *Command) Result {
	var args setReminderArgs
	if err := decodeArgs(cmd.Args, &args); err != nil {
		return s.errorResult(err)
	}

	at, ok := parseCommandTime(args.RemindAt)
	if !ok {
		return MessageResult(s.loc.Get("bad_datetime", locale.Args{"value": args.RemindAt}))
	}

	if _, err := s.reminders.Create(ctx, args.Message, at); err != nil {
		return s.errorResult(err)
	}
	return MessageResult(s.loc.Get("reminder_set", locale.Args{"dt": args.RemindAt}))
}

func (s *DispatchService) errorResult(err error) Result {
	s.log.Error("dispatch error: %v", err)
	return MessageResult(s.loc.Get("error", locale.Args{"detail": err.Error()}))
}

// decodeArgs validates the loosely-typed argument bag against a typed
// structure via a JSON round-trip.
func decodeArgs(args map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// commandTimeFormats are the datetime shapes models produce in
// practice, most specific first.
var commandTimeFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseCommandTime(value string) (time.Time, bool) {
	for _, layout := range commandTimeFormats {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
