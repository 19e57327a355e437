package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/scrivoapp/scrivo/internal/domain/model/schedule"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
)

// ReminderRepositoryImpl implements repository.ReminderRepository with SQLite.
type ReminderRepositoryImpl struct {
	store *Store
}

// NewReminderRepository creates a new SQLite-based reminder repository.
func NewReminderRepository(store *Store) repository.ReminderRepository {
	return &ReminderRepositoryImpl{store: store}
}

const reminderColumns = "id, message, remind_at, notified, created_at"

// Create stores a new reminder.
func (r *ReminderRepositoryImpl) Create(ctx context.Context, message string, remindAt time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result, err := r.store.db.ExecContext(ctx,
		"INSERT INTO reminders (message, remind_at, notified, created_at) VALUES (?, ?, 0, ?)",
		message, formatTime(remindAt), formatTime(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("create reminder failed: %w", err)
	}
	return result.LastInsertId()
}

// FindPending returns due, unnotified reminders ascending by remind time.
func (r *ReminderRepositoryImpl) FindPending(ctx context.Context) ([]*schedule.Reminder, error) {
	return r.query(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE notified = 0 AND remind_at <= ? ORDER BY remind_at ASC",
		formatTime(time.Now()),
	)
}

// FindAll returns reminders ascending by remind time, filtering out
// notified ones unless includeNotified is set.
func (r *ReminderRepositoryImpl) FindAll(ctx context.Context, includeNotified bool) ([]*schedule.Reminder, error) {
	query := "SELECT " + reminderColumns + " FROM reminders"
	if !includeNotified {
		query += " WHERE notified = 0"
	}
	query += " ORDER BY remind_at ASC"
	return r.query(ctx, query)
}

// MarkNotified flags a reminder as notified. Idempotent.
func (r *ReminderRepositoryImpl) MarkNotified(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "UPDATE reminders SET notified = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("mark reminder %d notified failed: %w", id, err)
	}
	return nil
}

// Delete removes a reminder. Absent ids are ignored.
func (r *ReminderRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete reminder failed: %w", err)
	}
	return nil
}

func (r *ReminderRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]*schedule.Reminder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reminders failed: %w", err)
	}
	defer rows.Close()

	var reminders []*schedule.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func scanReminder(rows *sql.Rows) (*schedule.Reminder, error) {
	var (
		rem                 schedule.Reminder
		remindAt, createdAt string
	)
	if err := rows.Scan(&rem.ID, &rem.Message, &remindAt, &rem.Notified, &createdAt); err != nil {
		return nil, fmt.Errorf("scan reminder failed: %w", err)
	}

	var err error
	if rem.RemindAt, err = parseTime(remindAt); err != nil {
		return nil, err
	}
	if rem.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &rem, nil
}
