package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/scrivoapp/scrivo/internal/domain/model/schedule"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
)

// AppointmentRepositoryImpl implements repository.AppointmentRepository
// with SQLite.
type AppointmentRepositoryImpl struct {
	store *Store
}

// NewAppointmentRepository creates a new SQLite-based appointment repository.
func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &AppointmentRepositoryImpl{store: store}
}

const appointmentColumns = "id, title, dt, description, notified, created_at"

// Create stores a new appointment.
func (r *AppointmentRepositoryImpl) Create(ctx context.Context, title string, at time.Time, description string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result, err := r.store.db.ExecContext(ctx,
		`INSERT INTO appointments (title, dt, description, notified, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		title, formatTime(at), description, formatTime(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("create appointment failed: %w", err)
	}
	return result.LastInsertId()
}

// FindRange returns appointments ordered by time ascending, bounded
// inclusively by from and to when given.
func (r *AppointmentRepositoryImpl) FindRange(ctx context.Context, from, to *time.Time) ([]*schedule.Appointment, error) {
	query := "SELECT " + appointmentColumns + " FROM appointments"
	var (
		clauses []string
		args    []interface{}
	)
	if from != nil {
		clauses = append(clauses, "dt >= ?")
		args = append(args, formatTime(*from))
	}
	if to != nil {
		clauses = append(clauses, "dt <= ?")
		args = append(args, formatTime(*to))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY dt ASC"

	return r.query(ctx, query, args...)
}

// FindUpcoming returns unnotified appointments due within [now, now+within].
func (r *AppointmentRepositoryImpl) FindUpcoming(ctx context.Context, within time.Duration) ([]*schedule.Appointment, error) {
	now := time.Now()
	return r.query(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE notified = 0 AND dt <= ? AND dt >= ? ORDER BY dt ASC",
		formatTime(now.Add(within)), formatTime(now),
	)
}

// FindPastUnnotified returns overdue appointments that never fired.
func (r *AppointmentRepositoryImpl) FindPastUnnotified(ctx context.Context) ([]*schedule.Appointment, error) {
	return r.query(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE notified = 0 AND dt <= ? ORDER BY dt ASC",
		formatTime(time.Now()),
	)
}

// MarkNotified flags an appointment as notified. Idempotent.
func (r *AppointmentRepositoryImpl) MarkNotified(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "UPDATE appointments SET notified = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("mark appointment %d notified failed: %w", id, err)
	}
	return nil
}

// Delete removes an appointment. Absent ids are ignored.
func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, err := r.store.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete appointment failed: %w", err)
	}
	return nil
}

func (r *AppointmentRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]*schedule.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*schedule.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func scanAppointment(rows *sql.Rows) (*schedule.Appointment, error) {
	var (
		a             schedule.Appointment
		at, createdAt string
	)
	if err := rows.Scan(&a.ID, &a.Title, &at, &a.Description, &a.Notified, &createdAt); err != nil {
		return nil, fmt.Errorf("scan appointment failed: %w", err)
	}

	var err error
	if a.At, err = parseTime(at); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &a, nil
}
