// Package schedule holds the time-bound entities surfaced by the
// due-item scheduler: appointments and reminders.
package schedule

import "time"

// Appointment is a calendar entry with an absolute point in time.
// Notified transitions false -> true exactly once, set by the scheduler
// when At falls within the notification lead window.
type Appointment struct {
	ID          int64
	Title       string
	At          time.Time
	Description string
	Notified    bool
	CreatedAt   time.Time
}

// MinutesUntil returns whole minutes from now until the appointment,
// clamped at zero for overdue entries.
func (a *Appointment) MinutesUntil(now time.Time) int {
	d := a.At.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// Reminder fires a single notification once RemindAt has passed.
type Reminder struct {
	ID        int64
	Message   string
	RemindAt  time.Time
	Notified  bool
	CreatedAt time.Time
}
