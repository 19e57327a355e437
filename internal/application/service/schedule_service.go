package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
	"github.com/scrivoapp/scrivo/internal/locale"
)

// SweepConfig holds timing configuration for the due-item scheduler.
type SweepConfig struct {
	// Interval is the pause between sweeps.
	Interval time.Duration
	// Lead is how long before an appointment's time its notification
	// fires.
	Lead time.Duration
}

// DefaultSweepConfig returns the default scheduler timing.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Interval: 30 * time.Second,
		Lead:     15 * time.Minute,
	}
}

// ScheduleService periodically surfaces due reminders and upcoming
// appointments as notifications and marks each item exactly once.
type ScheduleService struct {
	reminders    repository.ReminderRepository
	appointments repository.AppointmentRepository
	notifier     Notifier
	loc          *locale.Table
	log          *app.Logger
	config       SweepConfig

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewScheduleService creates a new due-item scheduler.
func NewScheduleService(
	reminders repository.ReminderRepository,
	appointments repository.AppointmentRepository,
	notifier Notifier,
	loc *locale.Table,
	log *app.Logger,
	config SweepConfig,
) *ScheduleService {
	if config.Interval <= 0 {
		config.Interval = DefaultSweepConfig().Interval
	}
	if config.Lead <= 0 {
		config.Lead = DefaultSweepConfig().Lead
	}
	return &ScheduleService{
		reminders:    reminders,
		appointments: appointments,
		notifier:     notifier,
		loc:          loc,
		log:          log,
		config:       config,
	}
}

// Start launches the sweep loop. The first sweep also catches up on
// appointments that came due while the process was not running.
func (s *ScheduleService) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(loopCtx)
	return nil
}

// Stop signals the loop to exit and waits for it. The current wait is
// interrupted; an in-flight notification delivery is not. Idempotent.
func (s *ScheduleService) Stop() error {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
	})
	return nil
}

func (s *ScheduleService) loop(ctx context.Context) {
	defer close(s.done)

	s.catchUpAppointments(ctx)
	s.sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs both phases. A failure in one phase never aborts the
// other; failed items stay unmarked and are retried next tick.
func (s *ScheduleService) sweep(ctx context.Context) {
	s.checkReminders(ctx)
	s.checkAppointments(ctx)
}

func (s *ScheduleService) checkReminders(ctx context.Context) {
	pending, err := s.reminders.FindPending(ctx)
	if err != nil {
		s.log.Error("reminder sweep: %v", err)
		return
	}

	title := s.loc.Get("reminder_toast_title", nil)
	for _, rem := range pending {
		if err := s.notifier.Notify(title, rem.Message); err != nil {
			s.log.Warn("reminder notification failed: %v", err)
		}
		// Marked right after the delivery attempt so one bad item
		// cannot wedge the whole sweep into re-notifying forever.
		if err := s.reminders.MarkNotified(ctx, rem.ID); err != nil {
			s.log.Error("mark reminder %d notified: %v", rem.ID, err)
			continue
		}
		s.log.Info("reminder notified: %s", rem.Message)
	}
}

func (s *ScheduleService) checkAppointments(ctx context.Context) {
	upcoming, err := s.appointments.FindUpcoming(ctx, s.config.Lead)
	if err != nil {
		s.log.Error("appointment sweep: %v", err)
		return
	}

	title := s.loc.Get("appointment_toast_title", nil)
	now := time.Now()
	for _, appt := range upcoming {
		minutes := appt.MinutesUntil(now)

		var body string
		if minutes <= 0 {
			body = s.loc.Get("appointment_toast_now", locale.Args{"title": appt.Title})
		} else {
			body = s.loc.Get("appointment_toast_body", locale.Args{
				"title":   appt.Title,
				"minutes": strconv.Itoa(minutes),
			})
		}

		if err := s.notifier.Notify(title, body); err != nil {
			s.log.Warn("appointment notification failed: %v", err)
		}
		if err := s.appointments.MarkNotified(ctx, appt.ID); err != nil {
			s.log.Error("mark appointment %d notified: %v", appt.ID, err)
			continue
		}
		s.log.Info("appointment notified: %s (in %d min)", appt.Title, minutes)
	}
}

// catchUpAppointments surfaces appointments that came due while the
// process was down. Runs once at startup.
func (s *ScheduleService) catchUpAppointments(ctx context.Context) {
	past, err := s.appointments.FindPastUnnotified(ctx)
	if err != nil {
		s.log.Error("appointment catch-up: %v", err)
		return
	}

	title := s.loc.Get("appointment_toast_title", nil)
	for _, appt := range past {
		body := s.loc.Get("appointment_toast_now", locale.Args{"title": appt.Title})
		if err := s.notifier.Notify(title, body); err != nil {
			s.log.Warn("appointment notification failed: %v", err)
		}
		if err := s.appointments.MarkNotified(ctx, appt.ID); err != nil {
			s.log.Error("mark appointment %d notified: %v", appt.ID, err)
		}
	}
}
