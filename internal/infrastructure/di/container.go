// Package di wires the application together with manual dependency
// injection: one Container owns the store, repositories, gateways and
// services, and tears them down in Close.
package di

import (
	"fmt"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/app/config"
	"github.com/scrivoapp/scrivo/internal/application/service"
	"github.com/scrivoapp/scrivo/internal/domain/repository"
	"github.com/scrivoapp/scrivo/internal/infrastructure/gateway/ollama"
	"github.com/scrivoapp/scrivo/internal/infrastructure/notify"
	"github.com/scrivoapp/scrivo/internal/infrastructure/persistence/sqlite"
	"github.com/scrivoapp/scrivo/internal/locale"
)

// Container holds all constructed dependencies.
type Container struct {
	cfg config.Config
	log *app.Logger

	store *sqlite.Store

	noteRepo        repository.NoteRepository
	appointmentRepo repository.AppointmentRepository
	reminderRepo    repository.ReminderRepository
	settingRepo     repository.SettingRepository

	loc        *locale.Table
	resolver   *ollama.Client
	dispatcher *service.DispatchService
	scheduler  *service.ScheduleService
}

// NewContainer constructs and wires all dependencies. The database is
// opened (and migrated) here; callers must Close the container.
func NewContainer(cfg config.Config) (*Container, error) {
	c := &Container{cfg: cfg, log: app.GetLogger()}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	c.store = store

	c.noteRepo = sqlite.NewNoteRepository(store)
	c.appointmentRepo = sqlite.NewAppointmentRepository(store)
	c.reminderRepo = sqlite.NewReminderRepository(store)
	c.settingRepo = sqlite.NewSettingRepository(store)

	loc, err := locale.New(cfg.Language)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("initialize locale: %w", err)
	}
	c.loc = loc

	c.resolver = ollama.New(cfg.Backend, loc, c.log)

	c.dispatcher = service.NewDispatchService(
		c.noteRepo, c.appointmentRepo, c.reminderRepo, loc, c.log,
	)

	c.scheduler = service.NewScheduleService(
		c.reminderRepo, c.appointmentRepo,
		notify.NewDesktop(), loc, c.log,
		service.SweepConfig{
			Interval: cfg.Scheduler.SweepInterval,
			Lead:     cfg.Lead(),
		},
	)

	return c, nil
}

// Config returns the loaded configuration.
func (c *Container) Config() config.Config { return c.cfg }

// Store returns the underlying database handle.
func (c *Container) Store() *sqlite.Store { return c.store }

// Notes returns the note repository.
func (c *Container) Notes() repository.NoteRepository { return c.noteRepo }

// Appointments returns the appointment repository.
func (c *Container) Appointments() repository.AppointmentRepository { return c.appointmentRepo }

// Reminders returns the reminder repository.
func (c *Container) Reminders() repository.ReminderRepository { return c.reminderRepo }

// Settings returns the setting repository.
func (c *Container) Settings() repository.SettingRepository { return c.settingRepo }

// Locale returns the active string table.
func (c *Container) Locale() *locale.Table { return c.loc }

// Resolver returns the intent resolver gateway.
func (c *Container) Resolver() *ollama.Client { return c.resolver }

// Dispatcher returns the command dispatcher.
func (c *Container) Dispatcher() *service.DispatchService { return c.dispatcher }

// Scheduler returns the due-item scheduler.
func (c *Container) Scheduler() *service.ScheduleService { return c.scheduler }

// Close stops background services and releases the database.
func (c *Container) Close() error {
	if c.scheduler != nil {
		if err := c.scheduler.Stop(); err != nil {
			c.log.Warn("stop scheduler: %v", err)
		}
	}
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
