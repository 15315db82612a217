package usecase

import (
	"context"
	"time"

	"voice-notes/internal/checklist"
	"voice-notes/internal/listcmd"
	"voice-notes/internal/reminder"
	"voice-notes/internal/voicecmd"
	"voice-notes/internal/voicecmd/repository"
	"voice-notes/pkg/gcalendar"
	pkgLog "voice-notes/pkg/log"
)

// ReminderScheduler creates calendar events. *gcalendar.Client satisfies it.
type ReminderScheduler interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config holds the presentation settings of written notes.
type Config struct {
	Location         *time.Location
	TitleTimeFormat  string
	CalendarID       string
	ReminderDuration time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	reminder  reminder.Extractor
	lists     listcmd.Service
	checklist checklist.Service
	repo      repository.NoteRepository
	scheduler ReminderScheduler
	cfg       Config
	now       func() time.Time
}

// New creates a new voicecmd UseCase instance. scheduler may be nil, in which
// case reminders are reported as not scheduled.
func New(
	l pkgLog.Logger,
	reminderExtractor reminder.Extractor,
	lists listcmd.Service,
	checklistSvc checklist.Service,
	repo repository.NoteRepository,
	scheduler ReminderScheduler,
	cfg Config,
) voicecmd.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.TitleTimeFormat == "" {
		cfg.TitleTimeFormat = "2006-01-02 15:04"
	}
	if cfg.ReminderDuration <= 0 {
		cfg.ReminderDuration = 15 * time.Minute
	}
	return &implUseCase{
		l:         l,
		reminder:  reminderExtractor,
		lists:     lists,
		checklist: checklistSvc,
		repo:      repo,
		scheduler: scheduler,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (uc *implUseCase) reference(t time.Time) time.Time {
	if t.IsZero() {
		return uc.now()
	}
	return t
}
