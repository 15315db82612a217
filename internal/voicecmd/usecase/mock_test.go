package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-notes/internal/checklist"
	"voice-notes/internal/listcmd"
	"voice-notes/internal/model"
	"voice-notes/internal/reminder"
	"voice-notes/internal/voicecmd/repository"
	"voice-notes/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockExtractor returns the transcript unchanged unless analyze is set.
type mockExtractor struct {
	analyze func(transcript string, now time.Time) reminder.Analysis
	calls   int
}

func (m *mockExtractor) Analyze(ctx context.Context, transcript string, now time.Time) reminder.Analysis {
	m.calls++
	if m.analyze != nil {
		return m.analyze(transcript, now)
	}
	return reminder.Analysis{CleanText: transcript}
}

// memRepo is an in-memory NoteRepository.
type memRepo struct {
	notes     map[string]model.Note
	seq       int
	createErr error
	updateErr error
	getErr    error
	created   []repository.CreateNoteOptions
	updated   []repository.UpdateNoteOptions
}

func newMemRepo() *memRepo {
	return &memRepo{notes: map[string]model.Note{}}
}

func (r *memRepo) put(id, content string) {
	r.notes[id] = model.Note{ID: id, Content: content, NoteURL: "http://memos.local/m/" + strings.TrimPrefix(id, "memos/")}
}

func compose(content string, tags []string) string {
	if len(tags) == 0 {
		return content
	}
	return content + "\n\n" + strings.Join(tags, " ")
}

func (r *memRepo) CreateNote(ctx context.Context, opts repository.CreateNoteOptions) (model.Note, error) {
	r.created = append(r.created, opts)
	if r.createErr != nil {
		return model.Note{}, r.createErr
	}
	r.seq++
	id := fmt.Sprintf("memos/new%d", r.seq)
	r.put(id, compose(opts.Content, opts.Tags))
	return r.notes[id], nil
}

func (r *memRepo) GetNote(ctx context.Context, id string) (model.Note, error) {
	if r.getErr != nil {
		return model.Note{}, r.getErr
	}
	note, ok := r.notes[id]
	if !ok {
		return model.Note{}, repository.ErrNotFound
	}
	return note, nil
}

func (r *memRepo) UpdateNote(ctx context.Context, opts repository.UpdateNoteOptions) (model.Note, error) {
	r.updated = append(r.updated, opts)
	if r.updateErr != nil {
		return model.Note{}, r.updateErr
	}
	if _, ok := r.notes[opts.ID]; !ok {
		return model.Note{}, repository.ErrNotFound
	}
	r.put(opts.ID, compose(opts.Content, opts.Tags))
	return r.notes[opts.ID], nil
}

type mockScheduler struct {
	err  error
	reqs []gcalendar.CreateEventRequest
}

func (m *mockScheduler) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt1", Summary: req.Summary, HtmlLink: "https://calendar.google.com/evt1"}, nil
}

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *implUseCase
	extractor *mockExtractor
	repo      *memRepo
	scheduler *mockScheduler
}

func newFixture() fixture {
	f := fixture{
		extractor: &mockExtractor{},
		repo:      newMemRepo(),
		scheduler: &mockScheduler{},
	}
	uc := New(&mockLogger{}, f.extractor, listcmd.New(listcmd.DefaultKeywords()), checklist.New(), f.repo, f.scheduler, Config{
		CalendarID: "primary",
	}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	f.uc = uc
	return f
}

func itemTexts(items []model.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}
