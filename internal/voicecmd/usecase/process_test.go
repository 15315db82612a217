package usecase

import (
	"context"
	"errors"
	"testing"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
)

func TestProcess(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "42", Username: "ana"}

	t.Run("empty transcript", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "   "})
		if !errors.Is(err, voicecmd.ErrEmptyTranscript) {
			t.Errorf("err = %v", err)
		}
		if f.extractor.calls != 0 {
			t.Error("extractor should not run")
		}
	})

	t.Run("no target creates a note", func(t *testing.T) {
		f := newFixture()
		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "lista de compras: pan, leche"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created || out.NoteType != model.NoteTypeChecklist || len(out.AddedItems) != 2 {
			t.Errorf("out = %+v", out)
		}
		if out.Command.SuggestedTitle != "Compras" {
			t.Errorf("title = %q", out.Command.SuggestedTitle)
		}
	})

	t.Run("add goes to the recent note", func(t *testing.T) {
		f := newFixture()
		f.repo.put("memos/7", "- [ ] Pan\n\n#note/checklist")

		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "agregar leche", RecentNoteID: "memos/7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created || out.Note.ID != "memos/7" {
			t.Errorf("out = %+v", out)
		}
		if got := f.repo.updated[0].Content; got != "- [ ] Pan\n- [ ] Leche" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("text ignores the recent note", func(t *testing.T) {
		f := newFixture()
		f.repo.put("memos/7", "- [ ] Pan")

		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "llamar a Ana", RecentNoteID: "memos/7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created || len(f.repo.updated) != 0 {
			t.Errorf("expected a new note, got %+v", out)
		}
	})

	t.Run("missing recent note creates a new one", func(t *testing.T) {
		f := newFixture()
		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "agregar leche", RecentNoteID: "memos/gone"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created || out.NoteType != model.NoteTypeChecklist {
			t.Errorf("out = %+v", out)
		}
	})

	t.Run("explicit note continues its order", func(t *testing.T) {
		f := newFixture()
		f.repo.put("memos/9", "- [ ] Pan\n- [x] Huevos")

		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "agregar leche y sal", NoteID: "memos/9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Command.ChecklistItems) != 2 || out.Command.ChecklistItems[0].Order != 2 {
			t.Errorf("command items = %+v", out.Command.ChecklistItems)
		}
		if len(out.AddedItems) != 2 || out.AddedItems[1].Order != 3 {
			t.Errorf("added = %+v", out.AddedItems)
		}
	})

	t.Run("explicit note receives text", func(t *testing.T) {
		f := newFixture()
		f.repo.put("memos/9", "Notas")

		out, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "otra idea", NoteID: "memos/9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created || f.repo.updated[0].Content != "Notas\notra idea" {
			t.Errorf("out = %+v, updates = %+v", out, f.repo.updated)
		}
	})

	t.Run("explicit note missing", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "hola", NoteID: "memos/none"})
		if !errors.Is(err, voicecmd.ErrNoteNotFound) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture()
		f.repo.getErr = errors.New("timeout")
		_, err := f.uc.Process(ctx, sc, voicecmd.ProcessInput{Transcript: "agregar pan", RecentNoteID: "memos/1"})
		if err == nil || errors.Is(err, voicecmd.ErrNoteNotFound) {
			t.Errorf("err = %v", err)
		}
	})
}
