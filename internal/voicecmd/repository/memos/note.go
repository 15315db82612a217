package memos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd/repository"
	pkgLog "voice-notes/pkg/log"
)

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	l           pkgLog.Logger
}

// New creates a new Memos-backed note repository.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.NoteRepository {
	return &implRepository{
		client:      client,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		l:           l,
	}
}

func (r *implRepository) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	visibility := opt.Visibility
	if visibility == "" {
		visibility = "PRIVATE"
	}

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    buildMarkdownContent(opt.Content, opt.Tags),
		Visibility: visibility,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Note{}, err
	}

	return r.memoToNote(memo), nil
}

func (r *implRepository) GetNote(ctx context.Context, id string) (model.Note, error) {
	memo, err := r.client.GetMemo(ctx, id)
	if err != nil {
		return model.Note{}, mapNotFound(err)
	}
	return r.memoToNote(memo), nil
}

func (r *implRepository) UpdateNote(ctx context.Context, opt repository.UpdateNoteOptions) (model.Note, error) {
	memo, err := r.client.UpdateMemo(ctx, opt.ID, UpdateMemoRequest{
		Content:    buildMarkdownContent(opt.Content, opt.Tags),
		UpdateMask: "content",
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to update memo %s: %v", opt.ID, err)
		return model.Note{}, mapNotFound(err)
	}
	return r.memoToNote(memo), nil
}

func mapNotFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	}
	return err
}

// buildMarkdownContent appends the tag line to the Markdown body.
func buildMarkdownContent(content string, tags []string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(content, "\n"))
	if len(tags) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(tags, " "))
	}
	return sb.String()
}

// memoToNote converts a Memos API Memo object to the internal model.Note.
func (r *implRepository) memoToNote(m *Memo) model.Note {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	noteURL := ""
	if uid != "" && r.memoBaseURL != "" {
		noteURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	id := m.Name
	if id == "" && uid != "" {
		id = "memos/" + uid
	}

	return model.Note{
		ID:         id,
		UID:        uid,
		Content:    m.Content,
		NoteURL:    noteURL,
		Visibility: m.Visibility,
		CreateTime: m.CreateTime,
		UpdateTime: m.UpdateTime,
	}
}
