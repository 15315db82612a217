package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-notes/internal/model"
	"voice-notes/internal/voicecmd"
	pkgResponse "voice-notes/pkg/response"
	pkgTelegram "voice-notes/pkg/telegram"
)

// HandleWebhook acknowledges the update right away and processes the message
// in the background, since Telegram retries webhooks that answer slowly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), processingTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if text == "" {
		if msg.Voice != nil {
			return h.bot.SendMessage(ctx, chatID, msgVoiceUnsupported)
		}
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case "/help":
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case "/new":
		h.recent.Remove(chatID)
		return h.bot.SendMessage(ctx, chatID, msgNewNote)
	}

	recentID, _ := h.recent.Get(chatID)
	input := voicecmd.ProcessInput{
		Transcript:   text,
		RecentNoteID: recentID,
	}
	if msg.Date > 0 {
		input.Now = time.Unix(msg.Date, 0)
	}

	out, err := h.uc.Process(ctx, scopeOf(msg), input)
	if err != nil {
		if errors.Is(err, voicecmd.ErrNoteNotFound) {
			h.recent.Remove(chatID)
			return h.bot.SendMessage(ctx, chatID, msgNoteGone)
		}
		return fmt.Errorf("uc.Process: %w", err)
	}

	h.recent.Add(chatID, out.Note.ID)
	h.l.Info(ctx, "telegram handler: transcript applied", "chat", chatID, "note", out.Note.ID, "created", out.Created)

	return h.bot.SendMessage(ctx, chatID, formatReply(out))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}
