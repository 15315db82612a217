package telegram

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-notes/internal/voicecmd"
	pkgLog "voice-notes/pkg/log"
	pkgTelegram "voice-notes/pkg/telegram"
)

const (
	maxTrackedChats   = 1000
	conversationTTL   = 30 * time.Minute
	processingTimeout = 60 * time.Second
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  voicecmd.UseCase
	bot *pkgTelegram.Bot

	// recent maps a chat to the last note written from it, so "agregar ..."
	// continues the list the user just dictated.
	recent *expirable.LRU[int64, string]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc voicecmd.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		recent: expirable.NewLRU[int64, string](maxTrackedChats, nil, conversationTTL),
	}
}
