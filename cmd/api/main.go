package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-notes/config"
	_ "voice-notes/docs" // Swagger docs
	"voice-notes/internal/checklist"
	"voice-notes/internal/httpserver"
	"voice-notes/internal/listcmd"
	"voice-notes/internal/middleware"
	"voice-notes/internal/reminder"
	voiceHTTP "voice-notes/internal/voicecmd/delivery/http"
	tgDelivery "voice-notes/internal/voicecmd/delivery/telegram"
	memosRepo "voice-notes/internal/voicecmd/repository/memos"
	"voice-notes/internal/voicecmd/usecase"
	"voice-notes/pkg/datemath"
	"voice-notes/pkg/gcalendar"
	"voice-notes/pkg/llmprovider"
	"voice-notes/pkg/log"
	"voice-notes/pkg/telegram"
)

// @title       Voice Notes API
// @description Turns voice transcripts into note edits: plain text, checklists and calendar reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting voice-notes...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Memos URL: %s", cfg.Memos.URL)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Voice.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Voice.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM manager config: %v", err)
		os.Exit(1)
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range llmManager.Providers() {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 5. Voice command pipeline
	reminderExtractor := reminder.New(logger, llmManager, dateMathParser, reminder.Config{
		Locale:      datemath.Locale(cfg.Voice.Locale),
		Temperature: cfg.Voice.LLMTemperature,
	})
	lists := listcmd.New(listcmd.DefaultKeywords())
	logger.Infof(ctx, "List keywords version: %s", lists.Version())

	memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
	noteRepo := memosRepo.New(memosClient, cfg.Memos.ExternalURL, logger)

	// Google Calendar client (optional)
	var scheduler usecase.ReminderScheduler
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate "+gcalendar.TokenFile)
		} else {
			scheduler = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	voiceUC := usecase.New(logger, reminderExtractor, lists, checklist.New(), noteRepo, scheduler, usecase.Config{
		Location:        dateMathParser.Location(),
		TitleTimeFormat: cfg.Voice.TitleTimeFormat,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 6. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, voiceUC, telegramBot)
		registerTelegramWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit, cfg.Telegram),
		VoiceHandler:    voiceHTTP.New(logger, voiceUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerTelegramWebhook uses telegram.webhook_url, or the public ngrok
// tunnel when none is configured.
func registerTelegramWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, defaultNgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
