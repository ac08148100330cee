// Package bot is the Telegram surface of the price caches: command
// listings, crypto lookups and the free-text conversion pipeline over
// long polling.
package bot

import (
	"context"
	"fmt"

	"arzbot/config"
	"arzbot/internal/cache"
	"arzbot/internal/users"
	"arzbot/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// App wires the Telegram API to the caches and the user store.
type App struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	currency *cache.CurrencyCache
	crypto   *cache.CryptoCache
	users    *users.Store
	log      *logger.Log
}

// NewApp authenticates against the Telegram API and builds the app.
func NewApp(cfg *config.Config, currency *cache.CurrencyCache, crypto *cache.CryptoCache, store *users.Store) (*App, error) {
	log := logger.GetLogger()

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = cfg.Telegram.Debug

	log.WithComponent("bot").WithFields(logger.Fields{
		"username": api.Self.UserName,
	}).Info("telegram bot authorized")

	return &App{
		api:      api,
		config:   cfg,
		currency: currency,
		crypto:   crypto,
		users:    store,
		log:      log,
	}, nil
}

// Run consumes updates until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	log := a.log.WithComponent("bot").WithFields(logger.Fields{"operation": "run"})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = a.config.Telegram.UpdateTimeout
	updates := a.api.GetUpdatesChan(u)

	log.Info("bot update loop started")
	for {
		select {
		case <-ctx.Done():
			a.api.StopReceivingUpdates()
			log.Info("bot update loop stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				log.Warn("update channel closed")
				return nil
			}
			a.handleUpdate(ctx, update)
		}
	}
}

func (a *App) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		logger.IncrementBotUpdate()
		a.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		logger.IncrementBotUpdate()
		a.handleCallback(ctx, update.CallbackQuery)
	}
}

func (a *App) reply(chatID int64, text string) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := a.api.Send(msg); err != nil {
		a.log.WithComponent("bot").WithError(err).Warn("failed to send message")
	}
}
