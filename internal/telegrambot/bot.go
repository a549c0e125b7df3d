// Package telegrambot implements the conversational frontend: the /recommend
// flow, poll posting, and vote-tally chart delivery.
package telegrambot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/lueurxax/movie-night-bot/internal/chart"
	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/platform/config"
	"github.com/lueurxax/movie-night-bot/internal/recommend"
)

const updateTimeoutSeconds = 60

// Recommender is the slice of the recommendation service the bot consumes.
type Recommender interface {
	Movies(ctx context.Context, language, country string, useFallback bool) []domain.Movie
	Window(useFallback bool) recommend.MonthWindow
	MinResults() int
}

// ChartRenderer renders a vote tally as a PNG image.
type ChartRenderer interface {
	Render(title string, votes []chart.Vote) ([]byte, error)
}

// Bot wires Telegram updates to the recommendation pipeline.
type Bot struct {
	cfg         *config.Config
	recommender Recommender
	charts      ChartRenderer
	registry    *PollRegistry
	sessions    *sessionStore
	api         *tgbotapi.BotAPI
	logger      *zerolog.Logger
}

// New creates a Bot and authenticates against the Telegram API.
func New(cfg *config.Config, recommender Recommender, charts ChartRenderer, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		cfg:         cfg,
		recommender: recommender,
		charts:      charts,
		registry:    NewPollRegistry(cfg.PollRegistryTTL, cfg.PollRegistryCap),
		sessions:    newSessionStore(),
		api:         api,
		logger:      logger,
	}, nil
}

// Run consumes updates until the context is cancelled. Each update is handled
// in its own goroutine so one slow fetch does not block other conversations.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches a single update. A blanket recover keeps one broken
// update from taking the bot down; the user gets a generic apology and the
// conversation stays usable for the next command.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			handlerPanicsTotal.Inc()
			b.logger.Error().Interface("panic", r).Msg("recovered panic in update handler")

			if update.Message != nil {
				b.reply(update.Message.Chat.ID, "An error occurred. Please try again.")
			}
		}
	}()

	switch {
	case update.Poll != nil:
		b.handlePoll(ctx, update.Poll)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}
