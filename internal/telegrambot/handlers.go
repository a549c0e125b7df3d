package telegrambot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lueurxax/movie-night-bot/internal/chart"
	"github.com/lueurxax/movie-night-bot/internal/recommend"
)

const (
	pollQuestion = "Which movie to watch in theaters?"
	chartTitle   = "Movie Poll Results"

	helpText = "🎬 Movie night bot\n\n" +
		"/recommend — get movie recommendations for the coming weeks and vote on them\n" +
		"/cancel — cancel the current recommendation flow\n" +
		"/help — show this message"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)

		return
	}

	b.handleAnswer(ctx, msg)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	command := msg.Command()
	commandsTotal.WithLabelValues(command).Inc()
	b.logger.Info().Str("command", command).Int64("chat_id", msg.Chat.ID).Msg("handling command")

	switch command {
	case "start", "help":
		b.reply(msg.Chat.ID, helpText)
	case "recommend":
		b.handleRecommend(msg)
	case "cancel":
		b.handleCancel(msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /recommend to get movie recommendations.")
	}
}

func (b *Bot) handleRecommend(msg *tgbotapi.Message) {
	sess := b.sessions.begin(msg.Chat.ID)
	b.logger.Info().Str("session_id", sess.id).Int64("chat_id", msg.Chat.ID).Msg("recommendation flow started")

	b.reply(msg.Chat.ID, "Which language would you like for the movies? (e.g., English, Spanish)")
}

func (b *Bot) handleCancel(msg *tgbotapi.Message) {
	if _, ok := b.sessions.get(msg.Chat.ID); !ok {
		b.reply(msg.Chat.ID, "Nothing to cancel. Use /recommend to start.")

		return
	}

	b.sessions.end(msg.Chat.ID)
	b.reply(msg.Chat.ID, "Recommendation process cancelled.")
}

// handleAnswer routes a plain-text message to the chat's pending question, if
// any. Messages outside an active session are ignored. The session store
// applies the answer atomically and hands back a value copy, so concurrent
// updates for the same chat cannot observe a half-advanced session.
func (b *Bot) handleAnswer(ctx context.Context, msg *tgbotapi.Message) {
	answer := strings.TrimSpace(msg.Text)
	if answer == "" {
		return
	}

	sess, outcome := b.sessions.answer(msg.Chat.ID, answer)

	switch outcome {
	case outcomeAskCountry:
		b.logger.Info().Str("session_id", sess.id).Str("language", answer).Msg("language selected")

		b.reply(msg.Chat.ID, "Which country would you like the movies to be from? (e.g., USA, UK)")
	case outcomeFinish:
		b.logger.Info().Str("session_id", sess.id).Str("country", answer).Msg("country selected")
		b.finishRecommendation(ctx, msg.Chat.ID, sess, answer)
	}
}

// finishRecommendation runs the fetch → fallback → rank → poll sequence. The
// session was already consumed by the answer that triggered it.
func (b *Bot) finishRecommendation(ctx context.Context, chatID int64, sess session, country string) {
	language := sess.language

	movies := b.recommender.Movies(ctx, language, country, false)
	window := b.recommender.Window(false)
	minResults := b.recommender.MinResults()

	if len(movies) < minResults {
		fallback := b.recommender.Window(true)
		b.logger.Info().Str("session_id", sess.id).Int("movies", len(movies)).Msg("primary window insufficient, widening")

		b.reply(chatID, fmt.Sprintf(
			"Only %d movies found for %s in %s from %s. Searching movies from %s onward...",
			len(movies), window, displayName(language), displayName(country), fallback[0]))

		movies = b.recommender.Movies(ctx, language, country, true)
		window = fallback

		if len(movies) < minResults {
			b.reply(chatID, fmt.Sprintf(
				"Only %d movies found for %s in %s from %s. Need at least %d for a poll. Try again later.",
				len(movies), window, displayName(language), displayName(country), minResults))

			return
		}
	}

	top := recommend.SelectTop(movies, b.cfg.RecommendTopN)
	if len(top) == 0 {
		b.logger.Warn().Str("session_id", sess.id).Msg("no recommendations after ranking")
		b.reply(chatID, "Error processing movie data. Try again later.")

		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Top Movies Released in %s:\n", window))

	options := make([]string, 0, len(top))

	for i, movie := range top {
		sb.WriteString(fmt.Sprintf("%d. %s (TMDB Rating: %.1f)\n", i+1, movie.Title, movie.Rating))
		options = append(options, movie.Title)
	}

	b.reply(chatID, sb.String())

	poll := tgbotapi.NewPoll(chatID, pollQuestion, options...)
	poll.IsAnonymous = false
	poll.AllowsMultipleAnswers = false

	sent, err := b.api.Send(poll)
	if err != nil {
		b.logger.Error().Err(err).Str("session_id", sess.id).Msg("failed to post poll")
		b.reply(chatID, "Could not create the poll. Try again later.")

		return
	}

	if sent.Poll == nil {
		b.logger.Error().Str("session_id", sess.id).Msg("poll message came back without a poll")

		return
	}

	b.registry.Register(sent.Poll.ID, chatID)
	pollsCreatedTotal.Inc()
	b.logger.Info().Str("session_id", sess.id).Str("poll_id", sent.Poll.ID).Msg("poll created")
}

// handlePoll routes a vote-tally event back to the originating chat and sends
// a bar chart of the results. Events for unknown polls are logged and dropped.
func (b *Bot) handlePoll(_ context.Context, poll *tgbotapi.Poll) {
	chatID, ok := b.registry.Resolve(poll.ID)
	if !ok {
		pollRoutingMissesTotal.Inc()
		b.logger.Warn().Str("poll_id", poll.ID).Msg("vote event for unknown poll, dropping")

		return
	}

	votes := make([]chart.Vote, 0, len(poll.Options))
	for _, opt := range poll.Options {
		votes = append(votes, chart.Vote{Option: opt.Text, Count: opt.VoterCount})
	}

	png, err := b.charts.Render(chartTitle, votes)
	if err != nil {
		b.logger.Error().Err(err).Str("poll_id", poll.ID).Msg("failed to render tally chart")

		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "poll_results.png",
		Bytes: png,
	})

	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send tally chart")

		return
	}

	chartsSentTotal.Inc()
	b.logger.Info().Str("poll_id", poll.ID).Int64("chat_id", chatID).Msg("tally chart sent")
}
