package bot

import (
	"errors"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/ojas-1234/company-fitness-bot/internal/service"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	log := slog.With("update_id", update.UpdateID, "trace_id", uuid.NewString())

	// One misbehaving update must not take the poller down with it.
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered from panic in update handler", "panic", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(log, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(log, update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleText(log, update.Message)
	}
}

// register upserts the sender on every interaction so name changes on
// Telegram show up on the leaderboard without a re-/start.
func (b *Bot) register(log *slog.Logger, from *tgbotapi.User) error {
	_, err := b.users.Register(from.ID, from.UserName, from.FirstName)
	if err != nil {
		log.Error("failed to register user", "error", err)
		return err
	}
	return nil
}

func (b *Bot) handleCommand(log *slog.Logger, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	log = log.With("user_id", msg.From.ID, "command", msg.Command())

	err := b.register(log, msg.From)
	if err != nil {
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgTransientError))
		return
	}

	switch msg.Command() {
	case "start":
		b.handleStart(log, msg)
	case "check":
		b.handleCheck(log, msg)
	case "stats":
		b.handleStats(log, msg)
	default:
		log.Debug("ignoring unknown command")
	}
}

func (b *Bot) handleStart(log *slog.Logger, msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, startText(b.appName, msg.From.FirstName))
	reply.ReplyMarkup = frequencyKeyboard()
	b.send(log, reply)
}

func (b *Bot) handleCheck(log *slog.Logger, msg *tgbotapi.Message) {
	challenge, err := b.challenges.Active(msg.From.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveChallenge) {
			b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgNoChallenge))
			return
		}
		log.Error("failed to load active challenge", "error", err)
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgTransientError))
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, checkText(challenge))
	reply.ReplyMarkup = checkKeyboard(challenge.ID)
	b.send(log, reply)
}

func (b *Bot) handleStats(log *slog.Logger, msg *tgbotapi.Message) {
	rows, err := b.leaderboard.Standings()
	if err != nil {
		log.Error("failed to load leaderboard", "error", err)
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgTransientError))
		return
	}
	if len(rows) == 0 {
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgNoStats))
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, formatLeaderboard(rows, b.leaderboard.WindowDays()))
	reply.ParseMode = tgbotapi.ModeMarkdown
	b.send(log, reply)
}

// handleText treats any plain message as challenge text when a setup is in
// flight, and nudges toward /start otherwise.
func (b *Bot) handleText(log *slog.Logger, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	log = log.With("user_id", msg.From.ID)

	err := b.register(log, msg.From)
	if err != nil {
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgTransientError))
		return
	}

	frequency, ok := b.setup.Frequency(msg.From.ID)
	if !ok {
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgUseStart))
		return
	}

	challenge, err := b.challenges.Set(msg.From.ID, msg.Text, frequency)
	if err != nil {
		// The pending frequency survives both branches so the user can just
		// send another message instead of starting over.
		if errors.Is(err, service.ErrChallengeTextEmpty) {
			b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgEmptyChallengeText))
			return
		}
		log.Error("failed to set challenge", "error", err)
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, msgTransientError))
		return
	}

	b.setup.Clear(msg.From.ID)
	log.Info("challenge set", "challenge_id", challenge.ID, "frequency", challenge.Frequency)
	b.send(log, tgbotapi.NewMessage(msg.Chat.ID, challengeSetText(challenge)))
}

func (b *Bot) handleCallback(log *slog.Logger, cb *tgbotapi.CallbackQuery) {
	// Telegram shows a spinner on the tapped button until the callback is
	// answered, so acknowledge before doing any work.
	_, err := b.client.Request(tgbotapi.NewCallback(cb.ID, ""))
	if err != nil {
		log.Debug("failed to answer callback", "error", err)
	}

	if cb.From == nil || cb.Message == nil {
		return
	}
	log = log.With("user_id", cb.From.ID, "callback", cb.Data)

	err = b.register(log, cb.From)
	if err != nil {
		b.send(log, tgbotapi.NewMessage(cb.Message.Chat.ID, msgTransientError))
		return
	}

	switch {
	case cb.Data == callbackDaily || cb.Data == callbackWeekly:
		b.handleFrequencyPick(log, cb)
	case cb.Data == callbackNotComplete:
		b.edit(log, cb, msgNotComplete)
	case strings.HasPrefix(cb.Data, callbackCompletePrefix):
		b.handleComplete(log, cb)
	default:
		log.Warn("ignoring unknown callback data")
	}
}

func (b *Bot) handleFrequencyPick(log *slog.Logger, cb *tgbotapi.CallbackQuery) {
	b.setup.Begin(cb.From.ID, cb.Data)
	log.Info("challenge setup started", "frequency", cb.Data)
	b.edit(log, cb, frequencyPickedText(cb.Data))
}

func (b *Bot) handleComplete(log *slog.Logger, cb *tgbotapi.CallbackQuery) {
	pressedID, ok := parseCompleteCallback(cb.Data)
	if !ok {
		log.Warn("malformed complete callback")
		return
	}

	completion, err := b.completions.Record(cb.From.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveChallenge) {
			b.edit(log, cb, msgChallengeGone)
			return
		}
		log.Error("failed to record completion", "error", err)
		b.edit(log, cb, msgTransientError)
		return
	}

	if completion.ChallengeID != pressedID {
		// The button belonged to a challenge that has since been replaced;
		// the completion counts toward the current one.
		log.Debug("completion recorded against newer challenge", "pressed_challenge_id", pressedID, "challenge_id", completion.ChallengeID)
	}
	log.Info("completion recorded", "completion_id", completion.ID, "challenge_id", completion.ChallengeID)
	b.edit(log, cb, msgCompleted)
}

func (b *Bot) send(log *slog.Logger, c tgbotapi.Chattable) {
	_, err := b.client.Send(c)
	if err != nil {
		log.Error("failed to send message", "error", err)
	}
}

func (b *Bot) edit(log *slog.Logger, cb *tgbotapi.CallbackQuery, text string) {
	b.send(log, tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text))
}
