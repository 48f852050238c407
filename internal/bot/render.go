package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

// Callback data carried by the inline buttons. complete buttons embed the
// challenge id the prompt was minted for, e.g. "complete_42".
const (
	callbackDaily          = "daily"
	callbackWeekly         = "weekly"
	callbackNotComplete    = "not_complete"
	callbackCompletePrefix = "complete_"
)

const (
	msgUseStart           = "Please use /start to begin setting up your challenge."
	msgNoChallenge        = "You don't have an active challenge. Use /start to create one!"
	msgChallengeGone      = "You don't have an active challenge anymore. Use /start to set a new one!"
	msgCompleted          = "✅ Great job! Challenge marked as complete!"
	msgNotComplete        = "💪 No worries, there's still time. Check in with /check once it's done."
	msgNoStats            = "No statistics available yet!"
	msgEmptyChallengeText = "That challenge looks empty. Send a short description, e.g. '35 pushups per day'."
	msgTransientError     = "Something went wrong on my end. Please try again in a moment."
)

func startText(appName, firstName string) string {
	if firstName == "" {
		firstName = "there"
	}
	return fmt.Sprintf("Hi %s! 💪\n\nWelcome to the %s!\nChoose your challenge frequency:", firstName, appName)
}

func frequencyPickedText(frequency string) string {
	return fmt.Sprintf("Great! You've chosen a %s challenge.\n\nNow, type your challenge (e.g., '35 pushups per day'):", frequency)
}

func challengeSetText(challenge *model.Challenge) string {
	return fmt.Sprintf("✅ Challenge set!\n\n📋 Your %s challenge: %s\n\nCheck in with /check once you've done it, and see how everyone is doing with /stats.", challenge.Frequency, challenge.Text)
}

func checkText(challenge *model.Challenge) string {
	return fmt.Sprintf("Did you complete your %s challenge?\n\n📋 %s", challenge.Frequency, challenge.Text)
}

func frequencyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 "+frequencyLabel(model.FrequencyDaily), callbackDaily),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗓 "+frequencyLabel(model.FrequencyWeekly), callbackWeekly),
		),
	)
}

func checkKeyboard(challengeID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, completed!", completeCallbackData(challengeID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Not yet", callbackNotComplete),
		),
	)
}

func completeCallbackData(challengeID int64) string {
	return callbackCompletePrefix + strconv.FormatInt(challengeID, 10)
}

func parseCompleteCallback(data string) (int64, bool) {
	raw, ok := strings.CutPrefix(data, callbackCompletePrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// frequencyLabel turns a stored frequency into button copy, e.g. "Daily".
// A cases.Caser is stateful, so build a fresh one per call rather than
// sharing across handler goroutines.
func frequencyLabel(frequency string) string {
	return cases.Title(language.English).String(frequency)
}

func formatLeaderboard(rows []model.LeaderboardRow, windowDays int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 *Monthly Leaderboard* (Last %d days)\n\n", windowDays)
	for i, row := range rows {
		// Names come straight from Telegram profiles; escape them so a
		// stray asterisk can't break the whole message.
		name := tgbotapi.EscapeText(tgbotapi.ModeMarkdown, row.Name())
		fmt.Fprintf(&sb, "%s %s: %d completions\n", rankEmoji(i+1), name, row.Completions)
	}
	return sb.String()
}

func rankEmoji(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "👤"
	}
}
