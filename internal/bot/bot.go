package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ojas-1234/company-fitness-bot/internal/config"
	"github.com/ojas-1234/company-fitness-bot/internal/service"
	"github.com/ojas-1234/company-fitness-bot/internal/session"
)

// sender is the slice of the Telegram client the handlers need. Tests swap in
// a recording fake.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api    *tgbotapi.BotAPI
	client sender

	appName     string
	pollTimeout time.Duration

	users       *service.UserService
	challenges  *service.ChallengeService
	completions *service.CompletionService
	leaderboard *service.LeaderboardService
	setup       *session.Store

	wg sync.WaitGroup
}

func New(
	cfg *config.Config,
	users *service.UserService,
	challenges *service.ChallengeService,
	completions *service.CompletionService,
	leaderboard *service.LeaderboardService,
	setup *session.Store,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	api.Debug = cfg.BotDebug

	return &Bot{
		api:         api,
		client:      api,
		appName:     cfg.AppName,
		pollTimeout: cfg.PollTimeout,
		users:       users,
		challenges:  challenges,
		completions: completions,
		leaderboard: leaderboard,
		setup:       setup,
	}, nil
}

// Run long-polls Telegram and dispatches each update on its own goroutine, so
// one slow chat never blocks the rest. It returns after ctx is canceled and
// all in-flight handlers have drained.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(updateConfig)
	slog.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return nil
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.handleUpdate(update)
			}()
		}
	}
}
