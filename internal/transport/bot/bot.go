package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/transport/bot/handler"
	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/logx"
)

const longPollingTimeout = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot отвечает на команды /plate, /tail и /region.
type Bot struct {
	bot            *telego.Bot
	handler        *handler.Handler
	allowedChatIDs []int64
}

func New(bot *telego.Bot, svc *appraisal.Service, allowedChatIDs []int64) *Bot {
	return &Bot{
		bot:            bot,
		handler:        handler.New(svc),
		allowedChatIDs: allowedChatIDs,
	}
}

// Run получает обновления long polling'ом до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.allowedChatIDs)

	go func() {
		<-ctx.Done()

		if err := botHandler.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started")

	if err := botHandler.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
