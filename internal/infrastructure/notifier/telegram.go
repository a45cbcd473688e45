// Package notifier отправляет редкие номера в Telegram-чат.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/transport/bot/view"
	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	chatID int64
}

// NewTelegramNotifier принимает *telego.Bot или любой другой sender.
func NewTelegramNotifier(bot sender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
	}
}

// Run отправляет алерты из канала до его закрытия или отмены ctx. Ошибка
// отправки одного алерта не останавливает цикл.
func (n *TelegramNotifier) Run(ctx context.Context, alerts <-chan entity.PlateReport) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case report, ok := <-alerts:
			if !ok {
				return nil
			}

			if err := n.SendRarePlate(ctx, report); err != nil {
				logger(ctx).Error("failed to send rare plate alert",
					slog.String(logx.FieldPlate, report.Plate),
					slog.Int64(logx.FieldChatID, n.chatID),
					logx.Error(err),
				)
			}
		}
	}
}

func (n *TelegramNotifier) SendRarePlate(ctx context.Context, report entity.PlateReport) error {
	msg := tu.Message(
		tu.ID(n.chatID),
		view.RareAlert(report),
	).WithParseMode(telego.ModeHTML)

	if _, err := n.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
