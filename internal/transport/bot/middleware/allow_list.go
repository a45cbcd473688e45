package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"

	"plate_appraiser/pkg/contextx"
	"plate_appraiser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// AllowList пропускает только сообщения из перечисленных чатов. Пустой список
// пропускает всех.
func AllowList(chatIDs []int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		chatID, ok := ChatID(update)
		if !ok {
			return nil
		}

		if !Allowed(chatIDs, chatID) {
			logger(ctx).Info("bot update from chat outside allow list", slog.Int64(logx.FieldChatID, chatID))
			return nil
		}

		return ctx.Next(update)
	}
}

func Allowed(chatIDs []int64, chatID int64) bool {
	return len(chatIDs) == 0 || lo.Contains(chatIDs, chatID)
}

// ChatID достаёт чат из сообщения или callback-запроса.
func ChatID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.GetChat().ID, true
	default:
		return 0, false
	}
}
