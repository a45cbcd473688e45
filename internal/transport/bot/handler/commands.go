package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"plate_appraiser/internal/transport/bot/view"
	"plate_appraiser/pkg/logx"
)

type InputKind int

const (
	InputUnknown InputKind = iota
	InputPlate
	InputTail
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnPlate(ctx *th.Context, msg telego.Message) error {
	arg := CommandArgument(msg.Text)
	if arg == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.PlateMissingArgument)
	}

	return h.replyPlate(ctx, msg.Chat.ID, arg)
}

func (h *Handler) OnTail(ctx *th.Context, msg telego.Message) error {
	arg := CommandArgument(msg.Text)
	if arg == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.TailMissingArgument)
	}

	return h.replyTail(ctx, msg.Chat.ID, arg)
}

func (h *Handler) OnRegion(ctx *th.Context, msg telego.Message) error {
	arg := CommandArgument(msg.Text)
	if arg == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.RegionMissingArgument)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Regions(h.svc.SearchRegions(arg)))
}

func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	switch Classify(msg.Text) {
	case InputPlate:
		return h.replyPlate(ctx, msg.Chat.ID, msg.Text)
	case InputTail:
		return h.replyTail(ctx, msg.Chat.ID, msg.Text)
	default:
		return h.sendHTML(ctx, msg.Chat.ID, view.UnknownInput)
	}
}

func (h *Handler) replyPlate(ctx *th.Context, chatID int64, raw string) error {
	logger(ctx).Info("bot plate request", slog.Int64(logx.FieldChatID, chatID), slog.String(logx.FieldPlate, raw))

	report, err := h.svc.ValuatePlate(ctx, raw)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.sendHTML(ctx, chatID, view.PlateReport(report))
}

func (h *Handler) replyTail(ctx *th.Context, chatID int64, raw string) error {
	logger(ctx).Info("bot tail request", slog.Int64(logx.FieldChatID, chatID))

	v, err := h.svc.ValuateTail(ctx, raw)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	return h.sendHTML(ctx, chatID, view.TailValuation(v))
}

// replyError отвечает пользователю. Ошибки ввода не считаются ошибками
// обработчика.
func (h *Handler) replyError(ctx *th.Context, chatID int64, err error) error {
	if failure.IsInvalidArgumentError(err) {
		return h.sendHTML(ctx, chatID, view.Rejected(failure.Description(err)))
	}

	logger(ctx).Error("bot valuation failed", slog.Int64(logx.FieldChatID, chatID), logx.Error(err))

	if sendErr := h.sendHTML(ctx, chatID, view.InternalError); sendErr != nil {
		return fmt.Errorf("sendHTML: %w", sendErr)
	}

	return err
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	msg := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := ctx.Bot().SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// CommandArgument возвращает всё после команды, например
// "/plate 京A 88888" -> "京A 88888".
func CommandArgument(text string) string {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return ""
	}

	return strings.Join(parts[1:], " ")
}

// Classify угадывает, что прислали свободным текстом. Текст с иероглифом это
// номер машины, цифры с телефонными разделителями это номер телефона.
func Classify(text string) InputKind {
	text = strings.TrimSpace(text)
	if text == "" {
		return InputUnknown
	}

	var digits int

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			return InputPlate
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')':
		default:
			return InputUnknown
		}
	}

	if digits == 0 {
		return InputUnknown
	}

	return InputTail
}
