package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"plate_appraiser/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChatIDs []int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowList(allowedChatIDs))

	group.HandleMessage(h.OnStart, th.Or(th.CommandEqual("start"), th.CommandEqual("help")))
	group.HandleMessage(h.OnPlate, th.CommandEqual("plate"))
	group.HandleMessage(h.OnTail, th.CommandEqual("tail"))
	group.HandleMessage(h.OnRegion, th.CommandEqual("region"))

	// Любой другой текст разбирается как номер.
	group.HandleMessage(h.OnText, th.AnyMessageWithText(), th.Not(th.AnyCommand()))
}
