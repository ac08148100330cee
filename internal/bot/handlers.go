package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"arzbot/logger"
	"arzbot/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startMessage = `سلام! 👋

من قیمت لحظه‌ای ارز، طلا و ارزهای دیجیتال را اعلام می‌کنم.

دستورها:
/arz — ارزهای اصلی
/minor — ارزهای فرعی
/gold — طلا و سکه
/crypto — قیمت ارز دیجیتال، مثل <code>/crypto btc</code>
/help — راهنمای تبدیل ارز

یا مستقیم بنویسید: <code>100 دلار به تومان</code>`

func (a *App) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From != nil && a.users != nil {
		kind := "text"
		if msg.IsCommand() {
			kind = "command:" + msg.Command()
		}
		a.users.LogInteraction(ctx, msg.From.ID, kind)
	}

	if msg.IsCommand() {
		a.handleCommand(ctx, msg)
		return
	}
	if msg.Text == "" {
		return
	}

	if reply, ok := BuildConversionReply(msg.Text, a.currency.Data()); ok {
		a.reply(msg.Chat.ID, reply)
	}
	// Everything else stays silent; the bot lives in groups.
}

func (a *App) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		a.reply(msg.Chat.ID, startMessage)
	case "help":
		a.reply(msg.Chat.ID, conversionHelp)
	case "arz":
		a.sendListing(msg.Chat.ID, models.SectionMainCurrencies, 0)
	case "minor":
		a.sendListing(msg.Chat.ID, models.SectionMinorCurrencies, 0)
	case "gold":
		a.sendListing(msg.Chat.ID, models.SectionGold, 0)
	case "crypto":
		a.handleCryptoCommand(ctx, msg)
	}
}

func (a *App) sendListing(chatID int64, section string, page int) {
	snap := a.currency.Data()
	if snap == nil {
		a.reply(chatID, pricesUnavailableMsg)
		return
	}

	text, ok := RenderListing(snap, section, page, a.config.Telegram.PageSize)
	if !ok {
		a.reply(chatID, pricesUnavailableMsg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if kb, ok := pagingKeyboard(snap, section, page, a.config.Telegram.PageSize); ok {
		msg.ReplyMarkup = kb
	}
	if _, err := a.api.Send(msg); err != nil {
		a.log.WithComponent("bot").WithError(err).Warn("failed to send listing")
	}
}

func (a *App) handleCryptoCommand(ctx context.Context, msg *tgbotapi.Message) {
	symbol := normalizeCryptoQuery(msg.CommandArguments())
	if symbol == "" {
		a.reply(msg.Chat.ID, "نماد ارز دیجیتال را بنویسید، مثل <code>/crypto btc</code>")
		return
	}

	rec, ok := a.crypto.Data(symbol)
	if !ok {
		// Cache miss: fetch on demand instead of waiting for the next poll.
		var err error
		rec, err = a.crypto.RefreshSymbol(ctx, symbol)
		if err != nil {
			a.log.WithComponent("bot").WithFields(logger.Fields{"symbol": symbol}).
				WithError(err).Warn("on-demand crypto fetch failed")
			a.reply(msg.Chat.ID, "این نماد پیدا نشد. ❌")
			return
		}
	}
	a.reply(msg.Chat.ID, RenderCrypto(rec))
}

// handleCallback serves the listing pagination buttons. Callback data is
// "list:<section>:<page>".
func (a *App) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := a.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			a.log.WithComponent("bot").WithError(err).Debug("callback ack failed")
		}
	}()

	if cb.From != nil && a.users != nil {
		a.users.LogInteraction(ctx, cb.From.ID, "callback")
	}

	section, page, ok := parseListCallback(cb.Data)
	if !ok || cb.Message == nil {
		return
	}

	snap := a.currency.Data()
	if snap == nil {
		return
	}
	text, ok := RenderListing(snap, section, page, a.config.Telegram.PageSize)
	if !ok {
		return
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb, ok := pagingKeyboard(snap, section, page, a.config.Telegram.PageSize); ok {
		edit.ReplyMarkup = &kb
	}
	if _, err := a.api.Send(edit); err != nil {
		a.log.WithComponent("bot").WithError(err).Warn("failed to edit listing")
	}
}

func parseListCallback(data string) (section string, page int, ok bool) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 || parts[0] != "list" {
		return "", 0, false
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil || page < 0 {
		return "", 0, false
	}
	return parts[1], page, true
}

func pagingKeyboard(snap *models.PriceSnapshot, section string, page, pageSize int) (tgbotapi.InlineKeyboardMarkup, bool) {
	pages := PageCount(snap, section, pageSize)
	if pages <= 1 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ قبلی",
			fmt.Sprintf("list:%s:%d", section, page-1)))
	}
	if page < pages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("بعدی ➡️",
			fmt.Sprintf("list:%s:%d", section, page+1)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row), true
}
