package telegramimpl

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nberlot/menu-du-jour-bot/pkg/errors"
)

// chatIDPrefix marks a pre-resolved supergroup/channel identifier.
const chatIDPrefix = "-100"

// ParseChatID reports whether the channel reference is already a
// platform chat ID and returns it. Only the "-100..." numeric form is
// treated as pre-resolved; anything else is a name to look up.
func ParseChatID(channel string) (int64, bool) {
	if !strings.HasPrefix(channel, chatIDPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(channel, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ResolveChannel turns a channel name or pre-resolved identifier into a
// chat ID. Identifier references short-circuit the Telegram lookup.
func (tg *TelegramImpl) ResolveChannel(channel string) (int64, error) {
	if id, ok := ParseChatID(channel); ok {
		return id, nil
	}

	name := "@" + strings.TrimPrefix(channel, "@")
	chat, err := tg.TgBot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: name},
	})
	if err != nil {
		tg.Logger.Error("Error resolving channel", "channel", name, "error", err)
		return 0, errors.Wrap(errors.ErrNotFound, "channel "+name)
	}

	return chat.ID, nil
}
