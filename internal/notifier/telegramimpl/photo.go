package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nberlot/menu-du-jour-bot/pkg/formatter"
)

// SendPhoto sends an image with a caption to the resolved chat.
func (tg *TelegramImpl) SendPhoto(chatID int64, photo []byte, filename, title, caption string) error {
	tg.Logger.Info("Sending photo to channel", "chatID", chatID, "filename", filename)

	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: photo,
	})
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.Caption = buildCaption(title, caption)

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending photo to channel", "chatID", chatID, "error", err)
		return fmt.Errorf("failed to send photo to channel: %w", err)
	}

	tg.Logger.Info("Successfully sent photo to channel", "chatID", chatID)
	return nil
}

func buildCaption(title, caption string) string {
	escapedTitle := formatter.EscapeMarkdownV2(title)
	if caption == "" {
		return "*" + escapedTitle + "*"
	}
	return "*" + escapedTitle + "*\n" + formatter.EscapeMarkdownV2(caption)
}
