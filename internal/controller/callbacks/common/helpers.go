package common

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseArg извлекает аргумент из callback data
// Например: "course:hsc-physics" -> "hsc-physics"
func ParseArg(data, prefix string) (string, error) {
	arg, ok := strings.CutPrefix(data, prefix)
	if !ok || arg == "" || strings.Contains(arg, ":") {
		return "", ErrInvalidFormat
	}
	return arg, nil
}

// ParsePage извлекает номер страницы: "queue_page:2" -> 2
func ParsePage(data, prefix string) (int, error) {
	arg, err := ParseArg(data, prefix)
	if err != nil {
		return 0, err
	}
	page, err := strconv.Atoi(arg)
	if err != nil || page < 0 {
		return 0, ErrInvalidFormat
	}
	return page, nil
}

// IsMessageNotModifiedError распознаёт ответ Telegram на редактирование без изменений
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
