package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendError отправляет сообщение об ошибке и логирует если не удалось
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if err := common.Send(ctx, b, chatID, text, nil); err != nil {
		h.logger.Error("Failed to send error message",
			zap.Int64("chat_id", chatID),
			zap.String("text", text),
			zap.Error(err),
		)
	}
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) {
	if err := common.Send(ctx, b, chatID, text, keyboard); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendScreen отправляет текущий экран сессии новым сообщением
func (h *Handlers) sendScreen(ctx context.Context, b *bot.Bot, chatID int64) {
	text, kb := common.Render(ctx, h.deps, chatID)
	h.sendMessage(ctx, b, chatID, text, kb)
}

// prompt переводит диалог на шаг st и задаёт вопрос
func (h *Handlers) prompt(ctx context.Context, b *bot.Bot, chatID int64, st state.UserState, text string) {
	h.stateManager.SetState(chatID, st)
	h.sendMessage(ctx, b, chatID, text, common.PromptKeyboard())
}

// deleteMessage убирает из чата сообщение с паролем
func (h *Handlers) deleteMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})
	if err != nil {
		h.logger.Debug("Failed to delete message", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
	}
}

// check проверяет ответ в диалоге правилом validator и возвращает
// причину для пользователя, если проверка не прошла
func (h *Handlers) check(value, rule string) (string, bool) {
	err := h.validate.Var(value, rule)
	if err == nil {
		return "", true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "❌ Invalid value. Try again:", false
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "❌ The value cannot be empty. Try again:", false
	case "min":
		return "❌ Too short: at least " + fe.Param() + " characters. Try again:", false
	case "max":
		return "❌ Too long: at most " + fe.Param() + " characters. Try again:", false
	case "alphanum":
		return "❌ Only letters and digits are allowed. Try again:", false
	default:
		return "❌ Invalid value. Try again:", false
	}
}

// commandArgs возвращает текст после команды: "/search physics" -> "physics"
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}
