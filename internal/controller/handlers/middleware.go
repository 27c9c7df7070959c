package handlers

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// chatOf возвращает сообщение и ID чата, false для апдейтов без сообщения
func chatOf(update *models.Update) (*models.Message, int64, bool) {
	if update.Message == nil {
		return nil, 0, false
	}
	return update.Message, update.Message.Chat.ID, true
}

// requireIdentity проверяет что в чате выполнен вход
func (h *Handlers) requireIdentity(ctx context.Context, b *bot.Bot, chatID int64) (*model.User, bool) {
	user := h.deps.Sessions.Get(chatID).Identity()
	if user == nil {
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrNotLoggedIn))
		return nil, false
	}
	return user, true
}

// requireAnonymous не даёт войти повторно без /logout
func (h *Handlers) requireAnonymous(ctx context.Context, b *bot.Bot, chatID int64) bool {
	user := h.deps.Sessions.Get(chatID).Identity()
	if user != nil {
		h.sendError(ctx, b, chatID,
			"ℹ️ You are signed in as <b>"+formatting.Escape(user.Name)+"</b>. Use /logout first.")
		return false
	}
	return true
}

// resetChat удаляет сессию, диалог и панель ассистента чата
func (h *Handlers) resetChat(chatID int64) {
	h.deps.Sessions.Drop(chatID)
	h.deps.Assistants.Unmount(chatID)
	h.stateManager.ClearState(chatID)
}
