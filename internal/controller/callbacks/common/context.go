package common

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerContext содержит общие данные для обработки callback
// Это избавляет от дублирования кода получения сессии, сообщения и т.д.
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	Session    *session.Session
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext создаёт новый контекст обработчика.
// Сессия чата создаётся при первом обращении.
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	chatID := callback.From.ID
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		Session:    h.Sessions.Get(chatID),
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// Identity возвращает вошедшего пользователя или nil
func (hc *HandlerContext) Identity() *model.User {
	return hc.Session.Identity()
}

// RequireIdentity проверяет что в чате выполнен вход
func (hc *HandlerContext) RequireIdentity() (*model.User, error) {
	user := hc.Session.Identity()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	return user, nil
}

// RequireAdmin проверяет что вход выполнен администратором
func (hc *HandlerContext) RequireAdmin() (*model.User, error) {
	user, err := hc.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleAdmin {
		return nil, ErrNotAdmin
	}
	return user, nil
}

// Answer отвечает на callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback query с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage редактирует сообщение
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	params := &bot.EditMessageTextParams{
		ChatID:    hc.ChatID,
		MessageID: hc.Message.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, params)

	// Игнорируем ошибку "message is not modified" - это не настоящая ошибка
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// SendMessage отправляет новое сообщение
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	return Send(hc.Ctx, hc.Bot, hc.ChatID, text, keyboard)
}

// Refresh перерисовывает текущий экран сессии в том же сообщении
func (hc *HandlerContext) Refresh() error {
	text, kb := Render(hc.Ctx, hc.Handler, hc.ChatID)
	return hc.EditMessage(text, kb)
}

// Prompt переводит диалог на шаг и запрашивает ввод
func (hc *HandlerContext) Prompt(st state.UserState, text string) error {
	hc.Handler.StateManager.SetState(hc.ChatID, st)
	return hc.SendMessage(text, PromptKeyboard())
}

// ClearState очищает состояние диалога
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.ChatID)
}

// StartDialog начинает новый диалог с чистыми данными
func (hc *HandlerContext) StartDialog(st state.UserState) {
	hc.Handler.StateManager.Start(hc.ChatID, st)
}

// SetData устанавливает данные в state
func (hc *HandlerContext) SetData(key string, value interface{}) {
	hc.Handler.StateManager.SetData(hc.ChatID, key, value)
}

// Send отправляет HTML-сообщение в чат
func Send(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := b.SendMessage(ctx, params)
	return err
}
