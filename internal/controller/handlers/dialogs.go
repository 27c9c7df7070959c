package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// registrationSteps — порядок полей формы регистрации и правило для каждого
var registrationSteps = []struct {
	state state.UserState
	key   string
	rule  string
}{
	{state.StateRegisterName, state.KeyName, nameRule},
	{state.StateRegisterClass, state.KeyClass, classRule},
	{state.StateRegisterParentPhone, state.KeyParentPhone, phoneRule},
	{state.StateRegisterAddress, state.KeyAddress, addressRule},
	{state.StateRegisterPhone, state.KeyPhone, phoneRule},
	{state.StateRegisterPassword, "", passwordRule},
}

// ========================
// Search
// ========================

func (h *Handlers) handleSearchText(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	query := strings.TrimSpace(msg.Text)

	if reason, ok := h.check(query, searchRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	h.stateManager.ClearState(chatID)
	h.applySearch(ctx, b, chatID, query)
}

// applySearch сохраняет фильтр и показывает его на экране с поиском
func (h *Handlers) applySearch(ctx context.Context, b *bot.Bot, chatID int64, query string) {
	sess := h.deps.Sessions.Get(chatID)
	sess.SetSearch(query)

	switch sess.View() {
	case model.ViewHome, model.ViewPrograms, model.ViewResearch:
	default:
		common.ApplyView(h.deps, chatID, model.ViewPrograms)
	}

	h.logger.Debug("Search applied", zap.Int64("chat_id", chatID), zap.String("query", query))
	h.sendScreen(ctx, b, chatID)
}

// ========================
// Login
// ========================

func (h *Handlers) handleLoginIdentifier(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	identifier := strings.TrimSpace(msg.Text)

	if reason, ok := h.check(identifier, identifierRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	h.stateManager.SetData(chatID, state.KeyIdentifier, identifier)
	h.prompt(ctx, b, chatID, state.StateLoginPassword, common.PasswordPrompt())
}

func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	h.deleteMessage(ctx, b, msg)

	if reason, ok := h.check(strings.TrimSpace(msg.Text), passwordRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	role, ok := model.ParseRole(h.stateManager.GetString(chatID, state.KeyRole))
	if !ok {
		h.logger.Warn("Login dialog without role", zap.Int64("chat_id", chatID))
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}
	identifier := h.stateManager.GetString(chatID, state.KeyIdentifier)

	h.stateManager.ClearState(chatID)
	user := common.Login(h.deps, chatID, role, identifier, "")

	h.sendMessage(ctx, b, chatID, "✅ Welcome, <b>"+formatting.Escape(user.Name)+"</b>!", nil)
	h.sendScreen(ctx, b, chatID)
}

// ========================
// Registration
// ========================

// registrationReply — итог одного шага регистрации
type registrationReply struct {
	next     state.UserState // текущий шаг диалога, StateNone после завершения
	reason   string          // ошибка для пользователя, шаг повторяется
	reprompt bool            // повторить вопрос шага после ошибки
	user     *model.User     // заполнен после завершения формы
}

func (h *Handlers) handleRegistrationStep(ctx context.Context, b *bot.Bot, msg *models.Message, current state.UserState) {
	chatID := msg.Chat.ID
	if current == state.StateRegisterPassword {
		h.deleteMessage(ctx, b, msg)
	}

	res := h.advanceRegistration(chatID, current, strings.TrimSpace(msg.Text))
	switch {
	case res.reason != "":
		h.sendError(ctx, b, chatID, res.reason)
		if res.reprompt {
			h.sendMessage(ctx, b, chatID, common.RegistrationPrompt(res.next), common.PromptKeyboard())
		}
	case res.user != nil:
		h.sendMessage(ctx, b, chatID,
			"🎓 <b>Enrollment complete.</b> Welcome to MGCC, "+formatting.Escape(res.user.Name)+"!", nil)
		h.sendScreen(ctx, b, chatID)
	case res.next != state.StateNone:
		h.sendMessage(ctx, b, chatID, common.RegistrationPrompt(res.next), common.PromptKeyboard())
	}
}

// advanceRegistration применяет ответ value на шаге current и двигает диалог
func (h *Handlers) advanceRegistration(chatID int64, current state.UserState, value string) registrationReply {
	idx := -1
	for i, step := range registrationSteps {
		if step.state == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.stateManager.ClearState(chatID)
		return registrationReply{next: state.StateNone}
	}
	step := registrationSteps[idx]

	if reason, ok := h.check(value, step.rule); !ok {
		return registrationReply{next: current, reason: reason}
	}

	// Телефон студента и родителя не должны совпадать
	if current == state.StateRegisterPhone &&
		value == h.stateManager.GetString(chatID, state.KeyParentPhone) {
		h.logger.Warn("Registration rejected: identical phones", zap.Int64("chat_id", chatID))
		return registrationReply{
			next:     current,
			reason:   common.ErrorMessage(common.ErrIdenticalPhones),
			reprompt: true,
		}
	}

	if step.key != "" {
		h.stateManager.SetData(chatID, step.key, value)
	}

	if idx+1 < len(registrationSteps) {
		next := registrationSteps[idx+1].state
		h.stateManager.SetState(chatID, next)
		return registrationReply{next: next}
	}

	return registrationReply{next: state.StateNone, user: h.completeRegistration(chatID)}
}

// completeRegistration: с курсом из каталога — запись на него, иначе обычный вход студента
func (h *Handlers) completeRegistration(chatID int64) *model.User {
	courseID := h.stateManager.GetString(chatID, state.KeyCourseID)
	phone := h.stateManager.GetString(chatID, state.KeyPhone)
	name := h.stateManager.GetString(chatID, state.KeyName)
	h.stateManager.ClearState(chatID)

	if courseID != "" && !h.deps.Catalog.Contains(courseID) {
		h.logger.Warn("Registration for unknown course", zap.String("course_id", courseID))
		courseID = ""
	}

	var user *model.User
	if courseID != "" {
		user = common.Register(h.deps, chatID, courseID)
	} else {
		user = common.Login(h.deps, chatID, model.RoleStudent, phone, "")
	}

	h.logger.Info("✅ Registration completed",
		zap.Int64("chat_id", chatID),
		zap.String("name", name),
		zap.String("user_id", user.ID))
	return user
}

// ========================
// Payment
// ========================

func (h *Handlers) handlePaymentTxID(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	txID := strings.TrimSpace(msg.Text)

	if reason, ok := h.check(txID, txIDRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	course := h.deps.Catalog.CourseByID(h.stateManager.GetString(chatID, state.KeyCourseID))
	if course == nil {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(service.ErrCourseNotFound))
		return
	}

	user := h.deps.Sessions.Get(chatID).Identity()
	req, err := h.deps.Payments.Submit(ctx, chatID, user, course, txID)
	if err != nil {
		h.logger.Error("Failed to submit payment",
			zap.Int64("chat_id", chatID),
			zap.String("course_id", course.ID),
			zap.Error(err))
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	h.stateManager.ClearState(chatID)
	h.deps.Metrics.ObservePayment(req.Status)

	h.logger.Info("💳 Payment submitted",
		zap.Int64("chat_id", chatID),
		zap.String("payment_id", req.ID),
		zap.String("course_id", course.ID))

	h.sendMessage(ctx, b, chatID, common.PaymentSubmitted(*course, txID), nil)
}

// ========================
// Demo numbers (admin)
// ========================

func (h *Handlers) handleDemoNumber(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	number := strings.TrimSpace(msg.Text)
	if reason, ok := h.check(number, demoNumberRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	h.stateManager.SetData(chatID, state.KeyDemoNumber, number)
	h.prompt(ctx, b, chatID, state.StateDemoLabel, common.DemoLabelPrompt(number))
}

func (h *Handlers) handleDemoLabel(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	label := strings.TrimSpace(msg.Text)
	if label == skipLabel {
		label = ""
	}
	if reason, ok := h.check(label, demoLabelRule); !ok {
		h.sendError(ctx, b, chatID, reason)
		return
	}

	number := h.stateManager.GetString(chatID, state.KeyDemoNumber)
	h.stateManager.ClearState(chatID)

	added, err := h.deps.Payments.AddDemoNumber(ctx, number, label)
	if err != nil {
		h.logger.Error("Failed to add demo number", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	h.logger.Info("📱 Demo number added", zap.String("id", added.ID), zap.String("number", added.Number))
	h.sendMessage(ctx, b, chatID, "✅ Demo number <code>"+formatting.Escape(added.Number)+"</code> added.", nil)
	h.sendScreen(ctx, b, chatID)
}

// requireAdmin прерывает диалог если чат больше не администратор
func (h *Handlers) requireAdmin(ctx context.Context, b *bot.Bot, chatID int64) bool {
	user := h.deps.Sessions.Get(chatID).Identity()
	if user == nil || user.Role != model.RoleAdmin {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrNotAdmin))
		return false
	}
	return true
}

// ========================
// Assistant
// ========================

// askAssistant отправляет сообщение в смонтированную панель и публикует ответ
func (h *Handlers) askAssistant(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	panel, mounted := h.deps.Assistants.Get(chatID)
	if !mounted {
		h.stateManager.ClearState(chatID)
		h.sendError(ctx, b, chatID, "🤖 MGCC AI is available on your dashboard only. Use /dashboard")
		return
	}

	if _, err := b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	}); err != nil {
		h.logger.Debug("Failed to send typing action", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	res := panel.Send(ctx, text)
	h.deps.Metrics.ObserveAssistant(string(res.Outcome))

	switch res.Outcome {
	case assistant.OutcomeSkipped:
		if panel.Busy() {
			panel.SetDraft(text)
			h.sendMessage(ctx, b, chatID,
				"⏳ MGCC AI is still thinking about your previous question. Your message is kept as a draft.", nil)
		}
		return
	case assistant.OutcomeFallback:
		h.logger.Warn("Assistant generator failed",
			zap.Int64("chat_id", chatID),
			zap.String("mode", string(panel.Mode())),
			zap.Error(res.Err))
	}

	h.sendMessage(ctx, b, chatID, "🤖 "+formatting.Escape(res.Reply), common.AssistantKeyboard(panel.Mode()))
}
