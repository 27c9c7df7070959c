package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📋 <b>MGCC commands</b>\n\n" +
	"/home - Main page\n" +
	"/programs - Course catalog\n" +
	"/research - Research Hub\n" +
	"/search &lt;text&gt; - Filter programs and research\n" +
	"/dashboard - Your dashboard\n" +
	"/login - Sign in\n" +
	"/register - Create a student account\n" +
	"/logout - Sign out\n" +
	"/ask &lt;question&gt; - Talk to MGCC AI (dashboard)\n" +
	"/mode &lt;SUPPORT|ACADEMIC|STRATEGY&gt; - Assistant mode\n" +
	"/cancel - Cancel the current operation\n" +
	"/help - This help"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	// /start начинает чат заново: вход, поиск, диалог и ассистент сбрасываются
	h.resetChat(chatID)
	common.ApplyView(h.deps, chatID, model.ViewHome)

	h.logger.Info("👋 Start",
		zap.Int64("chat_id", chatID),
		zap.String("username", msg.From.Username))

	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"👋 Welcome, %s!\n\nThis is the Miftahul Er Jelkhana Coaching Center assistant. Use the buttons below or /help.",
		formatting.Escape(msg.From.FirstName)), nil)
	h.sendScreen(ctx, b, chatID)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok {
		return
	}
	h.sendMessage(ctx, b, chatID, helpText, nil)
}

// HandleHome обрабатывает команду /home
func (h *Handlers) HandleHome(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.navigate(ctx, b, update, model.ViewHome)
}

// HandlePrograms обрабатывает команду /programs
func (h *Handlers) HandlePrograms(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.navigate(ctx, b, update, model.ViewPrograms)
}

// HandleResearch обрабатывает команду /research
func (h *Handlers) HandleResearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.navigate(ctx, b, update, model.ViewResearch)
}

// HandleDashboard обрабатывает команду /dashboard
func (h *Handlers) HandleDashboard(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	h.stateManager.ClearState(chatID)
	if !common.ApplyView(h.deps, chatID, model.ViewDashboard) {
		h.deps.Sessions.Get(chatID).OpenAuthPrompt()
		text, kb := common.BuildAuthPromptScreen()
		h.sendMessage(ctx, b, chatID, text, kb)
		return
	}
	h.sendScreen(ctx, b, chatID)
}

func (h *Handlers) navigate(ctx context.Context, b *bot.Bot, update *models.Update, view model.View) {
	_, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	h.stateManager.ClearState(chatID)
	common.ApplyView(h.deps, chatID, view)
	h.sendScreen(ctx, b, chatID)
}

// HandleSearch обрабатывает /search [text]; без аргумента спрашивает текст
func (h *Handlers) HandleSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	query := commandArgs(msg.Text)
	if query == "" {
		h.stateManager.Start(chatID, state.StateSearch)
		h.prompt(ctx, b, chatID, state.StateSearch, common.SearchPrompt())
		return
	}
	h.applySearch(ctx, b, chatID, query)
}

// HandleLogin обрабатывает команду /login
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok || !h.requireAnonymous(ctx, b, chatID) {
		return
	}

	h.stateManager.ClearState(chatID)
	h.deps.Sessions.Get(chatID).OpenAuthPrompt()
	text, kb := common.BuildAuthPromptScreen()
	h.sendMessage(ctx, b, chatID, text, kb)
}

// HandleRegister обрабатывает команду /register
func (h *Handlers) HandleRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok || !h.requireAnonymous(ctx, b, chatID) {
		return
	}

	h.deps.Sessions.Get(chatID).OpenAuthPrompt()
	h.stateManager.Start(chatID, state.StateRegisterName)
	h.prompt(ctx, b, chatID, state.StateRegisterName, common.RegistrationPrompt(state.StateRegisterName))
}

// HandleLogout обрабатывает команду /logout
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok {
		return
	}
	if _, ok := h.requireIdentity(ctx, b, chatID); !ok {
		return
	}

	common.Logout(h.deps, chatID)
	h.sendMessage(ctx, b, chatID, "👋 Signed out.", nil)
	h.sendScreen(ctx, b, chatID)
}

// HandleAsk обрабатывает /ask [question]
func (h *Handlers) HandleAsk(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	panel, mounted := h.deps.Assistants.Get(chatID)
	if !mounted {
		h.sendError(ctx, b, chatID, "🤖 MGCC AI is available on your dashboard only. Use /dashboard")
		return
	}

	h.stateManager.Start(chatID, state.StateAssistantChat)
	if question := commandArgs(msg.Text); question != "" {
		h.askAssistant(ctx, b, chatID, question)
		return
	}

	text, kb := common.BuildAssistantScreen(panel)
	h.sendMessage(ctx, b, chatID, text, kb)
}

// HandleMode обрабатывает /mode [MODE]
func (h *Handlers) HandleMode(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	panel, mounted := h.deps.Assistants.Get(chatID)
	if !mounted {
		h.sendError(ctx, b, chatID, "🤖 MGCC AI is available on your dashboard only. Use /dashboard")
		return
	}

	arg := commandArgs(msg.Text)
	if arg == "" {
		h.sendMessage(ctx, b, chatID,
			"Current mode: <b>"+formatting.ModeDisplay(panel.Mode())+"</b>", common.AssistantKeyboard(panel.Mode()))
		return
	}

	mode, ok := model.ParseAssistantMode(arg)
	if !ok {
		names := make([]string, 0, 3)
		for _, m := range model.AssistantModes() {
			names = append(names, string(m))
		}
		h.sendError(ctx, b, chatID, "❌ Unknown mode. Available: "+strings.Join(names, ", "))
		return
	}

	panel.SetMode(mode)
	h.sendMessage(ctx, b, chatID, "✅ Mode: <b>"+formatting.ModeDisplay(mode)+"</b>", common.AssistantKeyboard(mode))
}

// HandleCancel обрабатывает команду /cancel
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, chatID, ok := chatOf(update)
	if !ok {
		return
	}

	currentState := h.stateManager.GetState(chatID)
	if currentState == state.StateNone {
		h.sendMessage(ctx, b, chatID, "❌ Nothing to cancel.", nil)
		return
	}

	h.stateManager.ClearState(chatID)
	h.deps.Sessions.Get(chatID).CloseAuthPrompt()

	h.sendMessage(ctx, b, chatID, "✅ Operation cancelled.\n\nUse /help to see available commands.", nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния диалога
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	currentState := h.stateManager.GetState(chatID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("chat_id", chatID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		h.logger.Debug("No active state, ignoring message", zap.Int64("chat_id", chatID))
	case state.StateLoginIdentifier:
		h.handleLoginIdentifier(ctx, b, update.Message)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, update.Message)
	case state.StateRegisterName, state.StateRegisterClass, state.StateRegisterParentPhone,
		state.StateRegisterAddress, state.StateRegisterPhone, state.StateRegisterPassword:
		h.handleRegistrationStep(ctx, b, update.Message, currentState)
	case state.StateSearch:
		h.handleSearchText(ctx, b, update.Message)
	case state.StatePaymentTxID:
		h.handlePaymentTxID(ctx, b, update.Message)
	case state.StateDemoNumber:
		h.handleDemoNumber(ctx, b, update.Message)
	case state.StateDemoLabel:
		h.handleDemoLabel(ctx, b, update.Message)
	case state.StateAssistantChat:
		h.askAssistant(ctx, b, chatID, update.Message.Text)
	default:
		h.logger.Warn("Unknown dialog state",
			zap.Int64("chat_id", chatID),
			zap.String("state", string(currentState)))
		h.stateManager.ClearState(chatID)
	}
}
