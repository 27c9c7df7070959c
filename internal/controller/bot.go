package controller

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(botInstance *bot.Bot, deps *callbacktypes.Handler) *BotController {
	return &BotController{
		bot:             botInstance,
		handlers:        handlers.NewHandlers(deps),
		callbackHandler: callbacks.NewHandler(deps),
		logger:          deps.Logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Навигация
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/home", bot.MatchTypeExact, c.handlers.HandleHome)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/programs", bot.MatchTypeExact, c.handlers.HandlePrograms)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/research", bot.MatchTypeExact, c.handlers.HandleResearch)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/dashboard", bot.MatchTypeExact, c.handlers.HandleDashboard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Авторизация
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/register", bot.MatchTypeExact, c.handlers.HandleRegister)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)

	// Команды с аргументами
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/search", bot.MatchTypePrefix, c.handlers.HandleSearch)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ask", bot.MatchTypePrefix, c.handlers.HandleAsk)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mode", bot.MatchTypePrefix, c.handlers.HandleMode)

	// Обработчик текстовых сообщений (для диалогов с состояниями), должен быть последним
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Open MGCC"},
		{Command: "home", Description: "🏠 Main page"},
		{Command: "programs", Description: "📚 Course catalog"},
		{Command: "research", Description: "🔬 Research Hub"},
		{Command: "search", Description: "🔍 Search programs and research"},
		{Command: "dashboard", Description: "📊 My dashboard"},
		{Command: "login", Description: "🔐 Sign in"},
		{Command: "register", Description: "📝 Student enrollment"},
		{Command: "logout", Description: "🚪 Sign out"},
		{Command: "ask", Description: "🤖 Ask MGCC AI"},
		{Command: "mode", Description: "🎛 Assistant mode"},
		{Command: "cancel", Description: "❌ Cancel the current operation"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
